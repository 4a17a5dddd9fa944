package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: a new avatar is affordable
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +−×÷│
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +−×÷│
└─╥═╥─┘
  ╚═╝`

// mascotFor celebrates when the player can afford an avatar they do not
// own yet.
func mascotFor(st *player.Stats) MascotVariant {
	for _, id := range avatar.All() {
		if !st.Owns(id) && st.Coins >= avatar.Stats(id).Price {
			return MascotCelebrating
		}
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if v == MascotCelebrating {
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
