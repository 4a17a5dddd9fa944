// Package levels lists the ten levels of the player's age bracket and
// starts play.
package levels

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	sessionscreen "github.com/abhisek/mathquest/internal/screens/session"
	"github.com/abhisek/mathquest/internal/screens/summary"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// Play returns the game screen for cfg. A finished level moves on to its
// summary, which can start the next game the same way.
func Play(env *screen.Env, cfg level.Config) screen.Screen {
	return sessionscreen.New(env, cfg, func(cfg level.Config, r sess.Result) screen.Screen {
		return summary.New(env, cfg, r, func(next level.Config) screen.Screen {
			return Play(env, next)
		})
	})
}

// LevelsScreen is the level picker.
type LevelsScreen struct {
	env    *screen.Env
	levels []level.Config
	menu   components.Menu
}

var _ screen.Screen = (*LevelsScreen)(nil)
var _ screen.KeyHintProvider = (*LevelsScreen)(nil)

// New creates a LevelsScreen for the player's selected age, starting on
// the highest unlocked level.
func New(env *screen.Env) *LevelsScreen {
	l := &LevelsScreen{env: env}
	l.refresh()
	l.menu.Selected = env.Stats.Watermark(env.Stats.SelectedAge) - 1
	return l
}

// refresh rebuilds the rows so stars and locks reflect the latest stats.
func (l *LevelsScreen) refresh() {
	stats := l.env.Stats
	l.levels = level.ForAge(stats.SelectedAge, l.env.Lang())

	items := make([]components.MenuItem, len(l.levels))
	for i, cfg := range l.levels {
		unlocked := stats.LevelUnlocked(cfg.Age, cfg.Index)
		note := theme.Stars(stats.StarsFor(cfg.ID))
		if !unlocked {
			note = "🔒 " + l.env.Text().Locked
		}
		items[i] = components.MenuItem{
			Label:    fmt.Sprintf("%2d. %s", cfg.Index, cfg.Name),
			Note:     note,
			Disabled: !unlocked,
			Action:   l.start(cfg),
		}
	}

	selected := l.menu.Selected
	l.menu = components.Menu{Items: items, Selected: selected}
}

func (l *LevelsScreen) start(cfg level.Config) func() tea.Cmd {
	return func() tea.Cmd {
		l.env.Log().Info("level started", "level", cfg.ID, "avatar", l.env.Stats.Avatar)
		game := Play(l.env, cfg)
		return func() tea.Msg { return router.PushScreenMsg{Screen: game} }
	}
}

func (l *LevelsScreen) Init() tea.Cmd {
	return nil
}

func (l *LevelsScreen) Title() string {
	return fmt.Sprintf("%s %d", l.env.Text().MenuAge, l.env.Stats.SelectedAge)
}

func (l *LevelsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: l.env.Text().Play},
		{Key: "Esc", Description: "Back"},
	}
}

func (l *LevelsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	l.refresh()
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LevelsScreen) View(width, height int) string {
	l.refresh()
	text := l.env.Text()

	var b strings.Builder
	b.WriteString(l.menu.View())

	if sel := l.menu.Selected; sel >= 0 && sel < len(l.levels) {
		cfg := l.levels[sel]
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(cfg.Description))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%s %d   %s %s",
			text.Target, cfg.TargetScore, ops(cfg), bracket(cfg))))
	}

	card := components.ArcadeCard(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func ops(cfg level.Config) string {
	parts := make([]string, len(cfg.Operators))
	for i, op := range cfg.Operators {
		parts[i] = string(op)
	}
	return strings.Join(parts, " ")
}

func bracket(cfg level.Config) string {
	if cfg.IsVisual {
		return "🍎 " + level.Bracket(cfg.Age)
	}
	return fmt.Sprintf("%d-%d", cfg.NumberRange.Min, cfg.NumberRange.Max)
}
