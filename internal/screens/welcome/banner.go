package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

const bannerMath = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝`

const bannerQuest = `  ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ╚██████╔╝╚██████╔╝███████╗███████║   ██║
  ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "M A T H  Q U E S T"

// RenderBanner returns the two-tone MATHQUEST banner. Terminals narrower
// than 48 columns get a one-line fallback.
func RenderBanner(width int) string {
	if width < 48 {
		return lipgloss.NewStyle().
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(bannerCompact)
	}
	top := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(bannerMath)
	bottom := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(bannerQuest)
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
