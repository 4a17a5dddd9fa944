package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screens/welcome"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const arcadeTitleCompact = "M · A · T · H   Q · U · E · S · T"

// renderTitle returns the block-letter banner or the compact fallback.
func renderTitle(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.ArcadeYellow).
			Bold(true).
			Render(arcadeTitleCompact)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(cw))
}

// renderStatsBar renders coins, score, rank and stars in a bordered box
// matching content width.
func renderStatsBar(st *player.Stats, rank string, stars, cw int, compact bool) string {
	coinStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	rankStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			coinStyle.Render(fmt.Sprintf("●%d", st.Coins)),
			scoreStyle.Render(fmt.Sprintf("◆%d", st.TotalScore)),
			rankStyle.Render(fmt.Sprintf("★%d", stars)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s  %s",
			coinStyle.Render(fmt.Sprintf("● %d", st.Coins)),
			scoreStyle.Render(fmt.Sprintf("◆ %d", st.TotalScore)),
			rankStyle.Render(strings.ToUpper(rank)),
			coinStyle.Render(fmt.Sprintf("★ %d", stars)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain text lines for
// terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderGreeting shows the player's avatar and name.
func renderGreeting(st *player.Stats, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(st.Avatar.Icon() + " " + st.Name)
}
