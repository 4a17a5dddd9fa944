package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// ContentWidth returns the uniform inner width for arcade sections so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 60)
}

// CabinetFrame wraps content in a double-border frame, centered in the
// given area.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded card of content width cw.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a menu button; the selected one is highlighted.
func ArcadeButton(label string, selected bool, width int) string {
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

// ButtonRow lays out buttons side by side, highlighting selected.
func ButtonRow(labels []string, selected, width int) string {
	if len(labels) == 0 {
		return ""
	}
	bw := max(width/len(labels)-2, 8)
	btns := make([]string, len(labels))
	for i, l := range labels {
		btns[i] = ArcadeButton(l, i == selected, bw)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, btns...)
}
