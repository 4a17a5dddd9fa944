package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// Smallest terminal the game renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key action" pair shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the player summary shown on the right of the header.
// A zero value hides it.
type HeaderStats struct {
	Avatar string
	Coins  int
	Score  int
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to grow the terminal.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("Screen too small!\n\nMake the window at least %d x %d\n\nNow: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(text)
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

func spaces(n int) string {
	return strings.Repeat(" ", max(n, 1))
}

// RenderHeader draws the app name on the left, the screen title centered
// and the player's coins and score on the right.
func RenderHeader(appName, title string, stats HeaderStats, width int) string {
	name := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if stats != (HeaderStats{}) {
		right = stats.Avatar + "  " +
			theme.Coins.Render(fmt.Sprintf("● %d", stats.Coins)) + "   " +
			theme.Score.Render(fmt.Sprintf("★ %d", stats.Score))
	}

	// 2 border columns plus 2 padding columns.
	inner := max(width-4, 0)
	nameW, centerW := lipgloss.Width(name), lipgloss.Width(center)
	gapL := (inner-centerW)/2 - nameW
	gapR := inner - nameW - max(gapL, 1) - centerW - lipgloss.Width(right)

	return bar(width).Render(name + spaces(gapL) + center + spaces(gapR) + right)
}

// RenderFooter draws the key hints in one row.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description))
	}
	return bar(width).Render(b.String())
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
