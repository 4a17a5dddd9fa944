package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	Fill        color.Color
}

// NewProgressBar creates a teal progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		Fill:        theme.Secondary,
	}
}

// NewCountdownBar shows the seconds left, turning orange then red as
// time runs out.
func NewCountdownBar(timeLeft, total, width int) ProgressBar {
	pct := 0.0
	if total > 0 {
		pct = float64(timeLeft) / float64(total)
	}
	bar := NewProgressBar(fmt.Sprintf("⏱ %2ds", timeLeft), pct, false, width)
	switch {
	case timeLeft <= 5:
		bar.Fill = theme.Error
	case timeLeft <= 10:
		bar.Fill = theme.Accent
	}
	return bar
}

func (p ProgressBar) View() string {
	var label string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6
	}
	barWidth := max(p.Width-lipgloss.Width(label)-percentWidth, 4)

	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)

	bar := label +
		lipgloss.NewStyle().Background(p.Fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))

	if p.ShowPercent {
		bar += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}
	return bar
}
