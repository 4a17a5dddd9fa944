package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: bright, high-contrast colors readable by young children.
var (
	Primary   = lipgloss.Color("#8B5CF6") // purple
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F97316") // orange
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(Border)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Coins = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)

	Score = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)
)

// Stars renders a 0 to 3 star rating.
func Stars(n int) string {
	on := lipgloss.NewStyle().Foreground(ArcadeYellow).Render
	off := lipgloss.NewStyle().Foreground(Border).Render
	s := ""
	for i := 1; i <= 3; i++ {
		if i <= n {
			s += on("★")
		} else {
			s += off("☆")
		}
	}
	return s
}
