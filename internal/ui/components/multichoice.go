package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// ChoiceGrid shows numeric answers in a 2x2 grid. Keys 1-4 pick an answer
// directly; arrows move the cursor and enter confirms.
type ChoiceGrid struct {
	Options  []int
	Selected int

	// Locked disables input, e.g. before the countdown starts.
	Locked bool

	revealed bool
	correct  int
	chosen   int
	hasPick  bool
}

func NewChoiceGrid(options []int) ChoiceGrid {
	return ChoiceGrid{Options: options}
}

// Update returns the picked index, or -1 when the message picked nothing.
func (g ChoiceGrid) Update(msg tea.Msg) (ChoiceGrid, int) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || g.Locked || g.revealed {
		return g, -1
	}

	n := len(g.Options)
	switch key := kmsg.String(); key {
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < n {
			g.Selected = i
			return g, i
		}
	case "left", "h":
		if g.Selected%2 == 1 {
			g.Selected--
		}
	case "right", "l":
		if g.Selected%2 == 0 && g.Selected+1 < n {
			g.Selected++
		}
	case "up", "k":
		if g.Selected >= 2 {
			g.Selected -= 2
		}
	case "down", "j":
		if g.Selected+2 < n {
			g.Selected += 2
		}
	case "enter", "space":
		if n > 0 {
			return g, g.Selected
		}
	}
	return g, -1
}

// Reveal colors the correct answer and, when it differs, the chosen one.
// chosen < 0 means no answer was given.
func (g *ChoiceGrid) Reveal(correct, chosen int) {
	g.revealed = true
	g.correct = correct
	g.chosen = chosen
	g.hasPick = chosen >= 0
}

func (g ChoiceGrid) View(cellWidth int) string {
	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	cells := make([]string, len(g.Options))
	for i, opt := range g.Options {
		label := fmt.Sprintf("%d)  %d", i+1, opt)
		style := cell.BorderForeground(theme.Border).Foreground(theme.Text)
		switch {
		case g.revealed && opt == g.correct:
			style = cell.BorderForeground(theme.Success).Foreground(theme.Success).Bold(true)
		case g.revealed && g.hasPick && i == g.chosen:
			style = cell.BorderForeground(theme.Error).Foreground(theme.Error).Bold(true)
		case g.revealed:
			style = cell.BorderForeground(theme.Border).Foreground(theme.TextDim)
		case g.Locked:
			style = cell.BorderForeground(theme.Border).Foreground(theme.TextDim)
		case i == g.Selected:
			style = cell.BorderForeground(theme.ArcadeYellow).Foreground(theme.ArcadeYellow).Bold(true)
		}
		cells[i] = style.Render(label)
	}

	var rows []string
	for i := 0; i < len(cells); i += 2 {
		end := min(i+2, len(cells))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
