package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/ui/theme"
)

// MenuItem is one row of a Menu. Note is rendered dimmed after the label.
type MenuItem struct {
	Label    string
	Note     string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list navigated with the arrow keys.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = m.step(-1)
	case "down", "j":
		m.Selected = m.step(1)
	case "enter", "space":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}
	return m, nil
}

// step returns the next enabled index in direction dir, or the current
// index when there is none.
func (m Menu) step(dir int) int {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			return i
		}
	}
	return m.Selected
}

func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		var line string
		switch {
		case item.Disabled:
			line = theme.Locked.Render("    " + item.Label)
		case i == m.Selected:
			line = theme.Selected.Render("  ▸ " + item.Label)
		default:
			line = theme.Unselected.Render("    " + item.Label)
		}
		if item.Note != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Note)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
