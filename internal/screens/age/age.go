// Package age lets the player pick the age bracket that drives the
// level ladder.
package age

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const columns = 3

// AgeScreen shows the ages as a 3x3 grid of buttons.
type AgeScreen struct {
	env      *screen.Env
	next     func() screen.Screen
	selected int
}

var _ screen.Screen = (*AgeScreen)(nil)
var _ screen.KeyHintProvider = (*AgeScreen)(nil)

// New creates an AgeScreen. After a pick it replaces itself with next(),
// or pops when next is nil.
func New(env *screen.Env, next func() screen.Screen) *AgeScreen {
	a := &AgeScreen{env: env, next: next}
	if age := env.Stats.SelectedAge; level.ValidAge(age) == nil {
		a.selected = age - level.MinAge
	}
	return a
}

func count() int {
	return level.MaxAge - level.MinAge + 1
}

func (a *AgeScreen) Init() tea.Cmd {
	return nil
}

func (a *AgeScreen) Title() string {
	return a.env.Text().AgeTitle
}

func (a *AgeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Arrows", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
	}
}

// Selected returns the highlighted age.
func (a *AgeScreen) Selected() int {
	return level.MinAge + a.selected
}

func (a *AgeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return a, nil
	}

	n := count()
	switch key := kmsg.String(); key {
	case "left", "h":
		if a.selected%columns > 0 {
			a.selected--
		}
	case "right", "l":
		if a.selected%columns < columns-1 && a.selected+1 < n {
			a.selected++
		}
	case "up", "k":
		if a.selected >= columns {
			a.selected -= columns
		}
	case "down", "j":
		if a.selected+columns < n {
			a.selected += columns
		}
	case "4", "5", "6", "7", "8", "9":
		a.selected = int(key[0]-'0') - level.MinAge
		return a, a.pick()
	case "enter", "space":
		return a, a.pick()
	}
	return a, nil
}

func (a *AgeScreen) pick() tea.Cmd {
	age := a.Selected()
	if err := level.ValidAge(age); err != nil {
		return nil
	}
	a.env.Stats.SelectedAge = age
	a.env.Save()
	a.env.Log().Info("age selected", "age", age)

	if a.next == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	nextScreen := a.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: nextScreen} }
}

func (a *AgeScreen) View(width, height int) string {
	text := a.env.Text()

	var rows []string
	var row []string
	for i := 0; i < count(); i++ {
		label := fmt.Sprintf("%d %s", level.MinAge+i, text.Years)
		row = append(row, components.ArcadeButton(label, i == a.selected, 10))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(text.AgeTitle))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(text.AgeSubtitle))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinVertical(lipgloss.Center, rows...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
