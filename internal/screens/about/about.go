// Package about shows what the game is and who made it.
package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const (
	developer = "Febri Suryanto"
	role      = "Frontend Engineer"
	location  = "Serang Banten, Indonesia"
)

type AboutScreen struct {
	env *screen.Env
}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

func New(env *screen.Env) *AboutScreen {
	return &AboutScreen{env: env}
}

func (s *AboutScreen) Init() tea.Cmd {
	return nil
}

func (s *AboutScreen) Title() string {
	return s.env.Text().AboutTitle
}

func (s *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AboutScreen) View(width, height int) string {
	t := s.env.Text()
	cw := components.ContentWidth(width)
	heading := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6)

	var b strings.Builder
	b.WriteString(theme.Title.Render(t.AppTitle))
	b.WriteString("\n\n")
	b.WriteString(heading.Render(t.AboutGame))
	b.WriteString("\n")
	b.WriteString(body.Render(t.AboutText))
	b.WriteString("\n\n")
	b.WriteString(heading.Render(t.AboutDev))
	b.WriteString("\n")
	b.WriteString(body.Render(developer + " · " + role))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(location))
	b.WriteString("\n\n")
	b.WriteString(heading.Render(t.AboutCredits))
	b.WriteString("\n")
	b.WriteString(body.Render(t.AboutMadeWith))

	if s.env.Version != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(t.Version + " " + s.env.Version))
	}

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
