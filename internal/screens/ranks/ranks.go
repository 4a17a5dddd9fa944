// Package ranks shows the shared leaderboard.
package ranks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

type entriesMsg struct {
	entries []leaderboard.Entry
}

// RanksScreen lists the top players. The current player's row is
// highlighted.
type RanksScreen struct {
	env     *screen.Env
	entries []leaderboard.Entry
	loaded  bool
}

var _ screen.Screen = (*RanksScreen)(nil)
var _ screen.KeyHintProvider = (*RanksScreen)(nil)

func New(env *screen.Env) *RanksScreen {
	return &RanksScreen{env: env}
}

func (s *RanksScreen) Init() tea.Cmd {
	if !s.env.Board.Enabled() {
		s.loaded = true
		return nil
	}
	board := s.env.Board
	limit := s.env.BoardLimit
	if limit <= 0 {
		limit = leaderboard.DefaultLimit
	}
	return func() tea.Msg {
		return entriesMsg{entries: board.Top(context.Background(), limit)}
	}
}

func (s *RanksScreen) Title() string {
	return s.env.Text().LeaderboardTitle
}

func (s *RanksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RanksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		s.entries = msg.entries
		s.loaded = true
	case tea.KeyPressMsg:
		if msg.String() == "r" && s.loaded && s.env.Board.Enabled() {
			s.loaded = false
			return s, s.Init()
		}
	}
	return s, nil
}

func (s *RanksScreen) View(width, height int) string {
	t := s.env.Text()
	cw := components.ContentWidth(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	var body string
	switch {
	case !s.env.Board.Enabled():
		body = dim.Render("Leaderboard is off. Set leaderboard.driver to turn it on.")
	case !s.loaded:
		body = dim.Render(t.Loading)
	case len(s.entries) == 0:
		body = dim.Render(t.EmptyLeaderboard)
	default:
		body = s.renderRows()
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("🏆 " + t.LeaderboardTitle))
	b.WriteString("\n\n")
	b.WriteString(body)

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *RanksScreen) renderRows() string {
	me := player.NormalizeName(s.env.Stats.Name)
	var rows []string
	for i, e := range s.entries {
		line := fmt.Sprintf("%2d. %s %-12s %7d", i+1, avatar.ID(e.Avatar).Icon(), e.Name, e.Score)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case e.Name == me:
			style = theme.Selected
		case i < 3:
			style = lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
		}
		rows = append(rows, style.Render(line))
	}
	return strings.Join(rows, "\n")
}
