// Package summary shows the outcome of a finished level and folds it into
// the player's stats.
package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/coach"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// PlayFunc builds a game screen for a level.
type PlayFunc func(cfg level.Config) screen.Screen

type action int

const (
	actionNext action = iota
	actionRetry
	actionMenu
)

// coachMsg carries the coach's reply.
type coachMsg struct {
	reply coach.Reply
}

// publishedMsg reports whether the leaderboard accepted the score.
type publishedMsg struct {
	ok bool
}

// SummaryScreen displays the result of one level.
type SummaryScreen struct {
	env    *screen.Env
	cfg    level.Config
	result session.Result
	play   PlayFunc

	applied   bool
	outcome   player.Outcome
	message   coach.Reply
	published bool

	actions  []action
	selected int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. The result is applied to the player's
// stats when the screen is first shown.
func New(env *screen.Env, cfg level.Config, result session.Result, play PlayFunc) *SummaryScreen {
	return &SummaryScreen{
		env:    env,
		cfg:    cfg,
		result: result,
		play:   play,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.applied {
		return nil
	}
	s.applied = true
	s.outcome = s.env.Stats.Apply(s.result, s.cfg)
	s.env.Save()
	s.env.Log().Info("level finished",
		"level", s.cfg.ID,
		"score", s.result.Score,
		"passed", s.result.Passed,
		"stars", s.outcome.Stars,
		"coins", s.outcome.Coins,
	)

	s.message = coach.Reply{Text: coach.Title(s.env.Lang(), s.outcome.Passed, s.outcome.Stars)}
	s.actions = s.buildActions()

	return tea.Batch(s.askCoach(), s.publish())
}

func (s *SummaryScreen) buildActions() []action {
	if s.outcome.Passed && s.cfg.Index < level.Count {
		return []action{actionNext, actionRetry, actionMenu}
	}
	return []action{actionRetry, actionMenu}
}

func (s *SummaryScreen) askCoach() tea.Cmd {
	if s.env.Coach == nil {
		return nil
	}
	c := s.env.Coach
	req := coach.Request{
		Lang:   s.env.Lang(),
		Name:   s.env.Stats.Name,
		Level:  s.cfg.Name,
		Score:  s.result.Score,
		Target: s.cfg.TargetScore,
		Passed: s.outcome.Passed,
		Stars:  s.outcome.Stars,
	}
	return func() tea.Msg {
		return coachMsg{reply: c.Message(context.Background(), req)}
	}
}

// publish submits a copy of the stats so the write never races the UI.
func (s *SummaryScreen) publish() tea.Cmd {
	if !s.env.Board.Enabled() || !s.result.Passed {
		return nil
	}
	board := s.env.Board
	stats := *s.env.Stats
	passed := s.result.Passed
	return func() tea.Msg {
		return publishedMsg{ok: board.Publish(context.Background(), &stats, passed)}
	}
}

func (s *SummaryScreen) Title() string {
	return s.env.Text().LevelComplete
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←/→", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Levels"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coachMsg:
		s.message = msg.reply
		return s, nil

	case publishedMsg:
		s.published = msg.ok
		return s, nil

	case tea.KeyPressMsg:
		if len(s.actions) == 0 {
			return s, nil
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			if s.selected > 0 {
				s.selected--
			}
		case "right", "l", "tab":
			if s.selected < len(s.actions)-1 {
				s.selected++
			}
		case "enter", "space":
			return s, s.run(s.actions[s.selected])
		case "r":
			return s, s.run(actionRetry)
		case "n":
			if s.actions[0] == actionNext {
				return s, s.run(actionNext)
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) run(a action) tea.Cmd {
	switch a {
	case actionNext:
		next, err := level.Get(s.cfg.Age, s.cfg.Index+1, s.env.Lang())
		if err != nil || s.play == nil {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		game := s.play(next)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: game} }
	case actionRetry:
		if s.play == nil {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}
		cfg, err := level.Get(s.cfg.Age, s.cfg.Index, s.env.Lang())
		if err != nil {
			cfg = s.cfg
		}
		game := s.play(cfg)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: game} }
	default:
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
}

func (s *SummaryScreen) label(a action) string {
	t := s.env.Text()
	switch a {
	case actionNext:
		return t.Next
	case actionRetry:
		return t.Retry
	default:
		return t.Menu
	}
}

func (s *SummaryScreen) View(width, height int) string {
	t := s.env.Text()
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(headlineColor(s.outcome.Passed)).
		Bold(true).
		Render(coach.Title(s.env.Lang(), s.outcome.Passed, s.outcome.Stars)))
	b.WriteString("\n")

	if s.message.Generated {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Italic(true).
			Render(s.message.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var card strings.Builder
	if s.outcome.Passed {
		card.WriteString(theme.Stars(s.outcome.Stars))
		card.WriteString("\n\n")
		card.WriteString(t.LevelComplete)
	} else {
		card.WriteString(t.TryAgain)
	}
	card.WriteString("\n\n")
	card.WriteString(fmt.Sprintf("%s %s / %s %d\n",
		t.Score, theme.Score.Render(fmt.Sprintf("%d", s.result.Score)), t.Target, s.cfg.TargetScore))
	card.WriteString(fmt.Sprintf("%s %d/%d\n", t.Correct, s.result.CorrectCount, s.result.TotalQuestions))
	card.WriteString(fmt.Sprintf("%s %s   %s %s",
		t.EarnedCoins, theme.Coins.Render(fmt.Sprintf("+%d", s.outcome.Coins)),
		t.TotalCoins, theme.Coins.Render(fmt.Sprintf("%d", s.env.Stats.Coins))))
	if s.outcome.NewUnlocked {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("%s (%s %d)", t.NewLevel, t.LevelLabel, s.outcome.NextLevel)))
	}
	if s.published {
		card.WriteString("\n")
		card.WriteString(theme.Hint.Render("🏆 " + t.LeaderboardTitle + " ✓"))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ArcadeCard(card.String(), cw)))
	b.WriteString("\n\n")

	labels := make([]string, len(s.actions))
	for i, a := range s.actions {
		labels[i] = s.label(a)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.ButtonRow(labels, s.selected, cw)))

	return b.String()
}

func headlineColor(passed bool) color.Color {
	if passed {
		return theme.ArcadeYellow
	}
	return theme.Error
}
