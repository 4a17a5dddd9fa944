package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// maxSessions is how many recent plays are listed.
const maxSessions = 30

type historyLoadedMsg struct {
	Sessions []store.SessionEventRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEventRecord
	Err       error
}

// HistoryScreen lists finished and abandoned levels, newest first. Enter
// expands a row into its per-question answers.
type HistoryScreen struct {
	env      *screen.Env
	sessions []store.SessionEventRecord
	answers  map[string][]store.AnswerEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	return &HistoryScreen{
		env:      env,
		answers:  make(map[string][]store.AnswerEventRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	events := s.env.Events
	if events == nil {
		s.loaded = true
		return nil
	}
	return func() tea.Msg {
		all, err := events.QuerySessionEvents(context.Background(), store.QueryOpts{Limit: 3 * maxSessions})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		var done []store.SessionEventRecord
		for _, e := range all {
			if e.Action == store.ActionStart {
				continue
			}
			done = append(done, e)
			if len(done) == maxSessions {
				break
			}
		}
		return historyLoadedMsg{Sessions: done}
	}
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	events := s.env.Events
	return func() tea.Msg {
		answers, err := events.QueryAnswerEvents(context.Background(), store.QueryOpts{SessionID: sessionID})
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.env.Log().Error("load history", "error", msg.Err)
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.env.Log().Error("load answers", "session", msg.SessionID, "error", msg.Err)
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= len(s.sessions) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			id := s.sessions[s.selected].SessionID
			if _, ok := s.answers[id]; !ok && s.expanded[s.selected] {
				return s, s.loadAnswers(id)
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  " + s.env.Text().Loading)
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Let's play!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.sessions {
		dateStr := e.Timestamp.Local().Format("Jan 02 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-6s  %s  %5d pts  %d/%d  %s",
			prefix, dateStr, e.LevelID, outcomeLabel(e), e.Score, e.CorrectCount, e.TotalQuestions, e.Avatar)

		style := lipgloss.NewStyle().Foreground(outcomeColor(e))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(e.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    "+s.env.Text().Loading)) + "\n"
	}
	if len(answers) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		var line string
		switch {
		case timedOut(a):
			line = fmt.Sprintf("    %2d. %-14s  ⏱  (%d)", a.QuestionIndex+1, a.QuestionText, a.CorrectAnswer)
		case a.Correct:
			line = fmt.Sprintf("    %2d. %-14s  ✓ %d  +%d", a.QuestionIndex+1, a.QuestionText, a.Chosen, a.Points)
		default:
			line = fmt.Sprintf("    %2d. %-14s  ✗ %d  (%d)", a.QuestionIndex+1, a.QuestionText, a.Chosen, a.CorrectAnswer)
		}
		style := theme.Incorrect.UnsetBold()
		if a.Correct {
			style = theme.Correct.UnsetBold()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func outcomeLabel(e store.SessionEventRecord) string {
	switch {
	case e.Action == store.ActionAbort:
		return "LEFT"
	case e.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

func outcomeColor(e store.SessionEventRecord) color.Color {
	switch {
	case e.Action == store.ActionAbort:
		return theme.TextDim
	case e.Passed:
		return theme.Success
	default:
		return theme.Error
	}
}

// timedOut reports whether the answer record is a timeout.
func timedOut(a store.AnswerEventRecord) bool {
	return a.TimedOut || a.Chosen == session.NoAnswer
}
