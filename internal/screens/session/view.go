package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/scoring"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.renderQuitConfirm(width)
	}
	q := s.orch.Question()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  " + s.env.Text().Loading)
	}
	return s.renderQuestionView(q, width)
}

// renderQuestionView renders the status line, countdown, question and
// answer grid.
func (s *SessionScreen) renderQuestionView(q *problemgen.Question, width int) string {
	text := s.env.Text()
	state := s.orch.State()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %s  %s", s.env.Stats.Avatar.Icon(), text.LevelLabel, s.cfg.Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  %s %s  %s %d",
			text.Progress,
			min(state.QuestionIndex+1, s.cfg.QuestionsCount),
			s.cfg.QuestionsCount,
			text.Score,
			theme.Score.Render(fmt.Sprintf("%d", state.Score)),
			text.Streak,
			state.Streak,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	barWidth := max(width-8, 10)
	bar := components.NewCountdownBar(s.orch.TimeLeft(), scoring.TimerSeconds(s.orch.Modifiers()), barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	if q.Visual != nil {
		b.WriteString(questionStyle.Render(renderVisual(q)))
		b.WriteString("\n")
		b.WriteString(questionStyle.Foreground(theme.TextDim).Render("= ?"))
	} else {
		b.WriteString(questionStyle.Render(q.Text()))
	}
	b.WriteString("\n\n")

	cell := min(max((width-12)/2, 8), 18)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.grid.View(cell)))
	b.WriteString("\n\n")

	b.WriteString(s.renderStatus(width))
	return b.String()
}

// renderVisual draws both operands as icon groups.
func renderVisual(q *problemgen.Question) string {
	v := q.Visual
	return strings.Repeat(v.Icon, v.Count1) + "  " + string(q.Operator) + "  " + strings.Repeat(v.Icon, v.Count2)
}

// renderStatus shows the ready prompt or the feedback for the last answer.
func (s *SessionScreen) renderStatus(width int) string {
	text := s.env.Text()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch s.orch.Phase() {
	case sess.PhaseAwaiting:
		return center.Foreground(theme.TextDim).Render(text.GetReady)

	case sess.PhaseAnswered:
		a := s.orch.LastAnswer()
		if a == nil {
			return ""
		}
		if a.Correct {
			return center.Foreground(theme.Success).Bold(true).
				Render(fmt.Sprintf("%s +%d %s", text.Correct, a.Points, text.PointsSuffix)) + "\n" +
				center.Foreground(theme.TextDim).
					Render(fmt.Sprintf("⚡ %s +%d   🔥 %s +%d",
						text.SpeedBonus, a.Award.SpeedBonus, text.Streak, a.Award.StreakBonus))
		}
		return center.Foreground(theme.Error).Bold(true).Render(text.Oops) + "\n" +
			center.Foreground(theme.TextDim).
				Render(fmt.Sprintf("%s %d", text.CorrectAnswerIs, a.Question.CorrectAnswer))
	}
	return ""
}

// renderQuitConfirm renders the quit confirmation dialog.
func (s *SessionScreen) renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.env.Text().QuitConfirm))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] " + s.env.Text().Exit))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] " + s.env.Text().Play))

	return b.String()
}
