package session

import (
	"context"
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// FinishFunc builds the screen that replaces the game once the level
// ends.
type FinishFunc func(cfg level.Config, r sess.Result) screen.Screen

// SessionScreen implements screen.Screen for one level of play.
type SessionScreen struct {
	env   *screen.Env
	cfg   level.Config
	sched *teaScheduler
	orch  *sess.Orchestrator
	grid  components.ChoiceGrid
	next  FinishFunc

	// pending collects commands raised by orchestrator hooks during one
	// Update call.
	pending     []tea.Cmd
	confirmQuit bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Leaver = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a game screen for cfg. The avatar modifiers are captured
// now; changing avatar mid-level has no effect.
func New(env *screen.Env, cfg level.Config, next FinishFunc) *SessionScreen {
	s := &SessionScreen{
		env:   env,
		cfg:   cfg,
		sched: newTeaScheduler(),
		next:  next,
	}

	var source sess.QuestionSource
	if env.NewSource != nil {
		source = env.NewSource()
	}

	s.orch = sess.New(sess.Options{
		Level:     cfg,
		Modifiers: env.Stats.Modifiers(),
		Source:    source,
		Scheduler: s.sched,
		Timing:    env.Timing,
		Hooks: sess.Hooks{
			OnQuestion: s.onQuestion,
			OnActive:   s.onActive,
			OnAnswer:   s.onAnswer,
			OnFinish:   s.onFinish,
		},
	})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	s.orch.Start()
	s.record("session start", func(ctx context.Context, events store.EventRepo) error {
		return events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      s.orch.SessionID(),
			Action:         store.ActionStart,
			LevelID:        s.cfg.ID,
			Avatar:         string(s.env.Stats.Avatar),
			TotalQuestions: s.cfg.QuestionsCount,
		})
	})
	return s.flush()
}

func (s *SessionScreen) Title() string {
	return s.cfg.Name
}

func (s *SessionScreen) HandlesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave level"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Arrows", Description: "Move"},
		{Key: "Enter", Description: "Pick"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if msg.owner != s.sched {
			return s, nil
		}
		s.sched.Fire(msg.id)
		return s, s.flush()

	case persistedMsg:
		if msg.err != nil {
			s.env.Log().Error("persist event", "event", msg.what, "error", msg.err)
		}
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// Leave stops the level when the screen is popped or replaced. An
// unfinished level is recorded as aborted and yields no result.
func (s *SessionScreen) Leave() tea.Cmd {
	phase := s.orch.Phase()
	if phase != sess.PhaseFinished && phase != sess.PhaseAborted {
		state := s.orch.State()
		s.orch.Abort()
		s.record("session abort", func(ctx context.Context, events store.EventRepo) error {
			return events.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID:      s.orch.SessionID(),
				Action:         store.ActionAbort,
				LevelID:        s.cfg.ID,
				Avatar:         string(s.env.Stats.Avatar),
				Score:          state.Score,
				CorrectCount:   state.CorrectCount,
				TotalQuestions: s.cfg.QuestionsCount,
			})
		})
	}
	s.sched.Stop()
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.orch.Phase() != sess.PhaseActive {
		return s, nil
	}

	var picked int
	s.grid, picked = s.grid.Update(msg)
	if picked < 0 {
		return s, nil
	}
	s.orch.Submit(s.grid.Options[picked])
	return s, s.flush()
}

func (s *SessionScreen) onQuestion(q *problemgen.Question, _ int) {
	s.grid = components.NewChoiceGrid(q.Choices)
	s.grid.Locked = true
}

func (s *SessionScreen) onActive(int) {
	s.grid.Locked = false
}

func (s *SessionScreen) onAnswer(a sess.Answer) {
	chosen := -1
	if !a.TimedOut {
		chosen = slices.Index(s.grid.Options, a.Choice)
	}
	s.grid.Reveal(a.Question.CorrectAnswer, chosen)

	index := s.orch.State().QuestionIndex
	s.record("answer", func(ctx context.Context, events store.EventRepo) error {
		return events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:     s.orch.SessionID(),
			LevelID:       s.cfg.ID,
			QuestionIndex: index,
			QuestionText:  a.Question.Text(),
			CorrectAnswer: a.Question.CorrectAnswer,
			Chosen:        a.Choice,
			Correct:       a.Correct,
			TimedOut:      a.TimedOut,
			TimeLeft:      a.TimeLeft,
			Points:        a.Points,
			Streak:        a.Streak,
		})
	})
}

func (s *SessionScreen) onFinish(r sess.Result) {
	s.record("session finish", func(ctx context.Context, events store.EventRepo) error {
		return events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:      r.SessionID,
			Action:         store.ActionFinish,
			LevelID:        r.LevelID,
			Avatar:         string(s.env.Stats.Avatar),
			Score:          r.Score,
			Passed:         r.Passed,
			CorrectCount:   r.CorrectCount,
			TotalQuestions: r.TotalQuestions,
		})
	})

	if s.next == nil {
		s.pending = append(s.pending, func() tea.Msg { return router.PopScreenMsg{} })
		return
	}
	result := s.next(s.cfg, r)
	s.pending = append(s.pending, func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} })
}

// record queues an event write. Writes run off the UI goroutine and
// report back with persistedMsg.
func (s *SessionScreen) record(what string, write func(context.Context, store.EventRepo) error) {
	events := s.env.Events
	if events == nil {
		return
	}
	s.pending = append(s.pending, func() tea.Msg {
		return persistedMsg{what: what, err: write(context.Background(), events)}
	})
}

// flush returns the commands produced since the last flush: hook
// commands first, then timer ticks.
func (s *SessionScreen) flush() tea.Cmd {
	cmds := append(s.pending, s.sched.Drain()...)
	s.pending = nil
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
