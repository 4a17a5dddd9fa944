package session

import (
	"context"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	sess "github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	mu            sync.Mutex
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QuerySessionEvents(_ context.Context, _ store.QueryOpts) ([]store.SessionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryAnswerEvents(_ context.Context, _ store.QueryOpts) ([]store.AnswerEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.sessionEvents {
		out = append(out, e.Action)
	}
	return out
}

// stubScreen stands in for the result screen.
type stubScreen struct{ result sess.Result }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "result" }
func (s *stubScreen) Title() string                           { return "Result" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLevel(t *testing.T) level.Config {
	t.Helper()
	cfg, err := level.Get(6, 1, i18n.EN)
	if err != nil {
		t.Fatalf("level.Get: %v", err)
	}
	return cfg
}

func testSessionScreen(t *testing.T, next FinishFunc) (*SessionScreen, *mockEventRepo) {
	t.Helper()
	events := &mockEventRepo{}
	env := &screen.Env{
		Stats:  player.New("TEST", i18n.EN),
		Events: events,
		Timing: sess.Timing{
			ReadyDelay:    time.Millisecond,
			Tick:          time.Millisecond,
			FeedbackDelay: time.Millisecond,
		},
		NewSource: func() sess.QuestionSource { return problemgen.NewSeeded(7) },
	}
	return New(env, testLevel(t), next), events
}

// fireNext delivers the single pending orchestrator timer.
func fireNext(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	for id := range s.sched.timers {
		_, cmd := s.Update(timerFiredMsg{owner: s.sched, id: id})
		return cmd
	}
	t.Fatal("no pending timer")
	return nil
}

// drain runs cmd and every batched command, returning the messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func answerCorrectly(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	idx := slices.Index(s.grid.Options, s.orch.Question().CorrectAnswer)
	if idx < 0 {
		t.Fatal("correct answer not among choices")
	}
	_, cmd := s.Update(keyPress(rune('1' + idx)))
	return cmd
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t, nil)
	if s.Title() != s.cfg.Name {
		t.Errorf("Title = %q, want %q", s.Title(), s.cfg.Name)
	}
}

func TestSessionScreen_InitServesLockedQuestion(t *testing.T) {
	s, events := testSessionScreen(t, nil)
	drain(s.Init())

	if s.orch.Phase() != sess.PhaseAwaiting {
		t.Fatalf("phase = %v, want awaiting", s.orch.Phase())
	}
	if !s.grid.Locked {
		t.Error("expected grid locked before the countdown")
	}
	if len(s.grid.Options) != 4 {
		t.Errorf("options = %d, want 4", len(s.grid.Options))
	}
	if got := events.actions(); len(got) != 1 || got[0] != store.ActionStart {
		t.Errorf("session events = %v, want [start]", got)
	}

	// Answers before the countdown are ignored.
	s.Update(keyPress('1'))
	if s.orch.Phase() != sess.PhaseAwaiting {
		t.Errorf("phase = %v after early key, want awaiting", s.orch.Phase())
	}
}

func TestSessionScreen_AnswerRecorded(t *testing.T) {
	s, events := testSessionScreen(t, nil)
	s.Init()
	fireNext(t, s)

	if s.grid.Locked {
		t.Fatal("expected grid unlocked once active")
	}

	drain(answerCorrectly(t, s))

	if s.orch.Phase() != sess.PhaseAnswered {
		t.Fatalf("phase = %v, want answered", s.orch.Phase())
	}
	if len(events.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answerEvents))
	}
	ev := events.answerEvents[0]
	if !ev.Correct || ev.Points <= 0 || ev.QuestionIndex != 0 {
		t.Errorf("answer event = %+v", ev)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "CORRECT!") {
		t.Error("expected correct feedback in view")
	}
	if !strings.Contains(view, "Speed +") || !strings.Contains(view, "Combo +") {
		t.Error("expected points breakdown in view")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen(t, nil)
	s.Init()

	if !s.HandlesEscape() {
		t.Fatal("game screen should handle escape")
	}

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(s.View(80, 24), "[Y]") {
		t.Error("expected confirmation prompt in view")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSessionScreen_LeaveAborts(t *testing.T) {
	s, events := testSessionScreen(t, nil)
	s.Init()
	fireNext(t, s)

	drain(s.Leave())

	if s.orch.Phase() != sess.PhaseAborted {
		t.Errorf("phase = %v, want aborted", s.orch.Phase())
	}
	if s.sched.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", s.sched.Pending())
	}
	got := events.actions()
	if len(got) != 1 || got[0] != store.ActionAbort {
		t.Errorf("session events = %v, want [abort]", got)
	}

	// A tick already in flight is a no-op.
	_, cmd := s.Update(timerFiredMsg{owner: s.sched, id: 1})
	if cmd != nil {
		t.Error("expected no command for a stale timer")
	}
}

func TestSessionScreen_ForeignTimerIgnored(t *testing.T) {
	s, _ := testSessionScreen(t, nil)
	s.Init()

	_, cmd := s.Update(timerFiredMsg{owner: newTeaScheduler(), id: 1})
	if cmd != nil || s.orch.Phase() != sess.PhaseAwaiting {
		t.Error("expected a timer from another level to be ignored")
	}
}

func TestSessionScreen_FinishReplacesWithResult(t *testing.T) {
	var got sess.Result
	next := func(_ level.Config, r sess.Result) screen.Screen {
		got = r
		return &stubScreen{result: r}
	}
	s, events := testSessionScreen(t, next)
	s.Init()

	var last tea.Cmd
	for i := 0; i < s.cfg.QuestionsCount; i++ {
		fireNext(t, s)
		answerCorrectly(t, s)
		last = fireNext(t, s)
	}

	if s.orch.Phase() != sess.PhaseFinished {
		t.Fatalf("phase = %v, want finished", s.orch.Phase())
	}
	if !got.Passed || got.CorrectCount != s.cfg.QuestionsCount {
		t.Errorf("result = %+v", got)
	}

	var replaced bool
	for _, msg := range drain(last) {
		if m, ok := msg.(router.ReplaceScreenMsg); ok {
			_, replaced = m.Screen.(*stubScreen)
		}
	}
	if !replaced {
		t.Error("expected ReplaceScreenMsg with the result screen")
	}

	actions := events.actions()
	if len(actions) == 0 || actions[len(actions)-1] != store.ActionFinish {
		t.Errorf("session events = %v, want finish last", actions)
	}

	// Leaving a finished level records nothing more.
	drain(s.Leave())
	if n := len(events.actions()); n != len(actions) {
		t.Errorf("session events after leave = %d, want %d", n, len(actions))
	}
}

func TestSessionScreen_TimeoutShowsAnswer(t *testing.T) {
	s, _ := testSessionScreen(t, nil)
	s.Init()
	fireNext(t, s)

	for s.orch.Phase() == sess.PhaseActive {
		fireNext(t, s)
	}
	if s.orch.Phase() != sess.PhaseAnswered {
		t.Fatalf("phase = %v, want answered", s.orch.Phase())
	}
	a := s.orch.LastAnswer()
	if a == nil || !a.TimedOut || a.Choice != sess.NoAnswer {
		t.Fatalf("last answer = %+v", a)
	}
	if !strings.Contains(s.View(80, 24), "ANSWER:") {
		t.Error("expected the correct answer in view")
	}
}

func TestTeaScheduler(t *testing.T) {
	sched := newTeaScheduler()
	var ran []int

	cancel := sched.AfterFunc(time.Second, func() { ran = append(ran, 1) })
	sched.AfterFunc(time.Second, func() { ran = append(ran, 2) })

	if n := len(sched.Drain()); n != 2 {
		t.Errorf("drained %d ticks, want 2", n)
	}
	if n := len(sched.Drain()); n != 0 {
		t.Errorf("second drain = %d, want 0", n)
	}

	cancel()
	sched.Fire(1)
	sched.Fire(2)
	sched.Fire(2)

	if len(ran) != 1 || ran[0] != 2 {
		t.Errorf("ran = %v, want [2]", ran)
	}

	sched.AfterFunc(time.Second, func() { ran = append(ran, 3) })
	sched.Stop()
	sched.Fire(3)
	if sched.Pending() != 0 || len(ran) != 1 {
		t.Errorf("expected Stop to drop pending callbacks")
	}
}
