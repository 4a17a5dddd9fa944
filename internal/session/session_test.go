package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/problemgen"
)

// fixedSource always serves 2 + 3.
type fixedSource struct{ served int }

func (f *fixedSource) Generate(level.Config) *problemgen.Question {
	f.served++
	return &problemgen.Question{
		Num1: 2, Num2: 3, Operator: level.Add,
		CorrectAnswer: 5, Choices: []int{4, 5, 6, 7},
	}
}

func testLevel(t *testing.T) level.Config {
	t.Helper()
	cfg, err := level.Get(8, 5, i18n.EN)
	require.NoError(t, err)
	return cfg
}

type harness struct {
	orch    *Orchestrator
	sched   *ManualScheduler
	source  *fixedSource
	answers []Answer
	results []Result
	ticks   []int
}

func newHarness(t *testing.T, mods avatar.Modifiers) *harness {
	t.Helper()
	h := &harness{sched: NewManualScheduler(), source: &fixedSource{}}
	h.orch = New(Options{
		Level:     testLevel(t),
		Modifiers: mods,
		Source:    h.source,
		Scheduler: h.sched,
		Timing:    DefaultTiming(),
		SessionID: "test-session",
		Hooks: Hooks{
			OnTick:   func(left int) { h.ticks = append(h.ticks, left) },
			OnAnswer: func(a Answer) { h.answers = append(h.answers, a) },
			OnFinish: func(r Result) { h.results = append(h.results, r) },
		},
	})
	return h
}

func (h *harness) ready() {
	h.sched.Advance(600 * time.Millisecond)
}

func (h *harness) feedback() {
	h.sched.Advance(2200 * time.Millisecond)
}

func TestOrchestrator_ReadyDelay(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()

	assert.Equal(t, PhaseAwaiting, h.orch.Phase())
	assert.NotNil(t, h.orch.Question())
	assert.False(t, h.orch.Submit(5), "answers are ignored before the countdown starts")

	h.sched.Advance(599 * time.Millisecond)
	assert.Equal(t, PhaseAwaiting, h.orch.Phase())
	h.sched.Advance(time.Millisecond)
	assert.Equal(t, PhaseActive, h.orch.Phase())
	assert.Equal(t, 30, h.orch.TimeLeft())
}

func TestOrchestrator_CorrectAnswerScoresWithTimeLeft(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()
	h.sched.Advance(10 * time.Second)
	require.Equal(t, 20, h.orch.TimeLeft())

	require.True(t, h.orch.Submit(5))
	assert.Equal(t, PhaseAnswered, h.orch.Phase())
	require.Len(t, h.answers, 1)
	assert.True(t, h.answers[0].Correct)
	assert.Equal(t, 310, h.answers[0].Points)
	assert.Equal(t, 1, h.answers[0].Streak)
	assert.Equal(t, 200, h.answers[0].Award.SpeedBonus)
	assert.Equal(t, 10, h.answers[0].Award.StreakBonus)

	st := h.orch.State()
	assert.Equal(t, 310, st.Score)
	assert.Equal(t, 1, st.CorrectCount)
	assert.Equal(t, 0, st.QuestionIndex)
}

func TestOrchestrator_SingleAnswerLatch(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()

	require.True(t, h.orch.Submit(4))
	assert.False(t, h.orch.Submit(5))
	assert.False(t, h.orch.Submit(5))
	require.Len(t, h.answers, 1)
	assert.False(t, h.answers[0].Correct)
	assert.Zero(t, h.answers[0].Award)
	assert.Equal(t, 0, h.orch.State().Score)

	// The countdown is stopped once answered.
	left := h.orch.TimeLeft()
	h.sched.Advance(2 * time.Second)
	assert.Equal(t, left, h.orch.TimeLeft())
}

func TestOrchestrator_Timeout(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()

	h.sched.Advance(29 * time.Second)
	assert.Equal(t, 1, h.orch.TimeLeft())
	assert.Equal(t, PhaseActive, h.orch.Phase())
	assert.Empty(t, h.answers)

	h.sched.Advance(time.Second)
	require.Len(t, h.answers, 1)
	a := h.answers[0]
	assert.True(t, a.TimedOut)
	assert.False(t, a.Correct)
	assert.Equal(t, NoAnswer, a.Choice)
	assert.Equal(t, 0, a.TimeLeft)
	assert.Equal(t, 0, h.orch.State().Streak)
	assert.Equal(t, PhaseAnswered, h.orch.Phase())
	assert.False(t, h.orch.Submit(5))
}

func TestOrchestrator_TimeBonusExtendsTimer(t *testing.T) {
	h := newHarness(t, avatar.Stats(avatar.Bunny))
	h.orch.Start()
	h.ready()
	assert.Equal(t, 35, h.orch.TimeLeft())

	h.sched.Advance(34 * time.Second)
	assert.Empty(t, h.answers)
	h.sched.Advance(time.Second)
	assert.Len(t, h.answers, 1)
}

func TestOrchestrator_StartStreak(t *testing.T) {
	h := newHarness(t, avatar.Stats(avatar.Ninja))
	assert.Equal(t, 2, h.orch.State().Streak)

	h.orch.Start()
	h.ready()
	require.True(t, h.orch.Submit(5))
	// 100 + 300 + 30
	assert.Equal(t, 430, h.answers[0].Points)
	assert.Equal(t, 3, h.orch.State().Streak)
}

func TestOrchestrator_WrongResetsStreak(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()
	h.orch.Submit(5)
	h.feedback()
	h.ready()
	h.orch.Submit(5)
	assert.Equal(t, 2, h.orch.State().Streak)
	h.feedback()
	h.ready()
	h.orch.Submit(7)
	assert.Equal(t, 0, h.orch.State().Streak)
	assert.Equal(t, 2, h.orch.State().CorrectCount)
}

func TestOrchestrator_FullLevel(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()

	for i := range 10 {
		require.Equal(t, i, h.orch.State().QuestionIndex)
		h.ready()
		require.True(t, h.orch.Submit(5))
		h.feedback()
	}

	assert.Equal(t, PhaseFinished, h.orch.Phase())
	assert.Equal(t, 10, h.source.served)
	require.Len(t, h.results, 1)
	r := h.results[0]
	// Each answer: 100 + 300 + 10*streak.
	assert.Equal(t, 10*400+10*55, r.Score)
	assert.True(t, r.Passed)
	assert.Equal(t, 10, r.CorrectCount)
	assert.Equal(t, 10, r.TotalQuestions)
	assert.Equal(t, "age_8_lvl_5", r.LevelID)
	assert.Equal(t, "test-session", r.SessionID)
	assert.Equal(t, &r, h.orch.Result())
	assert.Zero(t, h.sched.Pending())
}

func TestOrchestrator_AllTimeoutsFail(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	for range 10 {
		h.ready()
		h.sched.Advance(30 * time.Second)
		h.feedback()
	}
	require.Len(t, h.results, 1)
	assert.Equal(t, 0, h.results[0].Score)
	assert.False(t, h.results[0].Passed)
	assert.Equal(t, 0, h.results[0].CorrectCount)
}

func TestOrchestrator_AbortCancelsTimers(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()
	h.sched.Advance(5 * time.Second)

	h.orch.Abort()
	assert.Equal(t, PhaseAborted, h.orch.Phase())
	assert.Zero(t, h.sched.Pending())

	h.sched.Advance(time.Minute)
	assert.Empty(t, h.answers)
	assert.Empty(t, h.results)
	assert.False(t, h.orch.Submit(5))
}

func TestOrchestrator_AbortDuringFeedback(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()
	h.orch.Submit(5)
	h.orch.Abort()
	h.sched.Advance(time.Minute)
	assert.Equal(t, 1, h.source.served)
	assert.Empty(t, h.results)
}

func TestOrchestrator_ModifiersSnapshot(t *testing.T) {
	mods := avatar.Stats(avatar.Royal)
	h := newHarness(t, mods)
	mods.ScoreMultiplier = 10
	assert.Equal(t, 1.25, h.orch.Modifiers().ScoreMultiplier)
}

func TestOrchestrator_TickHook(t *testing.T) {
	h := newHarness(t, avatar.Neutral)
	h.orch.Start()
	h.ready()
	h.sched.Advance(3 * time.Second)
	assert.Equal(t, []int{29, 28, 27}, h.ticks)
}

func TestOrchestrator_DefaultsFromZeroOptions(t *testing.T) {
	o := New(Options{Level: testLevel(t), Scheduler: NewManualScheduler()})
	assert.NotEmpty(t, o.SessionID())
	assert.Equal(t, PhaseIdle, o.Phase())
	o.Start()
	require.NotNil(t, o.Question())
	assert.NoError(t, problemgen.NewDefault().Validate(o.Question(), testLevel(t)))
}

func TestOrchestrator_RequiresScheduler(t *testing.T) {
	assert.PanicsWithValue(t, "session: Options.Scheduler is required", func() {
		New(Options{Level: testLevel(t)})
	})
}

func TestManualScheduler(t *testing.T) {
	s := NewManualScheduler()
	var order []string
	s.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	cancel := s.AfterFunc(time.Second, func() { order = append(order, "x") })
	s.AfterFunc(time.Second, func() {
		order = append(order, "a")
		s.AfterFunc(500*time.Millisecond, func() { order = append(order, "a2") })
	})
	cancel()

	s.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "a2", "b"}, order)
	assert.Equal(t, 3*time.Second, s.Now())
	assert.Zero(t, s.Pending())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
