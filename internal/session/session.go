// Package session drives one level: question timer, answer latch,
// scoring and the final result.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/scoring"
)

// QuestionSource draws questions for a level.
type QuestionSource interface {
	Generate(cfg level.Config) *problemgen.Question
}

// Timing controls the delays of the per-question loop.
type Timing struct {
	// ReadyDelay is the pause between showing a question and starting
	// its countdown.
	ReadyDelay time.Duration

	// Tick is the countdown step.
	Tick time.Duration

	// FeedbackDelay is how long the answer feedback stays up.
	FeedbackDelay time.Duration
}

// DefaultTiming returns the standard game pacing.
func DefaultTiming() Timing {
	return Timing{
		ReadyDelay:    600 * time.Millisecond,
		Tick:          time.Second,
		FeedbackDelay: 2200 * time.Millisecond,
	}
}

// Hooks are optional callbacks fired synchronously on transitions.
type Hooks struct {
	OnQuestion func(q *problemgen.Question, index int)
	OnActive   func(timeLeft int)
	OnTick     func(timeLeft int)
	OnAnswer   func(a Answer)
	OnFinish   func(r Result)
}

// Options configure an Orchestrator.
type Options struct {
	Level     level.Config
	Modifiers avatar.Modifiers
	Source    QuestionSource
	Timing    Timing
	Hooks     Hooks

	// Scheduler is required. It must run callbacks on the goroutine that
	// drives the orchestrator, so there is no real-time default.
	Scheduler Scheduler

	// SessionID defaults to a new UUID.
	SessionID string
}

// Orchestrator is the per-level state machine. It is single-threaded:
// every method and every scheduler callback must run on one goroutine.
type Orchestrator struct {
	level     level.Config
	mods      avatar.Modifiers
	source    QuestionSource
	sched     Scheduler
	timing    Timing
	hooks     Hooks
	sessionID string

	phase    Phase
	state    State
	question *problemgen.Question
	timeLeft int
	last     *Answer
	result   *Result

	cancel func()
}

// New creates an orchestrator in PhaseIdle. The modifiers are copied
// so later avatar changes do not affect this level. A nil Source draws
// validated questions from problemgen.NewDefault. New panics when
// opts.Scheduler is nil.
func New(opts Options) *Orchestrator {
	if opts.Scheduler == nil {
		panic("session: Options.Scheduler is required")
	}
	if opts.Timing.Tick <= 0 {
		opts.Timing = DefaultTiming()
	}
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Source == nil {
		opts.Source = problemgen.NewDefault()
	}
	return &Orchestrator{
		level:     opts.Level,
		mods:      opts.Modifiers,
		source:    opts.Source,
		sched:     opts.Scheduler,
		timing:    opts.Timing,
		hooks:     opts.Hooks,
		sessionID: opts.SessionID,
		state:     State{Streak: opts.Modifiers.StartStreak},
	}
}

// Start serves the first question. It is a no-op unless idle.
func (o *Orchestrator) Start() {
	if o.phase != PhaseIdle {
		return
	}
	o.nextQuestion()
}

// Submit answers the active question. It returns false when no answer
// is being accepted.
func (o *Orchestrator) Submit(choice int) bool {
	if o.phase != PhaseActive {
		return false
	}
	o.resolve(choice, false)
	return true
}

// Abort leaves the level, cancelling any pending timer. No result is
// emitted.
func (o *Orchestrator) Abort() {
	if o.phase == PhaseFinished || o.phase == PhaseAborted {
		return
	}
	o.stopTimer()
	o.phase = PhaseAborted
}

func (o *Orchestrator) Phase() Phase                   { return o.phase }
func (o *Orchestrator) State() State                   { return o.state }
func (o *Orchestrator) Question() *problemgen.Question { return o.question }
func (o *Orchestrator) TimeLeft() int                  { return o.timeLeft }
func (o *Orchestrator) Level() level.Config            { return o.level }
func (o *Orchestrator) Modifiers() avatar.Modifiers    { return o.mods }
func (o *Orchestrator) SessionID() string              { return o.sessionID }

// LastAnswer returns the most recently resolved question, or nil.
func (o *Orchestrator) LastAnswer() *Answer { return o.last }

// Result returns the final result once finished, or nil.
func (o *Orchestrator) Result() *Result { return o.result }

func (o *Orchestrator) nextQuestion() {
	o.phase = PhaseAwaiting
	o.question = o.source.Generate(o.level)
	o.timeLeft = scoring.TimerSeconds(o.mods)
	if o.hooks.OnQuestion != nil {
		o.hooks.OnQuestion(o.question, o.state.QuestionIndex)
	}
	o.schedule(o.timing.ReadyDelay, o.activate)
}

func (o *Orchestrator) activate() {
	o.phase = PhaseActive
	if o.hooks.OnActive != nil {
		o.hooks.OnActive(o.timeLeft)
	}
	o.schedule(o.timing.Tick, o.tick)
}

func (o *Orchestrator) tick() {
	if o.phase != PhaseActive {
		return
	}
	if o.timeLeft <= 1 {
		o.timeLeft = 0
		o.resolve(NoAnswer, true)
		return
	}
	o.timeLeft--
	if o.hooks.OnTick != nil {
		o.hooks.OnTick(o.timeLeft)
	}
	o.schedule(o.timing.Tick, o.tick)
}

func (o *Orchestrator) resolve(choice int, timedOut bool) {
	o.stopTimer()
	o.phase = PhaseAnswered

	a := Answer{
		Question: o.question,
		Choice:   choice,
		TimedOut: timedOut,
		TimeLeft: o.timeLeft,
	}
	if !timedOut && o.question.Check(choice) {
		a.Correct = true
		a.Award = scoring.Breakdown(o.timeLeft, o.state.Streak, o.mods)
		a.Points, o.state.Streak = a.Award.Points, a.Award.Streak
		o.state.Score += a.Points
		o.state.CorrectCount++
	} else {
		a.Points, o.state.Streak = scoring.ScoreWrong()
	}
	a.Streak = o.state.Streak
	o.last = &a

	if o.hooks.OnAnswer != nil {
		o.hooks.OnAnswer(a)
	}
	o.schedule(o.timing.FeedbackDelay, o.advance)
}

func (o *Orchestrator) advance() {
	o.state.QuestionIndex++
	if o.state.QuestionIndex >= o.level.QuestionsCount {
		o.finish()
		return
	}
	o.nextQuestion()
}

func (o *Orchestrator) finish() {
	o.phase = PhaseFinished
	o.question = nil
	r := Result{
		SessionID:      o.sessionID,
		LevelID:        o.level.ID,
		Score:          o.state.Score,
		Passed:         scoring.Passed(o.state.Score, o.level.TargetScore),
		CorrectCount:   o.state.CorrectCount,
		TotalQuestions: o.level.QuestionsCount,
	}
	o.result = &r
	if o.hooks.OnFinish != nil {
		o.hooks.OnFinish(r)
	}
}

// schedule replaces the single pending timer. A zero delay runs f
// immediately.
func (o *Orchestrator) schedule(d time.Duration, f func()) {
	o.stopTimer()
	if d <= 0 {
		f()
		return
	}
	o.cancel = o.sched.AfterFunc(d, func() {
		o.cancel = nil
		f()
	})
}

func (o *Orchestrator) stopTimer() {
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
}
