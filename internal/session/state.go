package session

import (
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/scoring"
)

// NoAnswer is the choice recorded when a question times out.
const NoAnswer = -999

// Phase is the orchestrator's position in the per-question loop.
type Phase int

const (
	PhaseIdle     Phase = iota // Created, not started
	PhaseAwaiting              // Question drawn, waiting for the ready delay
	PhaseActive                // Counting down, answers accepted
	PhaseAnswered              // Feedback window, answers ignored
	PhaseFinished              // All questions answered, result emitted
	PhaseAborted               // Left mid-level, no result
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaiting:
		return "awaiting"
	case PhaseActive:
		return "active"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// State is the running tally of one play-through.
type State struct {
	Score         int
	Streak        int
	QuestionIndex int
	CorrectCount  int
}

// Answer describes one resolved question.
type Answer struct {
	Question *problemgen.Question

	// Choice is the submitted value, or NoAnswer on timeout.
	Choice   int
	Correct  bool
	TimedOut bool

	// TimeLeft is the countdown value when the answer was accepted.
	TimeLeft int
	Points   int

	// Award splits Points into its bonuses. Zero unless Correct.
	Award scoring.Award

	// Streak is the streak after this answer.
	Streak int
}

// Result is emitted once when a level finishes.
type Result struct {
	SessionID      string
	LevelID        string
	Score          int
	Passed         bool
	CorrectCount   int
	TotalQuestions int
}
