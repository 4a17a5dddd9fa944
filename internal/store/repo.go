package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	After     int64  // sequence > After
	SessionID string // exact match when set
}

// SnapshotData is the serialized player state.
type SnapshotData struct {
	// Version is a semver tag of the payload layout, e.g. "v3.1.0".
	Version string          `json:"version"`
	Player  *PlayerSnapshot `json:"player,omitempty"`
}

// PlayerSnapshot mirrors player statistics. Pointer and nil-able fields
// distinguish "missing" from zero in payloads written by older versions.
type PlayerSnapshot struct {
	Name                   string         `json:"name"`
	SelectedAge            int            `json:"selected_age,omitempty"`
	UnlockedLevels         map[string]int `json:"unlocked_levels,omitempty"`
	TotalScore             int            `json:"total_score"`
	Coins                  *int           `json:"coins,omitempty"`
	UnlockedAvatars        []string       `json:"unlocked_avatars,omitempty"`
	Stars                  map[string]int `json:"stars,omitempty"`
	GamesPlayed            int            `json:"games_played"`
	GamesWon               int            `json:"games_won"`
	TotalQuestionsAnswered int            `json:"total_questions_answered"`
	TotalQuestionsCorrect  int            `json:"total_questions_correct"`
	Avatar                 string         `json:"avatar"`
	Language               string         `json:"language,omitempty"`
}

// Snapshot represents a point-in-time capture of player state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages player state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int, error)
}

// Session event actions.
const (
	ActionStart  = "start"
	ActionFinish = "finish"
	ActionAbort  = "abort"
)

// SessionEventData records a level start, finish or abort.
type SessionEventData struct {
	SessionID      string
	Action         string
	LevelID        string
	Avatar         string
	Score          int
	Passed         bool
	CorrectCount   int
	TotalQuestions int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// AnswerEventData records one resolved question.
type AnswerEventData struct {
	SessionID     string
	LevelID       string
	QuestionIndex int
	QuestionText  string
	CorrectAnswer int
	Chosen        int
	Correct       bool
	TimedOut      bool
	TimeLeft      int
	Points        int
	Streak        int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to gameplay events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error)

	// QueryAnswerEvents returns answer events in sequence order.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)
}
