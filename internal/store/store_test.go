package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int { return &v }

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is covered by TestOpenFile.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mathquest.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: "v3.1.0",
			Player: &PlayerSnapshot{
				Name:            "BUDI",
				Coins:           intPtr(120),
				UnlockedAvatars: []string{"robot", "cat"},
				Stars:           map[string]int{"age_7_lvl_1": 3},
				Avatar:          "cat",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if !snap.Timestamp.Equal(now) {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, now)
	}
	p := snap.Data.Player
	if p == nil || p.Name != "BUDI" || p.Coins == nil || *p.Coins != 120 {
		t.Fatalf("player = %+v", p)
	}
	if p.Stars["age_7_lvl_1"] != 3 {
		t.Errorf("stars = %v", p.Stars)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: fmt.Sprintf("v3.%d.0", i)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != "v3.2.0" {
		t.Errorf("data.version = %q, want v3.2.0", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: "v3.1.0"},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.Save(ctx, &Snapshot{Sequence: int64(i + 1), Data: SnapshotData{Version: "v3.1.0"}}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart, LevelID: "age_8_lvl_1", Avatar: "robot"}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	for i := 0; i < 3; i++ {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:     "s1",
			LevelID:       "age_8_lvl_1",
			QuestionIndex: i,
			QuestionText:  "2 + 3 = ?",
			CorrectAnswer: 5,
			Chosen:        5,
			Correct:       i != 1,
			TimeLeft:      20,
			Points:        310,
			Streak:        1,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{SessionID: "s2", QuestionText: "1 + 1 = ?", Chosen: -999, TimedOut: true}); err != nil {
		t.Fatalf("append other session: %v", err)
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionFinish, LevelID: "age_8_lvl_1", Score: 620, Passed: true, CorrectCount: 2, TotalQuestions: 10}); err != nil {
		t.Fatalf("append finish: %v", err)
	}

	answers, err := repo.QueryAnswerEvents(ctx, QueryOpts{SessionID: "s1"})
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if len(answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(answers))
	}
	if answers[0].Sequence != 2 || answers[2].Sequence != 4 {
		t.Errorf("answer sequences = %d..%d, want 2..4", answers[0].Sequence, answers[2].Sequence)
	}
	if answers[1].Correct {
		t.Error("answer 1 should be stored as wrong")
	}

	sessions, err := repo.QuerySessionEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	got := sessions[0]
	if got.Action != ActionFinish || !got.Passed || got.Score != 620 || got.Sequence != 6 {
		t.Errorf("latest session event = %+v", got)
	}

	after, err := repo.QueryAnswerEvents(ctx, QueryOpts{After: 4})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || !after[0].TimedOut || after[0].Chosen != -999 {
		t.Errorf("answers after 4 = %+v", after)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SnapshotRepo().Save(ctx, &Snapshot{Sequence: 1, Data: SnapshotData{Version: "v3.1.0"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "anthropic", Model: "m", Purpose: "coach", Success: true}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("expected no snapshot after reset")
	}
	seq, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if seq != 1 {
		t.Errorf("sequence after reset = %d, want 1", seq)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"snapshots", "session_events", "answer_events", "llm_request_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "gemini", Model: "g", Purpose: "coach", InputTokens: 40, Success: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "openai", Model: "o", Purpose: "coach", ErrorMessage: "rate limited"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := s.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Provider != "openai" || events[0].Success || events[0].ErrorMessage != "rate limited" {
		t.Errorf("newest event = %+v", events[0])
	}
	if events[1].InputTokens != 40 || !events[1].Success {
		t.Errorf("oldest event = %+v", events[1])
	}

	limited, err := s.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limit: %v", err)
	}
	if len(limited) != 1 || limited[0].Sequence != 2 {
		t.Errorf("limited = %+v", limited)
	}
}
