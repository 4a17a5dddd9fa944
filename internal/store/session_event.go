package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathquest/ent/migrate"
)

// eventRepo implements EventRepo on top of the global sequence counter.
type eventRepo struct {
	db  *sql.DB
	sb  *entsql.DialectBuilder
	seq *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.sb.Insert(migrate.SessionEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "action", "level_id", "avatar",
			"score", "passed", "correct_count", "total_questions").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.LevelID, data.Avatar,
			data.Score, data.Passed, data.CorrectCount, data.TotalQuestions).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.sb.Insert(migrate.AnswerEventsTable.Name).
		Columns("sequence", "timestamp", "session_id", "level_id", "question_index", "question_text",
			"correct_answer", "chosen", "correct", "timed_out", "time_left", "points", "streak").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.LevelID, data.QuestionIndex, data.QuestionText,
			data.CorrectAnswer, data.Chosen, data.Correct, data.TimedOut, data.TimeLeft, data.Points, data.Streak).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := r.sb.Insert(migrate.LLMRequestEventsTable.Name).
		Columns("sequence", "timestamp", "provider", "model", "purpose",
			"input_tokens", "output_tokens", "latency_ms", "success", "error_message").
		Values(seqNum, time.Now().UnixMilli(), data.Provider, data.Model, data.Purpose,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	sel := r.sb.Select("id", "sequence", "timestamp", "session_id", "action", "level_id", "avatar",
		"score", "passed", "correct_count", "total_questions").
		From(entsql.Table(migrate.SessionEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEventRecord
	for rows.Next() {
		var (
			e  SessionEventRecord
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ms, &e.SessionID, &e.Action, &e.LevelID, &e.Avatar,
			&e.Score, &e.Passed, &e.CorrectCount, &e.TotalQuestions); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *eventRepo) QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	sel := r.sb.Select("id", "sequence", "timestamp", "session_id", "level_id", "question_index",
		"question_text", "correct_answer", "chosen", "correct", "timed_out", "time_left", "points", "streak").
		From(entsql.Table(migrate.AnswerEventsTable.Name)).
		OrderBy("sequence")
	applyOpts(sel, opts)

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var (
			e  AnswerEventRecord
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ms, &e.SessionID, &e.LevelID, &e.QuestionIndex,
			&e.QuestionText, &e.CorrectAnswer, &e.Chosen, &e.Correct, &e.TimedOut, &e.TimeLeft,
			&e.Points, &e.Streak); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

func applyOpts(sel *entsql.Selector, opts QueryOpts) {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
}
