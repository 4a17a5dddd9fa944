package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathquest/ent/migrate"
)

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// QueryLLMEvents returns recorded LLM calls, newest first.
func (s *Store) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	sel := s.sb.Select("id", "sequence", "timestamp", "provider", "model", "purpose",
		"input_tokens", "output_tokens", "latency_ms", "success", "error_message").
		From(entsql.Table(migrate.LLMRequestEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEventRecord
	for rows.Next() {
		var (
			e  LLMRequestEventRecord
			ms int64
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ms, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		e.Timestamp = time.UnixMilli(ms).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}
