package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathquest/ent/migrate"
)

type snapshotRepo struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}
	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := r.sb.Insert(migrate.SnapshotsTable.Name).
		Columns("sequence", "timestamp", "data").
		Values(snap.Sequence, ts.UnixMilli(), string(data)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context) (*Snapshot, error) {
	query, args := r.sb.Select("id", "sequence", "timestamp", "data").
		From(entsql.Table(migrate.SnapshotsTable.Name)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Limit(1).
		Query()

	var (
		s    Snapshot
		ms   int64
		data string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Sequence, &ms, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &s.Data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot data: %w", err)
	}
	s.Timestamp = time.UnixMilli(ms).UTC()
	return &s, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, keep int) error {
	// The row at offset keep is the newest one to drop.
	query, args := r.sb.Select("id", "timestamp").
		From(entsql.Table(migrate.SnapshotsTable.Name)).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	var id, ts int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	query, args = r.sb.Delete(migrate.SnapshotsTable.Name).
		Where(entsql.Or(
			entsql.LT("timestamp", ts),
			entsql.And(entsql.EQ("timestamp", ts), entsql.LTE("id", id)),
		)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Count(ctx context.Context) (int, error) {
	query, args := r.sb.Select(entsql.Count("*")).
		From(entsql.Table(migrate.SnapshotsTable.Name)).
		Query()
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}
