package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgBoard stores rows in a hosted PostgreSQL database.
type PgBoard struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and creates the table if it is missing.
func OpenPostgres(ctx context.Context, dsn string) (*PgBoard, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	b := NewPgBoard(pool)
	if err := b.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate leaderboard: %w", err)
	}
	return b, nil
}

// NewPgBoard wraps an existing pool.
func NewPgBoard(pool *pgxpool.Pool) *PgBoard {
	return &PgBoard{pool: pool}
}

func (b *PgBoard) migrate(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS leaderboard (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			score BIGINT NOT NULL,
			avatar TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS leaderboard_name ON leaderboard (name);
		CREATE INDEX IF NOT EXISTS leaderboard_score ON leaderboard (score DESC);
	`)
	return err
}

func (b *PgBoard) SubmitBest(ctx context.Context, e Entry) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin submit: %w", err)
	}
	defer tx.Rollback(ctx)

	var (
		id    int64
		score int64
	)
	err = tx.QueryRow(ctx,
		`SELECT id, score FROM leaderboard WHERE name = $1 LIMIT 1 FOR UPDATE`, e.Name,
	).Scan(&id, &score)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err = tx.Exec(ctx,
			`INSERT INTO leaderboard (name, score, avatar) VALUES ($1, $2, $3)`,
			e.Name, e.Score, e.Avatar)
	case err != nil:
		return fmt.Errorf("find %s: %w", e.Name, err)
	case int64(e.Score) > score:
		_, err = tx.Exec(ctx,
			`UPDATE leaderboard SET score = $1, avatar = $2 WHERE id = $3`,
			e.Score, e.Avatar, id)
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", e.Name, err)
	}
	return tx.Commit(ctx)
}

func (b *PgBoard) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := b.pool.Query(ctx, `
		SELECT name, score, avatar FROM leaderboard
		WHERE score > 0
		ORDER BY score DESC, name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Avatar); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (b *PgBoard) Close() error {
	b.pool.Close()
	return nil
}
