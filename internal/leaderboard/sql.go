package leaderboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const table = "leaderboard"

// SQLBoard stores rows through database/sql. It serves the local SQLite
// file and hosted MySQL.
type SQLBoard struct {
	db *sql.DB
	sb *entsql.DialectBuilder
}

// OpenSQL connects with driver "sqlite" or "mysql" and creates the table
// if it is missing.
func OpenSQL(ctx context.Context, driver, dsn string) (*SQLBoard, error) {
	var d string
	switch driver {
	case "sqlite":
		d = dialect.SQLite
	case "mysql":
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse mysql dsn: %w", err)
		}
		cfg.ParseTime = true
		dsn = cfg.FormatDSN()
		d = dialect.MySQL
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open leaderboard: %w", err)
	}
	b := NewSQLBoard(db, d)
	if err := b.migrate(ctx, d); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate leaderboard: %w", err)
	}
	return b, nil
}

// NewSQLBoard wraps an open database using the given ent dialect name.
func NewSQLBoard(db *sql.DB, dialectName string) *SQLBoard {
	return &SQLBoard{db: db, sb: entsql.Dialect(dialectName)}
}

func (b *SQLBoard) migrate(ctx context.Context, d string) error {
	var stmts []string
	switch d {
	case dialect.MySQL:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS leaderboard (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(64) NOT NULL,
				score BIGINT NOT NULL,
				avatar VARCHAR(32) NOT NULL DEFAULT '',
				INDEX leaderboard_name (name),
				INDEX leaderboard_score (score)
			)`,
		}
	default:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS leaderboard (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				score INTEGER NOT NULL,
				avatar TEXT NOT NULL DEFAULT ''
			)`,
			`CREATE INDEX IF NOT EXISTS leaderboard_name ON leaderboard (name)`,
			`CREATE INDEX IF NOT EXISTS leaderboard_score ON leaderboard (score)`,
		}
	}
	for _, s := range stmts {
		if _, err := b.db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (b *SQLBoard) SubmitBest(ctx context.Context, e Entry) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submit: %w", err)
	}
	defer tx.Rollback()

	query, args := b.sb.Select("id", "score").
		From(entsql.Table(table)).
		Where(entsql.EQ("name", e.Name)).
		Limit(1).
		Query()

	var id, score int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id, &score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query, args = b.sb.Insert(table).
			Columns("name", "score", "avatar").
			Values(e.Name, e.Score, e.Avatar).
			Query()
	case err != nil:
		return fmt.Errorf("find %s: %w", e.Name, err)
	case int64(e.Score) > score:
		query, args = b.sb.Update(table).
			Set("score", e.Score).
			Set("avatar", e.Avatar).
			Where(entsql.EQ("id", id)).
			Query()
	default:
		return nil
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write %s: %w", e.Name, err)
	}
	return tx.Commit()
}

func (b *SQLBoard) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query, args := b.sb.Select("name", "score", "avatar").
		From(entsql.Table(table)).
		Where(entsql.GT("score", 0)).
		OrderBy(entsql.Desc("score"), "name").
		Limit(limit).
		Query()

	rows, err := b.db.QueryContext(ctx, query, args...)
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

func (b *SQLBoard) Close() error {
	return b.db.Close()
}
