// Package store persists player snapshots and gameplay events in a local
// SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/mathquest/ent/migrate"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store owns the database handle and hands out repositories.
type Store struct {
	db  *sql.DB
	sb  *entsql.DialectBuilder
	seq *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies pragmas and
// migrates the tables declared in ent/schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate.Create(context.Background(), drv); err != nil {
		db.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	// SQLite serializes writers; one connection keeps pragmas and
	// in-memory databases consistent.
	db.SetMaxOpenConns(1)
	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, sb: entsql.Dialect(dialect.SQLite), seq: seq}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{db: s.db, sb: s.sb}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db, sb: s.sb, seq: s.seq}
}

// Reset deletes all snapshots and events and restarts the sequence.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, t := range migrate.Tables {
		query, args := s.sb.Delete(t.Name).Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", t.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHQUEST_DB environment variable
// 2. $XDG_DATA_HOME/mathquest/mathquest.db
// 3. ~/.local/share/mathquest/mathquest.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHQUEST_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "mathquest.db")
	return p, EnsureDir(p)
}

// DataDir returns the per-user data directory for mathquest.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "mathquest"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
