package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
)

// Drivers accepted by Open.
const (
	DriverNone     = "none"
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Open builds the configured backend wrapped in Resilient. DriverNone
// and an empty driver return a nil Board.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (Board, error) {
	var (
		b   Board
		err error
	)
	switch driver {
	case "", DriverNone:
		return nil, nil
	case DriverMemory:
		return NewMemoryBoard(), nil
	case DriverSQLite, DriverMySQL:
		b, err = OpenSQL(ctx, driver, dsn)
	case DriverPostgres:
		b, err = OpenPostgres(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown leaderboard driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	cfg := DefaultResilientConfig()
	cfg.Logger = logger
	return NewResilient(b, cfg), nil
}
