// Package leaderboard stores each player's best cumulative score in a
// shared row store.
package leaderboard

import (
	"context"
	"errors"
)

// DefaultLimit is the number of rows shown on the leaderboard.
const DefaultLimit = 20

// ErrUnavailable is returned when no backend is configured.
var ErrUnavailable = errors.New("leaderboard unavailable")

// Entry is one leaderboard row.
type Entry struct {
	Name   string
	Score  int
	Avatar string
}

// Board is a leaderboard backend.
type Board interface {
	// SubmitBest inserts e, or raises the stored score and avatar when
	// e.Score is greater than the stored score for e.Name.
	SubmitBest(ctx context.Context, e Entry) error

	// Top returns up to limit rows with a positive score, highest first.
	Top(ctx context.Context, limit int) ([]Entry, error)

	Close() error
}
