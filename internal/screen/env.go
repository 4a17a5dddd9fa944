package screen

import (
	"context"
	"log/slog"

	"github.com/abhisek/mathquest/internal/coach"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
)

// Env is the player state and the services every screen shares. All
// fields except Stats may be nil; screens degrade to in-memory play.
type Env struct {
	Stats   *player.Stats
	Players *player.Repo
	Events  store.EventRepo
	Board   *leaderboard.Publisher
	Coach   *coach.Coach
	Logger  *slog.Logger

	Timing     session.Timing
	BoardLimit int
	Version    string

	// NewSource returns the question source for a level. Nil uses
	// problemgen.NewDefault.
	NewSource func() session.QuestionSource
}

func (e *Env) Lang() i18n.Lang {
	return e.Stats.Language
}

func (e *Env) Text() *i18n.Strings {
	return i18n.For(e.Stats.Language)
}

func (e *Env) Log() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// Save persists the stats. Failures are logged, never surfaced: a lost
// save must not interrupt play.
func (e *Env) Save() {
	if e.Players == nil {
		return
	}
	if err := e.Players.Save(context.Background(), e.Stats); err != nil {
		e.Log().Error("save player", "error", err)
	}
}
