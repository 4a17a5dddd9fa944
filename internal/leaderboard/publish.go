package leaderboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/abhisek/mathquest/internal/player"
)

// Publisher pushes a player's total score after a passed level. Failures
// are logged and swallowed so they never reach the game.
type Publisher struct {
	board   Board
	logger  *slog.Logger
	timeout time.Duration
}

// NewPublisher returns a Publisher. A nil board disables publishing.
func NewPublisher(board Board, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{board: board, logger: logger, timeout: 10 * time.Second}
}

// ShouldPublish reports whether a finished level qualifies.
func ShouldPublish(name string, passed bool, totalScore int) bool {
	return player.NormalizeName(name) != "" && passed && totalScore > 0
}

// Publish submits the player's best score when the level passed. It
// reports whether a write was attempted and succeeded.
func (p *Publisher) Publish(ctx context.Context, stats *player.Stats, passed bool) bool {
	if p == nil || p.board == nil || stats == nil {
		return false
	}
	if !ShouldPublish(stats.Name, passed, stats.TotalScore) {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	e := Entry{
		Name:   player.NormalizeName(stats.Name),
		Score:  stats.TotalScore,
		Avatar: string(stats.Avatar),
	}
	if err := p.board.SubmitBest(ctx, e); err != nil {
		p.logger.Error("leaderboard submit failed", "name", e.Name, "score", e.Score, "error", err)
		return false
	}
	p.logger.Debug("leaderboard submitted", "name", e.Name, "score", e.Score)
	return true
}

// Top reads the leaderboard, logging and returning nil on failure.
func (p *Publisher) Top(ctx context.Context, limit int) []Entry {
	if p == nil || p.board == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	rows, err := p.board.Top(ctx, limit)
	if err != nil {
		p.logger.Error("leaderboard read failed", "error", err)
		return nil
	}
	return rows
}

// Enabled reports whether a backend is configured.
func (p *Publisher) Enabled() bool {
	return p != nil && p.board != nil
}
