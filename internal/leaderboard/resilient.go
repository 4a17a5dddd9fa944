package leaderboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
)

// ResilientConfig tunes the retry and circuit breaker around a Board.
type ResilientConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	// TripAfter is the number of consecutive failed calls that opens
	// the circuit.
	TripAfter int

	// OpenTimeout is how long the circuit stays open.
	OpenTimeout time.Duration

	Logger *slog.Logger
}

// DefaultResilientConfig suits a remote row store.
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxAttempts:  3,
		InitialDelay: 250 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		TripAfter:    3,
		OpenTimeout:  30 * time.Second,
	}
}

// Resilient retries transient failures and stops calling a backend that
// keeps failing.
type Resilient struct {
	board Board

	submitCB    circuitbreaker.CircuitBreaker[struct{}]
	submitRetry retry.Retry[struct{}]
	topCB       circuitbreaker.CircuitBreaker[[]Entry]
	topRetry    retry.Retry[[]Entry]
}

// NewResilient wraps board.
func NewResilient(board Board, cfg ResilientConfig) *Resilient {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retryable := func(err error) bool {
		return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
	}
	cbConfig := func(op string) circuitbreaker.Config {
		return circuitbreaker.Config{
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     cfg.OpenTimeout,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.TripAfter
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("leaderboard circuit breaker state change",
					"op", op,
					"from", from.String(),
					"to", to.String())
			},
		}
	}
	retryConfig := retry.Config{
		MaxAttempts:   cfg.MaxAttempts,
		InitialDelay:  cfg.InitialDelay,
		MaxDelay:      cfg.MaxDelay,
		Multiplier:    2.0,
		BackoffPolicy: retry.BackoffExponential,
		Jitter:        true,
		IsRetryable:   retryable,
	}

	return &Resilient{
		board:       board,
		submitCB:    circuitbreaker.New[struct{}](cbConfig("submit")),
		submitRetry: retry.New[struct{}](retryConfig),
		topCB:       circuitbreaker.New[[]Entry](cbConfig("top")),
		topRetry:    retry.New[[]Entry](retryConfig),
	}
}

func (r *Resilient) SubmitBest(ctx context.Context, e Entry) error {
	_, err := r.submitCB.Execute(ctx, func(ctx context.Context) (struct{}, error) {
		return r.submitRetry.Do(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, r.board.SubmitBest(ctx, e)
		})
	})
	return err
}

func (r *Resilient) Top(ctx context.Context, limit int) ([]Entry, error) {
	return r.topCB.Execute(ctx, func(ctx context.Context) ([]Entry, error) {
		return r.topRetry.Do(ctx, func(ctx context.Context) ([]Entry, error) {
			return r.board.Top(ctx, limit)
		})
	})
}

func (r *Resilient) Close() error {
	return r.board.Close()
}
