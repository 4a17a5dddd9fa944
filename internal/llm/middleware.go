package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/retry"

	"github.com/abhisek/mathquest/internal/store"
)

type recording struct {
	inner  Provider
	events store.EventRepo
	logger *slog.Logger
}

// WithRecording writes one llm_request event per call and logs the
// outcome. Failing to record never fails the call. events may be nil.
func WithRecording(p Provider, events store.EventRepo, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &recording{inner: p, events: events, logger: logger}
}

func (r *recording) Name() string  { return r.inner.Name() }
func (r *recording) Model() string { return r.inner.Model() }

func (r *recording) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := r.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:  r.inner.Name(),
		Model:     r.inner.Model(),
		Purpose:   req.Purpose,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		r.logger.Warn("llm request failed",
			"provider", data.Provider, "purpose", data.Purpose, "latency", latency, "error", err)
	} else {
		r.logger.Debug("llm request",
			"provider", data.Provider, "model", data.Model, "purpose", data.Purpose,
			"latency", latency, "input_tokens", data.InputTokens, "output_tokens", data.OutputTokens)
	}

	if r.events != nil {
		if logErr := r.events.AppendLLMRequest(ctx, data); logErr != nil {
			r.logger.Warn("record llm request", "error", logErr)
		}
	}
	return resp, err
}

// RetryOptions tunes the backoff around Generate.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func DefaultRetryOptions() RetryOptions {
	return RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     4 * time.Second,
	}
}

type retrying struct {
	inner Provider
	retry retry.Retry[*Response]
}

// WithRetry retries transient failures with exponential backoff. An
// invalid reply is retried once; context errors never are.
func WithRetry(p Provider, opts RetryOptions) Provider {
	if opts.MaxAttempts <= 0 {
		opts = DefaultRetryOptions()
	}
	return &retrying{
		inner: p,
		retry: retry.New[*Response](retry.Config{
			MaxAttempts:   opts.MaxAttempts,
			InitialDelay:  opts.InitialDelay,
			MaxDelay:      opts.MaxDelay,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
			IsRetryable:   Retryable,
		}),
	}
}

func (r *retrying) Name() string  { return r.inner.Name() }
func (r *retrying) Model() string { return r.inner.Model() }

func (r *retrying) Generate(ctx context.Context, req Request) (*Response, error) {
	invalidSeen := false
	resp, err := r.retry.Do(ctx, func(ctx context.Context) (*Response, error) {
		resp, err := r.inner.Generate(ctx, req)
		var inv *ErrInvalidResponse
		if errors.As(err, &inv) {
			if invalidSeen {
				return nil, &finalError{err: err}
			}
			invalidSeen = true
		}
		return resp, err
	})
	if err != nil {
		var final *finalError
		if errors.As(err, &final) {
			return nil, final.err
		}
		return nil, err
	}
	return resp, nil
}
