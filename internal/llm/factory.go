package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/mathquest/internal/store"
)

// Provider names accepted by New.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

var defaultModels = map[string]string{
	ProviderAnthropic: "claude-haiku-4-5-20251001",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderGemini:    "gemini-2.0-flash",
}

// Options selects and configures a backend.
type Options struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Retry    RetryOptions
}

// Keys are the API keys found in the environment.
type Keys struct {
	Anthropic string
	OpenAI    string
	Gemini    string
}

// Resolve picks a backend. An explicit provider needs its key; with no
// provider the first key found wins, probing Gemini, OpenAI, then
// Anthropic. It returns false when nothing usable is configured.
func Resolve(provider, model string, keys Keys) (Options, bool) {
	opts := Options{Provider: provider, Model: model, Retry: DefaultRetryOptions()}

	keyFor := map[string]string{
		ProviderAnthropic: keys.Anthropic,
		ProviderOpenAI:    keys.OpenAI,
		ProviderGemini:    keys.Gemini,
	}

	switch provider {
	case ProviderMock:
		return opts, true
	case "":
		for _, p := range []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic} {
			if keyFor[p] != "" {
				opts.Provider = p
				break
			}
		}
		if opts.Provider == "" {
			return Options{}, false
		}
	}

	key, known := keyFor[opts.Provider]
	if !known || key == "" {
		return Options{}, false
	}
	opts.APIKey = key
	if opts.Model == "" {
		opts.Model = defaultModels[opts.Provider]
	}
	return opts, true
}

// New builds the backend named in opts and wraps it so every call is
// retried and recorded: caller, retry, recording, backend.
func New(ctx context.Context, opts Options, events store.EventRepo, logger *slog.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch opts.Provider {
	case ProviderAnthropic:
		base, err = newAnthropic(opts)
	case ProviderOpenAI:
		base, err = newOpenAI(opts)
	case ProviderGemini:
		base, err = newGemini(ctx, opts)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", opts.Provider)
	}
	if err != nil {
		return nil, err
	}

	return WithRetry(WithRecording(base, events, logger), opts.Retry), nil
}
