// Package coach writes the one-line encouragement shown after a level.
package coach

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/llm"
)

// MaxLength caps generated messages in runes.
const MaxLength = 160

var messageSchema = &llm.Schema{
	Name:        "coach-message",
	Description: "One short encouraging sentence for a child who just finished a math level.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": MaxLength,
			},
		},
		"required":             []any{"message"},
		"additionalProperties": false,
	},
}

// Request describes the finished level.
type Request struct {
	Lang   i18n.Lang
	Name   string
	Level  string
	Score  int
	Target int
	Passed bool
	Stars  int
}

// Reply is the text to show. Generated is false for the static title.
type Reply struct {
	Text      string
	Generated bool
}

// Title is the static headline for a result.
func Title(lang i18n.Lang, passed bool, stars int) string {
	s := i18n.For(lang)
	switch {
	case passed && stars == 3:
		return s.Amazing
	case passed:
		return s.Good
	default:
		return s.ResultOops
	}
}

type Coach struct {
	provider llm.Provider
	logger   *slog.Logger
	timeout  time.Duration
}

// New returns a Coach. A nil provider always uses the static title.
func New(provider llm.Provider, logger *slog.Logger) *Coach {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{provider: provider, logger: logger, timeout: 8 * time.Second}
}

// Message never fails: any provider error falls back to Title.
func (c *Coach) Message(ctx context.Context, req Request) Reply {
	fallback := Reply{Text: Title(req.Lang, req.Passed, req.Stars)}
	if c == nil || c.provider == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(req.Lang),
		Prompt:      userPrompt(req),
		Schema:      messageSchema,
		MaxTokens:   120,
		Temperature: 0.8,
		Purpose:     "coach",
	})
	if err != nil {
		c.logger.Warn("coach message failed", "error", err)
		return fallback
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := resp.Decode(&out); err != nil {
		c.logger.Warn("coach message undecodable", "error", err)
		return fallback
	}
	text := strings.TrimSpace(out.Message)
	if text == "" {
		return fallback
	}
	return Reply{Text: text, Generated: true}
}

func systemPrompt(lang i18n.Lang) string {
	language := "Indonesian"
	if lang == i18n.EN {
		language = "English"
	}
	return fmt.Sprintf("You cheer on children aged 4 to 12 playing an arithmetic game. "+
		"Reply in %s with one short, warm sentence of at most %d characters. "+
		"Never mention failure harshly and never use emoji.", language, MaxLength)
}

func userPrompt(req Request) string {
	outcome := "did not pass"
	if req.Passed {
		outcome = fmt.Sprintf("passed with %d of 3 stars", req.Stars)
	}
	name := req.Name
	if name == "" {
		name = "the player"
	}
	return fmt.Sprintf("%s finished %q with %d points (target %d) and %s.",
		name, req.Level, req.Score, req.Target, outcome)
}
