// Package llm wraps hosted language model APIs behind one small
// interface. Callers send a single prompt and get back JSON that has
// already been checked against the requested schema.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured reply per request.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the backend name, e.g. "anthropic".
	Name() string

	// Model is the model identifier requests are sent to.
	Model() string
}

// Request is a single-turn prompt.
type Request struct {
	System string
	Prompt string

	// Schema, when set, asks the backend for JSON output and the reply is
	// validated against it before Generate returns.
	Schema *Schema

	MaxTokens   int
	Temperature float64

	// Purpose labels the request in the event log, e.g. "coach".
	Purpose string
}

// Schema is a named JSON Schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	Content   json.RawMessage
	Model     string
	Usage     Usage
	Truncated bool
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Decode unmarshals the response content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: err}
	}
	return nil
}
