package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
	model  string
}

func newGemini(ctx context.Context, opts Options) (*geminiProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  opts.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &geminiProvider{client: client, model: opts.Model}, nil
}

func (p *geminiProvider) Name() string  { return ProviderGemini }
func (p *geminiProvider) Model() string { return p.model }

func (p *geminiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}
	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = geminiSchema(req.Schema.Definition)
	}

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: req.Prompt}},
	}}
	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) {
			return nil, classify(apiErr.Code, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}

	content := json.RawMessage(result.Text())
	if err := validate(req.Schema, content); err != nil {
		return nil, err
	}

	resp := &Response{Content: content, Model: p.model}
	if len(result.Candidates) > 0 {
		resp.Truncated = result.Candidates[0].FinishReason == "MAX_TOKENS"
	}
	if u := result.UsageMetadata; u != nil {
		resp.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
		}
	}
	return resp, nil
}

// geminiSchema converts the subset of JSON Schema the coach uses into the
// SDK's schema type.
func geminiSchema(def map[string]any) *genai.Schema {
	s := &genai.Schema{}
	switch def["type"] {
	case "object":
		s.Type = genai.TypeObject
	case "array":
		s.Type = genai.TypeArray
	case "integer":
		s.Type = genai.TypeInteger
	case "number":
		s.Type = genai.TypeNumber
	case "boolean":
		s.Type = genai.TypeBoolean
	default:
		s.Type = genai.TypeString
	}
	if d, ok := def["description"].(string); ok {
		s.Description = d
	}
	if props, ok := def["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*genai.Schema, len(props))
		for name, v := range props {
			if sub, ok := v.(map[string]any); ok {
				s.Properties[name] = geminiSchema(sub)
			}
		}
	}
	for _, r := range asStrings(def["required"]) {
		s.Required = append(s.Required, r)
	}
	s.Enum = asStrings(def["enum"])
	if items, ok := def["items"].(map[string]any); ok {
		s.Items = geminiSchema(items)
	}
	return s
}

func asStrings(v any) []string {
	var out []string
	switch vv := v.(type) {
	case []string:
		out = append(out, vv...)
	case []any:
		for _, x := range vv {
			if s, ok := x.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}
