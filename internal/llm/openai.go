package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// openaiProvider also serves OpenAI-compatible endpoints through BaseURL.
type openaiProvider struct {
	client *openai.Client
	model  string
}

func newOpenAI(opts Options) (*openaiProvider, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	return &openaiProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  opts.Model,
	}, nil
}

func (p *openaiProvider) Name() string  { return ProviderOpenAI }
func (p *openaiProvider) Model() string { return p.model }

func (p *openaiProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var msgs []openai.ChatCompletionMessage
	if req.System != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	chatReq := openai.ChatCompletionRequest{
		Model:               p.model,
		Messages:            msgs,
		MaxCompletionTokens: req.MaxTokens,
		Temperature:         float32(req.Temperature),
	}
	if req.Schema != nil {
		def, err := json.Marshal(req.Schema.Definition)
		if err != nil {
			return nil, fmt.Errorf("openai: marshal schema: %w", err)
		}
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: json.RawMessage(def),
				Strict: true,
			},
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, classify(apiErr.HTTPStatusCode, err)
		}
		return nil, &ErrProviderUnavailable{Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{Err: fmt.Errorf("openai: no choices in reply")}
	}

	choice := resp.Choices[0]
	content := json.RawMessage(choice.Message.Content)
	if err := validate(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{
		Content: content,
		Model:   resp.Model,
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}
