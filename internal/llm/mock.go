package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one queued answer for MockProvider.
type MockReply struct {
	Content json.RawMessage
	Err     error
}

// MockProvider replays queued replies in order and remembers every
// request. An empty queue answers ErrProviderUnavailable.
type MockProvider struct {
	mu       sync.Mutex
	replies  []MockReply
	requests []Request
}

func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Name() string  { return ProviderMock }
func (m *MockProvider) Model() string { return "mock" }

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if len(m.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := m.replies[0]
	m.replies = m.replies[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	if err := validate(req.Schema, next.Content); err != nil {
		return nil, err
	}
	return &Response{Content: next.Content, Model: "mock"}, nil
}

// Enqueue appends replies.
func (m *MockProvider) Enqueue(replies ...MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, replies...)
}

// Requests returns a copy of the requests seen so far.
func (m *MockProvider) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}
