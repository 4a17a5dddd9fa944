package coach

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/llm"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestTitle(t *testing.T) {
	tests := []struct {
		lang   i18n.Lang
		passed bool
		stars  int
		want   string
	}{
		{i18n.EN, true, 3, "Amazing!"},
		{i18n.EN, true, 2, "Great!"},
		{i18n.EN, true, 1, "Great!"},
		{i18n.EN, false, 0, "Oops!"},
		{i18n.ID, true, 3, "Luar Biasa!"},
		{i18n.ID, true, 1, "Bagus!"},
		{i18n.ID, false, 0, "Ups!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Title(tt.lang, tt.passed, tt.stars))
	}
}

func TestMessage_NoProvider(t *testing.T) {
	c := New(nil, quiet())
	got := c.Message(context.Background(), Request{Lang: i18n.EN, Passed: true, Stars: 3})
	assert.Equal(t, Reply{Text: "Amazing!"}, got)

	var nilCoach *Coach
	assert.Equal(t, "Oops!", nilCoach.Message(context.Background(), Request{Lang: i18n.EN}).Text)
}

func TestMessage_Generated(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockReply{Content: json.RawMessage(`{"message":"  You did it, Budi!  "}`)})
	c := New(mock, quiet())

	got := c.Message(context.Background(), Request{
		Lang: i18n.EN, Name: "BUDI", Level: "Addition Beginner",
		Score: 900, Target: 1000, Passed: true, Stars: 2,
	})
	assert.Equal(t, Reply{Text: "You did it, Budi!", Generated: true}, got)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "coach", reqs[0].Purpose)
	assert.Contains(t, reqs[0].System, "English")
	assert.Contains(t, reqs[0].Prompt, "BUDI")
	assert.Contains(t, reqs[0].Prompt, "2 of 3 stars")
	require.NotNil(t, reqs[0].Schema)
	assert.Equal(t, "coach-message", reqs[0].Schema.Name)
}

func TestMessage_Fallbacks(t *testing.T) {
	tests := []struct {
		name  string
		reply llm.MockReply
	}{
		{"provider error", llm.MockReply{Err: errors.New("down")}},
		{"schema violation", llm.MockReply{Content: json.RawMessage(`{"text":"hi"}`)}},
		{"blank message", llm.MockReply{Content: json.RawMessage(`{"message":"   "}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(llm.NewMockProvider(tt.reply), quiet())
			got := c.Message(context.Background(), Request{Lang: i18n.ID, Passed: false})
			assert.Equal(t, Reply{Text: "Ups!"}, got)
		})
	}
}

func TestPrompts(t *testing.T) {
	assert.Contains(t, systemPrompt(i18n.ID), "Indonesian")
	assert.Contains(t, userPrompt(Request{Score: 100, Target: 1000}), "did not pass")
	assert.Contains(t, userPrompt(Request{}), "the player")
}
