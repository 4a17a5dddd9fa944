package ranks

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/leaderboard"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
)

func envWithBoard(t *testing.T, entries ...leaderboard.Entry) *screen.Env {
	t.Helper()
	board := leaderboard.NewMemoryBoard()
	for _, e := range entries {
		require.NoError(t, board.SubmitBest(context.Background(), e))
	}
	return &screen.Env{
		Stats: player.New("sari", i18n.EN),
		Board: leaderboard.NewPublisher(board, nil),
	}
}

func TestRanksScreen_Disabled(t *testing.T) {
	s := New(&screen.Env{Stats: player.New("SARI", i18n.EN)})
	assert.Nil(t, s.Init())
	assert.Contains(t, s.View(100, 30), "Leaderboard is off")
}

func TestRanksScreen_Empty(t *testing.T) {
	s := New(envWithBoard(t))
	cmd := s.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, s.View(100, 30), "Loading...")

	s.Update(cmd())
	assert.Contains(t, s.View(100, 30), "No champions yet.")
}

func TestRanksScreen_Rows(t *testing.T) {
	env := envWithBoard(t,
		leaderboard.Entry{Name: "BUDI", Score: 900, Avatar: "robot"},
		leaderboard.Entry{Name: "SARI", Score: 1200, Avatar: "cat"},
	)
	s := New(env)
	s.Update(s.Init()())

	require.Len(t, s.entries, 2)
	assert.Equal(t, "SARI", s.entries[0].Name)

	view := s.View(100, 30)
	assert.Contains(t, view, "BUDI")
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "🐱")
}

func TestRanksScreen_Refresh(t *testing.T) {
	s := New(envWithBoard(t))
	s.Update(s.Init()())

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	assert.False(t, s.loaded)

	// A second refresh while loading is ignored.
	_, cmd = s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Nil(t, cmd)
}
