package age

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "" }

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestAgeScreen_DefaultsToSavedAge(t *testing.T) {
	env := &screen.Env{Stats: player.New("ANI", i18n.EN)}
	env.Stats.SelectedAge = 9

	a := New(env, nil)
	assert.Equal(t, 9, a.Selected())
}

func TestAgeScreen_GridNavigation(t *testing.T) {
	env := &screen.Env{Stats: player.New("ANI", i18n.EN)}
	a := New(env, nil)
	require.Equal(t, 4, a.Selected())

	a.Update(key(tea.KeyRight))
	assert.Equal(t, 5, a.Selected())
	a.Update(key(tea.KeyDown))
	assert.Equal(t, 8, a.Selected())
	a.Update(key(tea.KeyDown))
	assert.Equal(t, 11, a.Selected())
	a.Update(key(tea.KeyDown))
	assert.Equal(t, 11, a.Selected(), "bottom row stays put")
	a.Update(key(tea.KeyLeft))
	a.Update(key(tea.KeyLeft))
	assert.Equal(t, 10, a.Selected(), "left edge stays put")
	a.Update(key(tea.KeyUp))
	assert.Equal(t, 7, a.Selected())
}

func TestAgeScreen_PickReplaces(t *testing.T) {
	env := &screen.Env{Stats: player.New("ANI", i18n.EN)}
	called := 0
	a := New(env, func() screen.Screen { called++; return &stubScreen{} })

	a.Update(key(tea.KeyDown))
	_, cmd := a.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &stubScreen{}, msg.Screen)
	assert.Equal(t, 7, env.Stats.SelectedAge)
	assert.Equal(t, 1, called)
}

func TestAgeScreen_DigitPicksAndPops(t *testing.T) {
	env := &screen.Env{Stats: player.New("ANI", i18n.EN)}
	a := New(env, nil)

	_, cmd := a.Update(tea.KeyPressMsg{Code: '6', Text: "6"})
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, 6, env.Stats.SelectedAge)
}

func TestAgeScreen_View(t *testing.T) {
	env := &screen.Env{Stats: player.New("ANI", i18n.ID)}
	view := New(env, nil).View(80, 24)
	assert.True(t, strings.Contains(view, "Usiamu?"))
	assert.True(t, strings.Contains(view, "12 Th"))
}
