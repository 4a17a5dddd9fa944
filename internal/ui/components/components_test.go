package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestChoiceGrid_DigitPicks(t *testing.T) {
	g := NewChoiceGrid([]int{3, 5, 7, 9})
	g, picked := g.Update(key("3"))
	assert.Equal(t, 2, picked)
	assert.Equal(t, 2, g.Selected)
}

func TestChoiceGrid_ArrowsAndEnter(t *testing.T) {
	g := NewChoiceGrid([]int{3, 5, 7, 9})
	var picked int

	g, picked = g.Update(key("right"))
	assert.Equal(t, -1, picked)
	g, _ = g.Update(key("down"))
	assert.Equal(t, 3, g.Selected)
	g, _ = g.Update(key("down"))
	assert.Equal(t, 3, g.Selected, "bottom row stays put")
	g, _ = g.Update(key("left"))
	assert.Equal(t, 2, g.Selected)
	g, _ = g.Update(key("up"))
	assert.Equal(t, 0, g.Selected)

	_, picked = g.Update(key("enter"))
	assert.Equal(t, 0, picked)
}

func TestChoiceGrid_LockedAndRevealed(t *testing.T) {
	g := NewChoiceGrid([]int{3, 5, 7, 9})
	g.Locked = true
	_, picked := g.Update(key("1"))
	assert.Equal(t, -1, picked)

	g.Locked = false
	g.Reveal(5, 0)
	_, picked = g.Update(key("2"))
	assert.Equal(t, -1, picked)
	assert.NotEmpty(t, g.View(10))
}

func TestMenu_SkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "locked", Disabled: true},
		{Label: "play", Action: func() tea.Cmd { ran = "play"; return nil }},
		{Label: "locked", Disabled: true},
		{Label: "shop", Action: func() tea.Cmd { ran = "shop"; return nil }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(key("down"))
	assert.Equal(t, 3, m.Selected)
	m, _ = m.Update(key("down"))
	assert.Equal(t, 3, m.Selected)

	m.Update(key("enter"))
	assert.Equal(t, "shop", ran)

	m, _ = m.Update(key("up"))
	assert.Equal(t, 1, m.Selected)
}

func TestCountdownBar(t *testing.T) {
	full := NewCountdownBar(30, 30, 40)
	assert.InDelta(t, 1.0, full.Percent, 1e-9)

	low := NewCountdownBar(3, 30, 40)
	assert.NotEqual(t, full.Fill, low.Fill)
	assert.Contains(t, low.View(), "3s")

	assert.Equal(t, 0.0, NewCountdownBar(5, 0, 40).Percent)
}

func TestContentWidth(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}
