// Package home is the main menu.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/about"
	"github.com/abhisek/mathquest/internal/screens/age"
	"github.com/abhisek/mathquest/internal/screens/history"
	"github.com/abhisek/mathquest/internal/screens/levels"
	"github.com/abhisek/mathquest/internal/screens/ranks"
	"github.com/abhisek/mathquest/internal/screens/shop"
	"github.com/abhisek/mathquest/internal/screens/stats"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	env  *screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(env *screen.Env) *HomeScreen {
	h := &HomeScreen{env: env}
	h.refresh()
	return h
}

// refresh rebuilds the labels so a language switch shows immediately.
func (h *HomeScreen) refresh() {
	t := h.env.Text()
	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{Label: t.Play, Action: push(func() screen.Screen { return levels.New(h.env) })},
		{Label: t.Shop, Action: push(func() screen.Screen { return shop.New(h.env) })},
		{Label: t.Stats, Action: push(func() screen.Screen { return stats.New(h.env) })},
		{Label: t.History, Action: push(func() screen.Screen { return history.New(h.env) })},
		{Label: t.Ranks, Action: push(func() screen.Screen { return ranks.New(h.env) })},
		{Label: fmt.Sprintf("%s %d", t.ChangeAge, h.env.Stats.SelectedAge), Action: push(func() screen.Screen { return age.New(h.env, nil) })},
		{Label: fmt.Sprintf("%s: %s", t.Language, strings.ToUpper(string(h.env.Lang()))), Action: h.toggleLanguage},
		{Label: t.About, Action: push(func() screen.Screen { return about.New(h.env) })},
		{Label: t.Exit, Action: func() tea.Cmd { return tea.Quit }},
	}

	selected := h.menu.Selected
	h.menu = components.Menu{Items: items, Selected: selected}
}

func (h *HomeScreen) toggleLanguage() tea.Cmd {
	h.env.Stats.Language = h.env.Stats.Language.Toggle()
	h.env.Save()
	h.env.Log().Info("language changed", "lang", h.env.Stats.Language)
	h.refresh()
	return nil
}

func (h *HomeScreen) labels() []string {
	out := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		out[i] = item.Label
	}
	return out
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.refresh()
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()

	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 36 || width < 100
	tiny := termHeight < 28

	cw := components.ContentWidth(width)
	st := h.env.Stats

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(st), cw))
	}
	sections = append(sections, renderGreeting(st, cw))
	sections = append(sections, renderStatsBar(st, st.RankLabel(h.env.Lang()), totalStars(st.Stars), cw, compact))
	if tiny {
		sections = append(sections, renderArcadeMenuCompact(h.labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.labels(), h.menu.Selected, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return h.env.Text().AppTitle
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func totalStars(stars map[string]int) int {
	n := 0
	for _, v := range stars {
		n += v
	}
	return n
}
