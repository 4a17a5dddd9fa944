package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/age"
	"github.com/abhisek/mathquest/internal/screens/home"
	"github.com/abhisek/mathquest/internal/screens/levels"
	"github.com/abhisek/mathquest/internal/screens/welcome"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Env *screen.Env

	// Play, when set, skips the menus and starts this level on top of
	// the home screen.
	Play *level.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	play   *level.Config
	width  int
	height int
}

// newAppModel creates a new AppModel. The splash runs first unless a
// level is played directly.
func newAppModel(opts Options) AppModel {
	env := opts.Env
	var root screen.Screen
	if opts.Play != nil {
		root = home.New(env)
	} else {
		root = welcome.New(env, func() screen.Screen { return afterWelcome(env) })
	}
	return AppModel{
		env:    env,
		router: router.New(root),
		play:   opts.Play,
	}
}

// afterWelcome asks for an age once, then lands on the home screen.
func afterWelcome(env *screen.Env) screen.Screen {
	if level.ValidAge(env.Stats.SelectedAge) != nil {
		return age.New(env, func() screen.Screen { return home.New(env) })
	}
	return home.New(env)
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.play != nil {
		return tea.Batch(cmd, m.router.Push(levels.Play(m.env, *m.play)))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, m.quit()
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// quit leaves the active screen first so an unfinished level is recorded
// as abandoned.
func (m AppModel) quit() tea.Cmd {
	if l, ok := m.router.Active().(screen.Leaver); ok {
		return tea.Sequence(l.Leave(), tea.Quit)
	}
	return tea.Quit
}

func (m AppModel) headerStats() layout.HeaderStats {
	st := m.env.Stats
	if st.Name == "" {
		return layout.HeaderStats{}
	}
	return layout.HeaderStats{
		Avatar: st.Avatar.Icon() + " " + st.Name,
		Coins:  st.Coins,
		Score:  st.TotalScore,
	}
}

func (m AppModel) footerHints() []layout.KeyHint {
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	title := ""
	if active := m.router.Active(); active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(m.env.Text().AppTitle, title, m.headerStats(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
