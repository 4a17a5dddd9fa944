package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	sparkleAt    = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 2500 * time.Millisecond
)

// maxNameLen bounds the name so it fits the leaderboard column.
const maxNameLen = 12

var robotArt = []string{
	"   ┌───┴───┐   ",
	"   │ ■   ■ │   ",
	"   │  ───  │   ",
	"   └┬─────┬┘   ",
	" ┌──┤ 1+2 ├──┐ ",
	" │  │  =  │  │ ",
	"    │ ??? │    ",
	"    └─┬─┬─┘    ",
}

// Symbols that orbit the robot, one step per tick.
var orbit = []string{"+", "−", "×", "÷"}

type tickMsg time.Time

// WelcomeScreen plays the splash animation, then asks a new player for a
// name and a starter avatar. Returning players skip straight on.
type WelcomeScreen struct {
	env          *screen.Env
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool

	naming    bool
	input     components.TextInput
	avatarIdx int
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(env *screen.Env, next func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		env:   env,
		next:  next,
		input: components.NewTextInput(env.Text().NamePlaceholder, false, maxNameLen),
	}
	for i, id := range avatar.StarterSet() {
		if id == env.Stats.Avatar {
			w.avatarIdx = i
		}
	}
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.naming {
		return []layout.KeyHint{
			{Key: "Tab", Description: w.env.Text().ChooseAvatar},
			{Key: "Enter", Description: w.env.Text().Start},
		}
	}
	return nil
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.naming || w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if w.naming {
			return w.handleNameKey(msg)
		}
		if player.NormalizeName(w.env.Stats.Name) != "" {
			return w, w.transition()
		}
		w.naming = true
		return w, w.input.Init()
	}

	if w.naming {
		var cmd tea.Cmd
		w.input, cmd = w.input.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *WelcomeScreen) handleNameKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	starters := avatar.StarterSet()
	switch msg.String() {
	case "tab":
		w.avatarIdx = (w.avatarIdx + 1) % len(starters)
		return w, nil
	case "shift+tab":
		w.avatarIdx = (w.avatarIdx + len(starters) - 1) % len(starters)
		return w, nil
	case "enter":
		name := player.NormalizeName(w.input.Value())
		if name == "" {
			return w, nil
		}
		w.env.Stats.Name = name
		if err := w.env.Stats.SelectAvatar(starters[w.avatarIdx]); err != nil {
			w.env.Log().Warn("select starter avatar", "error", err)
		}
		w.env.Save()
		w.env.Log().Info("player registered", "name", name, "avatar", w.env.Stats.Avatar)
		return w, w.transition()
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	nextScreen := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: nextScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	if w.naming {
		return w.renderNameEntry(width, height)
	}

	sections := []string{w.renderRobot()}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.env.Text().SubTitle),
		)
	}
	if w.elapsed >= totalDur {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// renderRobot draws the mascot. Once sparkleAt has passed, operator
// symbols start circling it.
func (w *WelcomeScreen) renderRobot() string {
	body := lipgloss.NewStyle().Foreground(theme.Primary)
	if w.elapsed < sparkleAt {
		return body.Render(strings.Join(robotArt, "\n"))
	}

	left := lipgloss.NewStyle().Foreground(theme.Accent)
	right := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := make([]string, len(robotArt))
	for i, row := range robotArt {
		l, r := " ", " "
		if i%3 == 0 {
			l = orbit[(w.tickCount+i)%len(orbit)]
			r = orbit[(w.tickCount+i+2)%len(orbit)]
		}
		lines[i] = left.Render(l) + " " + body.Render(row) + " " + right.Render(r)
	}
	return strings.Join(lines, "\n")
}

func (w *WelcomeScreen) renderNameEntry(width, height int) string {
	text := w.env.Text()
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render(text.NamePrompt))
	b.WriteString("\n\n")
	b.WriteString(w.input.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(text.ChooseAvatar))
	b.WriteString("\n")

	starters := avatar.StarterSet()
	cells := make([]string, len(starters))
	for i, id := range starters {
		label := id.Icon() + " " + id.DisplayName()
		if i == w.avatarIdx {
			cells[i] = theme.Selected.Render("[" + label + "]")
		} else {
			cells[i] = theme.Unselected.Render(" " + label + " ")
		}
	}
	b.WriteString(strings.Join(cells, "  "))
	b.WriteString("\n")

	chosen := starters[w.avatarIdx]
	b.WriteString(theme.Hint.Render(text.AbilityLabel + " " + avatar.Ability(chosen, w.env.Lang())))

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
