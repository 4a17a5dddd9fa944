// Package stats shows the player's cumulative achievements.
package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

type StatsScreen struct {
	env *screen.Env
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

func New(env *screen.Env) *StatsScreen {
	return &StatsScreen{env: env}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return s.env.Text().StatsTitle
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

// totalStars sums the best rating of every level played.
func (s *StatsScreen) totalStars() int {
	n := 0
	for _, v := range s.env.Stats.Stars {
		n += v
	}
	return n
}

// unlocked lists "age: watermark" for every age with progress, youngest first.
func (s *StatsScreen) unlocked() []string {
	ages := make([]int, 0, len(s.env.Stats.UnlockedLevels))
	for age := range s.env.Stats.UnlockedLevels {
		ages = append(ages, age)
	}
	sort.Ints(ages)

	out := make([]string, 0, len(ages))
	for _, age := range ages {
		out = append(out, fmt.Sprintf("%s %d: %d/%d", s.env.Text().MenuAge, age, s.env.Stats.Watermark(age), level.Count))
	}
	return out
}

func (s *StatsScreen) View(width, height int) string {
	t := s.env.Text()
	st := s.env.Stats
	cw := components.ContentWidth(width)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(14)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	row := func(k, v string) string {
		return label.Render(k) + value.Render(v)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render(st.Avatar.Icon() + " " + st.Name))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(st.RankLabel(s.env.Lang())))
	b.WriteString("\n\n")

	b.WriteString(row(t.TotalScore, theme.Score.Render(fmt.Sprintf("%d", st.TotalScore))))
	b.WriteString("\n")
	b.WriteString(row(strings.TrimSuffix(t.Coins, ":"), theme.Coins.Render(fmt.Sprintf("%d", st.Coins))))
	b.WriteString("\n")
	b.WriteString(row(t.GamesPlayed, fmt.Sprintf("%d", st.GamesPlayed)))
	b.WriteString("\n")
	b.WriteString(row(t.GamesWon, fmt.Sprintf("%d", st.GamesWon)))
	b.WriteString("\n")
	b.WriteString(row(t.WinRate, fmt.Sprintf("%d%%", st.WinRate())))
	b.WriteString("\n")
	b.WriteString(row(t.Accuracy, fmt.Sprintf("%d%%", st.Accuracy())))
	b.WriteString("\n")
	b.WriteString(row("★", fmt.Sprintf("%d", s.totalStars())))

	if levels := s.unlocked(); len(levels) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(strings.Join(levels, "   ")))
	}

	card := components.ArcadeCard(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
