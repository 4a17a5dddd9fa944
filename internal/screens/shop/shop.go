// Package shop is the avatar shop: buy avatars with coins and pick the
// active one.
package shop

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/ui/components"
	"github.com/abhisek/mathquest/internal/ui/layout"
	"github.com/abhisek/mathquest/internal/ui/theme"
)

// ShopScreen lists every avatar in price order.
type ShopScreen struct {
	env      *screen.Env
	avatars  []avatar.ID
	selected int

	notice   string
	noticeOK bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

func New(env *screen.Env) *ShopScreen {
	s := &ShopScreen{env: env, avatars: avatar.All()}
	for i, id := range s.avatars {
		if id == env.Stats.Avatar {
			s.selected = i
		}
	}
	return s
}

func (s *ShopScreen) Init() tea.Cmd {
	return nil
}

func (s *ShopScreen) Title() string {
	return s.env.Text().ShopTitle
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Browse"},
		{Key: "Enter", Description: s.env.Text().Buy + " / " + s.env.Text().Select},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.notice = ""
		}
	case "down", "j":
		if s.selected < len(s.avatars)-1 {
			s.selected++
			s.notice = ""
		}
	case "enter", "space":
		s.choose(s.avatars[s.selected])
	}
	return s, nil
}

// choose selects an owned avatar or buys a new one.
func (s *ShopScreen) choose(id avatar.ID) {
	text := s.env.Text()
	stats := s.env.Stats

	if stats.Owns(id) {
		if err := stats.SelectAvatar(id); err != nil {
			s.setNotice(err.Error(), false)
			return
		}
		s.env.Save()
		s.setNotice(text.Selected, true)
		return
	}

	err := stats.BuyAvatar(id)
	switch {
	case errors.Is(err, player.ErrInsufficientCoins):
		s.setNotice(text.NotEnough, false)
	case err != nil:
		s.env.Log().Error("buy avatar", "avatar", id, "error", err)
		s.setNotice(err.Error(), false)
	default:
		s.env.Save()
		s.env.Log().Info("avatar bought", "avatar", id, "coins_left", stats.Coins)
		s.setNotice(text.Success, true)
	}
}

func (s *ShopScreen) setNotice(msg string, ok bool) {
	s.notice = msg
	s.noticeOK = ok
}

func (s *ShopScreen) View(width, height int) string {
	text := s.env.Text()
	stats := s.env.Stats

	var b strings.Builder
	b.WriteString(theme.Coins.Render(fmt.Sprintf("%s %d", text.Coins, stats.Coins)))
	b.WriteString("\n\n")

	for i, id := range s.avatars {
		var status string
		switch {
		case id == stats.Avatar:
			status = theme.Correct.Render(text.Selected)
		case stats.Owns(id):
			status = theme.Hint.Render(text.Owned)
		default:
			price := avatar.Stats(id).Price
			style := theme.Coins
			if price > stats.Coins {
				style = theme.Locked
			}
			status = style.Render(fmt.Sprintf("● %d", price))
		}

		label := fmt.Sprintf("%s %-7s", id.Icon(), id.DisplayName())
		line := "    " + label
		if i == s.selected {
			line = theme.Selected.Render("  ▸ " + label)
		}
		b.WriteString(line + "  " + status + "\n")
	}

	chosen := s.avatars[s.selected]
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(text.AbilityLabel + " " + avatar.Ability(chosen, s.env.Lang())))

	if s.notice != "" {
		style := theme.Incorrect
		if s.noticeOK {
			style = theme.Correct
		}
		b.WriteString("\n\n")
		b.WriteString(style.Render(s.notice))
	}

	card := components.ArcadeCard(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
