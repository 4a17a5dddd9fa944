package shop

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/player"
	"github.com/abhisek/mathquest/internal/screen"
)

func testShop(coins int) (*ShopScreen, *player.Stats) {
	stats := player.New("ANI", i18n.EN)
	stats.Coins = coins
	return New(&screen.Env{Stats: stats}), stats
}

func moveTo(t *testing.T, s *ShopScreen, id avatar.ID) {
	t.Helper()
	for s.avatars[s.selected] != id {
		before := s.selected
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		require.NotEqual(t, before, s.selected, "avatar %s not found", id)
	}
}

func enter(s *ShopScreen) {
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestShop_StartsOnActiveAvatar(t *testing.T) {
	s, _ := testShop(0)
	assert.Equal(t, avatar.Robot, s.avatars[s.selected])
}

func TestShop_SelectOwned(t *testing.T) {
	s, stats := testShop(0)
	moveTo(t, s, avatar.Ninja)
	enter(s)

	assert.Equal(t, avatar.Ninja, stats.Avatar)
	assert.Equal(t, "CHOSEN", s.notice)
	assert.True(t, s.noticeOK)
}

func TestShop_BuyWithEnoughCoins(t *testing.T) {
	s, stats := testShop(600)
	moveTo(t, s, avatar.Bunny)
	enter(s)

	assert.True(t, stats.Owns(avatar.Bunny))
	assert.Equal(t, avatar.Bunny, stats.Avatar)
	assert.Equal(t, 100, stats.Coins)
	assert.True(t, s.noticeOK)
}

func TestShop_NotEnoughCoins(t *testing.T) {
	s, stats := testShop(100)
	moveTo(t, s, avatar.Royal)
	enter(s)

	assert.False(t, stats.Owns(avatar.Royal))
	assert.Equal(t, 100, stats.Coins)
	assert.False(t, s.noticeOK)
	assert.True(t, strings.Contains(s.View(100, 40), s.notice))
}

func TestShop_ViewListsEveryAvatar(t *testing.T) {
	s, _ := testShop(0)
	view := s.View(100, 40)
	for _, id := range avatar.All() {
		assert.True(t, strings.Contains(view, id.DisplayName()), "missing %s", id)
	}
}
