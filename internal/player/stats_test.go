package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/session"
)

func cfg(t *testing.T, age, index int) level.Config {
	t.Helper()
	c, err := level.Get(age, index, i18n.EN)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	s := New("Budi", i18n.ID)
	assert.Equal(t, avatar.Robot, s.Avatar)
	assert.Equal(t, []avatar.ID{avatar.Robot, avatar.Cat, avatar.Ninja}, s.UnlockedAvatars)
	assert.Zero(t, s.Coins)
	assert.Equal(t, 1, s.Watermark(7))
	assert.True(t, s.LevelUnlocked(7, 1))
	assert.False(t, s.LevelUnlocked(7, 2))
}

func TestApply_PassUnlocksNextLevel(t *testing.T) {
	s := New("Budi", i18n.EN)
	c := cfg(t, 8, 1) // target 880

	out := s.Apply(session.Result{Score: 900, Passed: true, CorrectCount: 9, TotalQuestions: 10}, c)

	assert.Equal(t, 90+50, out.Coins)
	assert.Equal(t, 3, out.Stars)
	assert.True(t, out.NewUnlocked)
	assert.Equal(t, 2, out.NextLevel)

	assert.Equal(t, 2, s.Watermark(8))
	assert.Equal(t, 3, s.StarsFor(c.ID))
	assert.Equal(t, 900, s.TotalScore)
	assert.Equal(t, 140, s.Coins)
	assert.Equal(t, 1, s.GamesPlayed)
	assert.Equal(t, 1, s.GamesWon)
	assert.Equal(t, 10, s.TotalQuestionsAnswered)
	assert.Equal(t, 9, s.TotalQuestionsCorrect)
}

func TestApply_FailOnlyAddsCoinsAndCounters(t *testing.T) {
	s := New("Budi", i18n.EN)
	c := cfg(t, 8, 1)

	out := s.Apply(session.Result{Score: 300, Passed: false, CorrectCount: 2, TotalQuestions: 10}, c)

	assert.Equal(t, 30, out.Coins)
	assert.Zero(t, out.Stars)
	assert.False(t, out.NewUnlocked)
	assert.Equal(t, 1, s.Watermark(8))
	assert.Zero(t, s.TotalScore)
	assert.Equal(t, 30, s.Coins)
	assert.Zero(t, s.StarsFor(c.ID))
	assert.Equal(t, 1, s.GamesPlayed)
	assert.Zero(t, s.GamesWon)
	assert.Equal(t, 2, s.TotalQuestionsCorrect)
}

func TestApply_ReplayKeepsBestStarsAndWatermark(t *testing.T) {
	s := New("Budi", i18n.EN)
	s.UnlockedLevels[8] = 5
	c := cfg(t, 8, 2) // target 960

	s.Apply(session.Result{Score: 1000, Passed: true, TotalQuestions: 10}, c)
	assert.Equal(t, 5, s.Watermark(8), "replaying an old level must not move the watermark")
	assert.Equal(t, 3, s.StarsFor(c.ID))

	out := s.Apply(session.Result{Score: 500, Passed: true, TotalQuestions: 10}, c)
	assert.Equal(t, 1, out.Stars)
	assert.Equal(t, 3, s.StarsFor(c.ID))
	assert.Equal(t, 1500, s.TotalScore)
}

func TestApply_LastLevelDoesNotUnlockBeyondTen(t *testing.T) {
	s := New("Budi", i18n.EN)
	s.UnlockedLevels[5] = 10
	out := s.Apply(session.Result{Score: 2000, Passed: true, TotalQuestions: 10}, cfg(t, 5, 10))
	assert.False(t, out.NewUnlocked)
	assert.Equal(t, 10, s.Watermark(5))
}

func TestApply_NilMaps(t *testing.T) {
	s := &Stats{}
	s.Apply(session.Result{Score: 1000, Passed: true, TotalQuestions: 10}, cfg(t, 4, 1))
	assert.Equal(t, 2, s.Watermark(4))
}

func TestRank(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, RankBeginner},
		{1000, RankBeginner},
		{1001, RankAdventurer},
		{5001, RankExpert},
		{10000, RankExpert},
		{10001, RankMaster},
	}
	for _, tt := range tests {
		s := &Stats{TotalScore: tt.score}
		assert.Equal(t, tt.want, s.Rank(), "score %d", tt.score)
	}
	assert.Equal(t, "Ahli", (&Stats{TotalScore: 6000}).RankLabel(i18n.ID))
}

func TestAccuracyAndWinRate(t *testing.T) {
	s := &Stats{}
	assert.Zero(t, s.Accuracy())
	assert.Zero(t, s.WinRate())

	s.TotalQuestionsAnswered = 30
	s.TotalQuestionsCorrect = 20
	s.GamesPlayed = 3
	s.GamesWon = 2
	assert.Equal(t, 67, s.Accuracy())
	assert.Equal(t, 67, s.WinRate())
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "SITI NUR", NormalizeName("  siti   nur "))
	assert.Equal(t, "", NormalizeName("   "))
	assert.Equal(t, "A B", NormalizeName("a\tb"))
}

func TestBuyAvatar(t *testing.T) {
	s := New("Budi", i18n.EN)
	s.Coins = 600

	require.NoError(t, s.BuyAvatar(avatar.Bear))
	assert.Equal(t, 100, s.Coins)
	assert.Equal(t, avatar.Bear, s.Avatar)
	assert.True(t, s.Owns(avatar.Bear))

	assert.ErrorIs(t, s.BuyAvatar(avatar.Bear), ErrAvatarOwned)
	assert.ErrorIs(t, s.BuyAvatar(avatar.Royal), ErrInsufficientCoins)
	assert.ErrorIs(t, s.BuyAvatar("dragon"), ErrUnknownAvatar)
	assert.Equal(t, 100, s.Coins)
}

func TestSelectAvatar(t *testing.T) {
	s := New("Budi", i18n.EN)
	require.NoError(t, s.SelectAvatar(avatar.Ninja))
	assert.Equal(t, avatar.Ninja, s.Avatar)
	assert.Equal(t, 2, s.Modifiers().StartStreak)

	assert.ErrorIs(t, s.SelectAvatar(avatar.Dino), ErrAvatarNotOwned)
	assert.ErrorIs(t, s.SelectAvatar("x"), ErrUnknownAvatar)
}
