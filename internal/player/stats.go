// Package player folds finished levels into cumulative player statistics
// and runs the avatar shop.
package player

import (
	"math"
	"slices"
	"strings"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/level"
	"github.com/abhisek/mathquest/internal/scoring"
	"github.com/abhisek/mathquest/internal/session"
)

// Stats is everything persisted about a player.
type Stats struct {
	Name string

	// SelectedAge is 0 until the player picks an age.
	SelectedAge int

	// UnlockedLevels maps age to the highest playable level index.
	UnlockedLevels map[int]int

	// TotalScore only grows from passed levels.
	TotalScore int
	Coins      int

	UnlockedAvatars []avatar.ID

	// Stars maps level ID to the best rating earned.
	Stars map[string]int

	GamesPlayed            int
	GamesWon               int
	TotalQuestionsAnswered int
	TotalQuestionsCorrect  int

	Avatar   avatar.ID
	Language i18n.Lang
}

// New returns a fresh player with the starter avatars.
func New(name string, lang i18n.Lang) *Stats {
	return &Stats{
		Name:            name,
		UnlockedLevels:  make(map[int]int),
		UnlockedAvatars: avatar.StarterSet(),
		Stars:           make(map[string]int),
		Avatar:          avatar.Default,
		Language:        lang,
	}
}

// Outcome summarizes what Apply changed.
type Outcome struct {
	Coins       int
	Stars       int
	Passed      bool
	NewUnlocked bool

	// NextLevel is the level unlocked by this result, 0 if none.
	NextLevel int
}

// Apply folds a finished level into the stats.
func (s *Stats) Apply(r session.Result, cfg level.Config) Outcome {
	s.ensureMaps()

	out := Outcome{
		Coins:  scoring.Coins(r.Score, r.Passed),
		Passed: r.Passed,
	}

	if r.Passed {
		watermark := s.Watermark(cfg.Age)
		if cfg.Index == watermark && watermark < level.Count {
			s.UnlockedLevels[cfg.Age] = cfg.Index + 1
			out.NewUnlocked = true
			out.NextLevel = cfg.Index + 1
		} else {
			s.UnlockedLevels[cfg.Age] = watermark
		}

		out.Stars = scoring.Stars(r.Score, cfg.TargetScore)
		s.Stars[cfg.ID] = max(s.Stars[cfg.ID], out.Stars)
		s.TotalScore += r.Score
		s.GamesWon++
	}

	s.Coins += out.Coins
	s.GamesPlayed++
	s.TotalQuestionsAnswered += r.TotalQuestions
	s.TotalQuestionsCorrect += r.CorrectCount
	return out
}

// Watermark returns the highest unlocked level for age, at least 1.
func (s *Stats) Watermark(age int) int {
	if w := s.UnlockedLevels[age]; w > 0 {
		return w
	}
	return 1
}

// LevelUnlocked reports whether level index is playable for age.
func (s *Stats) LevelUnlocked(age, index int) bool {
	return index >= 1 && index <= s.Watermark(age)
}

// StarsFor returns the best rating for a level ID.
func (s *Stats) StarsFor(levelID string) int {
	return s.Stars[levelID]
}

// Owns reports whether the player has unlocked id.
func (s *Stats) Owns(id avatar.ID) bool {
	return slices.Contains(s.UnlockedAvatars, id)
}

// Modifiers returns the modifiers of the selected avatar.
func (s *Stats) Modifiers() avatar.Modifiers {
	return avatar.Stats(s.Avatar)
}

// Rank titles, from lowest.
const (
	RankBeginner   = "beginner"
	RankAdventurer = "adventurer"
	RankExpert     = "expert"
	RankMaster     = "master"
)

// Rank returns the title earned by the total score.
func (s *Stats) Rank() string {
	switch {
	case s.TotalScore > 10000:
		return RankMaster
	case s.TotalScore > 5000:
		return RankExpert
	case s.TotalScore > 1000:
		return RankAdventurer
	default:
		return RankBeginner
	}
}

// RankLabel returns the localized rank title.
func (s *Stats) RankLabel(lang i18n.Lang) string {
	t := i18n.For(lang)
	switch s.Rank() {
	case RankMaster:
		return t.RankMaster
	case RankExpert:
		return t.RankExpert
	case RankAdventurer:
		return t.RankAdventurer
	default:
		return t.RankBeginner
	}
}

// Accuracy is the rounded percentage of correct answers.
func (s *Stats) Accuracy() int {
	return percent(s.TotalQuestionsCorrect, s.TotalQuestionsAnswered)
}

// WinRate is the rounded percentage of passed levels.
func (s *Stats) WinRate() int {
	return percent(s.GamesWon, s.GamesPlayed)
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// NormalizeName trims, upper-cases and collapses inner whitespace.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

func (s *Stats) ensureMaps() {
	if s.UnlockedLevels == nil {
		s.UnlockedLevels = make(map[int]int)
	}
	if s.Stars == nil {
		s.Stars = make(map[string]int)
	}
}
