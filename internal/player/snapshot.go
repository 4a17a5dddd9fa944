package player

import (
	"strconv"

	"golang.org/x/mod/semver"

	"github.com/abhisek/mathquest/internal/avatar"
	"github.com/abhisek/mathquest/internal/i18n"
	"github.com/abhisek/mathquest/internal/store"
)

// SnapshotVersion is the layout written by ToSnapshot.
const SnapshotVersion = "v3.1.0"

// firstLocalizedVersion is the first layout that stored the language.
const firstLocalizedVersion = "v3.1.0"

// ToSnapshot converts stats to their stored form.
func (s *Stats) ToSnapshot() store.SnapshotData {
	levels := make(map[string]int, len(s.UnlockedLevels))
	for age, w := range s.UnlockedLevels {
		levels[strconv.Itoa(age)] = w
	}
	avatars := make([]string, 0, len(s.UnlockedAvatars))
	for _, id := range s.UnlockedAvatars {
		avatars = append(avatars, string(id))
	}
	stars := make(map[string]int, len(s.Stars))
	for k, v := range s.Stars {
		stars[k] = v
	}
	coins := s.Coins

	return store.SnapshotData{
		Version: SnapshotVersion,
		Player: &store.PlayerSnapshot{
			Name:                   s.Name,
			SelectedAge:            s.SelectedAge,
			UnlockedLevels:         levels,
			TotalScore:             s.TotalScore,
			Coins:                  &coins,
			UnlockedAvatars:        avatars,
			Stars:                  stars,
			GamesPlayed:            s.GamesPlayed,
			GamesWon:               s.GamesWon,
			TotalQuestionsAnswered: s.TotalQuestionsAnswered,
			TotalQuestionsCorrect:  s.TotalQuestionsCorrect,
			Avatar:                 string(s.Avatar),
			Language:               string(s.Language),
		},
	}
}

// FromSnapshot restores stats, filling fields older layouts lacked.
// It returns nil when data holds no player.
func FromSnapshot(data store.SnapshotData) *Stats {
	p := data.Player
	if p == nil {
		return nil
	}

	s := New(p.Name, i18n.Parse(p.Language))
	s.SelectedAge = p.SelectedAge
	s.TotalScore = p.TotalScore
	s.GamesPlayed = p.GamesPlayed
	s.GamesWon = p.GamesWon
	s.TotalQuestionsAnswered = p.TotalQuestionsAnswered
	s.TotalQuestionsCorrect = p.TotalQuestionsCorrect

	for k, w := range p.UnlockedLevels {
		if age, err := strconv.Atoi(k); err == nil {
			s.UnlockedLevels[age] = w
		}
	}
	for k, v := range p.Stars {
		s.Stars[k] = v
	}

	if p.Coins != nil {
		s.Coins = *p.Coins
	}
	if p.UnlockedAvatars != nil {
		s.UnlockedAvatars = s.UnlockedAvatars[:0]
		for _, id := range p.UnlockedAvatars {
			if avatar.Known(avatar.ID(id)) {
				s.UnlockedAvatars = append(s.UnlockedAvatars, avatar.ID(id))
			}
		}
	}

	s.Avatar = avatar.ID(p.Avatar)
	if !avatar.Known(s.Avatar) || !s.Owns(s.Avatar) {
		s.Avatar = avatar.Default
		if !s.Owns(avatar.Default) {
			s.UnlockedAvatars = append(s.UnlockedAvatars, avatar.Default)
		}
	}

	// Older layouts had no language; keep the default.
	if !semver.IsValid(data.Version) || semver.Compare(data.Version, firstLocalizedVersion) < 0 {
		s.Language = i18n.ID
	}
	return s
}
