// Package avatar holds the static avatar modifier table.
package avatar

import "github.com/abhisek/mathquest/internal/i18n"

// ID identifies a playable avatar.
type ID string

const (
	Robot  ID = "robot"
	Cat    ID = "cat"
	Ninja  ID = "ninja"
	Bear   ID = "bear"
	Bunny  ID = "bunny"
	Alien  ID = "alien"
	Wizard ID = "wizard"
	Fairy  ID = "fairy"
	Angel  ID = "angel"
	Hero   ID = "hero"
	Dino   ID = "dino"
	Royal  ID = "royal"
)

// Default is the avatar a new player starts with.
const Default = Robot

// Modifiers are the gameplay bonuses granted by an avatar.
type Modifiers struct {
	// Price is the shop cost in coins.
	Price int

	// ScoreMultiplier scales the raw points of every correct answer.
	ScoreMultiplier float64

	// TimeBonus is added to the base per-question timer, in seconds.
	TimeBonus int

	// StreakMultiplier scales the streak bonus.
	StreakMultiplier float64

	// StartStreak is the streak a session begins with.
	StartStreak int
}

// Neutral are the modifiers of an unknown avatar.
var Neutral = Modifiers{ScoreMultiplier: 1.0, StreakMultiplier: 1.0}

// table is sorted by price tier.
var table = map[ID]Modifiers{
	Robot: {Price: 0, ScoreMultiplier: 1.05, TimeBonus: 0, StreakMultiplier: 1.0, StartStreak: 0},
	Cat:   {Price: 0, ScoreMultiplier: 1.0, TimeBonus: 0, StreakMultiplier: 1.0, StartStreak: 1},
	Ninja: {Price: 0, ScoreMultiplier: 1.0, TimeBonus: 0, StreakMultiplier: 1.0, StartStreak: 2},

	Bear:  {Price: 500, ScoreMultiplier: 1.0, TimeBonus: 3, StreakMultiplier: 1.0, StartStreak: 0},
	Bunny: {Price: 500, ScoreMultiplier: 1.0, TimeBonus: 5, StreakMultiplier: 1.0, StartStreak: 0},
	Alien: {Price: 500, ScoreMultiplier: 1.0, TimeBonus: 4, StreakMultiplier: 1.1, StartStreak: 0},

	Wizard: {Price: 1500, ScoreMultiplier: 1.1, TimeBonus: 2, StreakMultiplier: 1.0, StartStreak: 0},
	Fairy:  {Price: 1500, ScoreMultiplier: 1.0, TimeBonus: 0, StreakMultiplier: 1.2, StartStreak: 0},

	Angel: {Price: 3000, ScoreMultiplier: 1.05, TimeBonus: 5, StreakMultiplier: 1.0, StartStreak: 0},
	Hero:  {Price: 3000, ScoreMultiplier: 1.15, TimeBonus: 0, StreakMultiplier: 1.1, StartStreak: 0},

	Dino:  {Price: 5000, ScoreMultiplier: 1.0, TimeBonus: 0, StreakMultiplier: 1.5, StartStreak: 0},
	Royal: {Price: 5000, ScoreMultiplier: 1.25, TimeBonus: 0, StreakMultiplier: 1.0, StartStreak: 0},
}

// All returns every avatar in shop order.
func All() []ID {
	return []ID{Robot, Cat, Ninja, Bear, Bunny, Alien, Wizard, Fairy, Angel, Hero, Dino, Royal}
}

// StarterSet returns the avatars every new player owns.
func StarterSet() []ID {
	return []ID{Robot, Cat, Ninja}
}

// Stats returns the modifiers for id. Unknown identities resolve to
// Neutral so a corrupted saved avatar never breaks a session.
func Stats(id ID) Modifiers {
	if m, ok := table[id]; ok {
		return m
	}
	return Neutral
}

// Known reports whether id is one of the fixed avatars.
func Known(id ID) bool {
	_, ok := table[id]
	return ok
}

// Ability returns the short ability description in lang.
func Ability(id ID, lang i18n.Lang) string {
	return i18n.For(lang).Abilities[string(id)]
}

// Icon returns the display glyph for id.
func (id ID) Icon() string {
	switch id {
	case Robot:
		return "🤖"
	case Cat:
		return "🐱"
	case Ninja:
		return "🥷"
	case Bear:
		return "🐻"
	case Bunny:
		return "🐰"
	case Alien:
		return "👽"
	case Wizard:
		return "🧙"
	case Fairy:
		return "🧚"
	case Angel:
		return "😇"
	case Hero:
		return "🦸"
	case Dino:
		return "🦖"
	case Royal:
		return "👑"
	default:
		return "🙂"
	}
}

// DisplayName returns a capitalised label for id.
func (id ID) DisplayName() string {
	if id == "" {
		return ""
	}
	s := string(id)
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
