// Package scoring computes points, pass/fail, star ratings and coin
// awards for a level.
package scoring

import (
	"math"

	"github.com/abhisek/mathquest/internal/avatar"
)

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 100

	// SpeedPointsPerSecond is multiplied by the seconds left.
	SpeedPointsPerSecond = 10

	// StreakPointsPerStep is multiplied by the new streak.
	StreakPointsPerStep = 10

	// BaseTimerSeconds is the per-question countdown before avatar bonuses.
	BaseTimerSeconds = 30

	// PassBonusCoins is added to the coin award of a passed level.
	PassBonusCoins = 50
)

// Award is the result of scoring one correct answer. SpeedBonus and
// StreakBonus are the parts of Points before the avatar score multiplier.
type Award struct {
	Points      int
	Streak      int
	SpeedBonus  int
	StreakBonus int
}

// ScoreCorrect returns the points for a correct answer given the seconds
// left and the streak before this answer, plus the new streak.
func ScoreCorrect(timeLeft, priorStreak int, mods avatar.Modifiers) (points, newStreak int) {
	a := Breakdown(timeLeft, priorStreak, mods)
	return a.Points, a.Streak
}

// Breakdown is ScoreCorrect with the intermediate bonuses exposed.
func Breakdown(timeLeft, priorStreak int, mods avatar.Modifiers) Award {
	speed := max(0, timeLeft*SpeedPointsPerSecond)
	streak := priorStreak + 1
	streakBonus := int(math.Round(float64(streak*StreakPointsPerStep) * mods.StreakMultiplier))
	raw := BasePoints + speed + streakBonus
	return Award{
		Points:      int(math.Round(float64(raw) * mods.ScoreMultiplier)),
		Streak:      streak,
		SpeedBonus:  speed,
		StreakBonus: streakBonus,
	}
}

// ScoreWrong returns the streak after a wrong answer or a timeout.
func ScoreWrong() (points, newStreak int) {
	return 0, 0
}

// TimerSeconds is the countdown each question starts with.
func TimerSeconds(mods avatar.Modifiers) int {
	return BaseTimerSeconds + mods.TimeBonus
}

// Passed reports whether score reaches half of target.
func Passed(score, target int) bool {
	return 2*score >= target
}

// Stars rates a finished level from 0 to 3.
func Stars(score, target int) int {
	switch {
	case score >= target:
		return 3
	case 10*score >= 7*target:
		return 2
	case Passed(score, target):
		return 1
	default:
		return 0
	}
}

// Coins is the coin award for a finished level.
func Coins(score int, passed bool) int {
	coins := score / 10
	if passed {
		coins += PassBonusCoins
	}
	return coins
}
