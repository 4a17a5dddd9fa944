// Package problemgen synthesizes arithmetic questions for a level.
package problemgen

import (
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/abhisek/mathquest/internal/level"
)

// Generator produces questions from a level configuration.
// It is not safe for concurrent use; each session owns one.
type Generator struct {
	rng        Rand
	validators []Validator
	logger     *slog.Logger
}

// maxDraws bounds how many times Generate redraws a question that fails
// validation.
const maxDraws = 5

// New returns a Generator drawing from r. A nil r uses a randomly
// seeded source. Every question is checked by validators in order; the
// first failure rejects it and a fresh one is drawn.
func New(r Rand, validators ...Validator) *Generator {
	if r == nil {
		r = NewRand(rand.Uint64())
	}
	return &Generator{rng: r, validators: validators, logger: slog.Default()}
}

// NewDefault returns a randomly seeded Generator with DefaultValidators.
func NewDefault() *Generator {
	return New(nil, DefaultValidators()...)
}

// WithLogger sets where rejected questions are reported.
func (g *Generator) WithLogger(l *slog.Logger) *Generator {
	if l != nil {
		g.logger = l
	}
	return g
}

// NewSeeded returns a deterministic Generator.
func NewSeeded(seed uint64) *Generator {
	return New(NewRand(seed))
}

// Generate builds one question for cfg. A question rejected by a
// validator is logged and redrawn; after maxDraws rejections the last draw
// is returned as is.
func (g *Generator) Generate(cfg level.Config) *Question {
	var q *Question
	for attempt := 1; attempt <= maxDraws; attempt++ {
		q = g.draw(cfg)
		err := g.Validate(q, cfg)
		if err == nil {
			return q
		}
		g.logger.Warn("question rejected",
			"level", cfg.ID, "question", q.Text(), "attempt", attempt, "error", err)
	}
	g.logger.Error("no valid question after redraws", "level", cfg.ID, "draws", maxDraws)
	return q
}

func (g *Generator) draw(cfg level.Config) *Question {
	r := g.rng
	op := cfg.Operators[r.IntN(len(cfg.Operators))]
	num1 := between(r, cfg.NumberRange.Min, cfg.NumberRange.Max)
	num2 := between(r, cfg.NumberRange.Min, cfg.NumberRange.Max)

	var (
		answer int
		visual *Visual
	)

	if cfg.IsVisual {
		icon := visualIcons[r.IntN(len(visualIcons))]
		top := min(cfg.NumberRange.Max, maxVisualCount)
		num1 = between(r, 1, top)
		num2 = between(r, 1, top)

		switch op {
		case level.Subtract:
			if num1 < num2 {
				num1, num2 = num2, num1
			}
			answer = num1 - num2
		default:
			// Add, and the fallback for operators visual levels never use.
			answer = num1 + num2
		}
		visual = &Visual{Icon: icon, Count1: num1, Count2: num2}
	} else {
		switch op {
		case level.Add:
			answer = num1 + num2
		case level.Subtract:
			if num1 < num2 {
				num1, num2 = num2, num1
			}
			answer = num1 - num2
		case level.Multiply:
			num1 = between(r, 1, 10)
			num2 = between(r, 1, 10)
			answer = num1 * num2
		case level.Divide:
			if num2 == 0 {
				num2 = 1
			}
			answer = num1
			num1 = num1 * num2
		}
	}

	return &Question{
		Num1:          num1,
		Num2:          num2,
		Operator:      op,
		CorrectAnswer: answer,
		Choices:       buildChoices(r, answer, cfg.NumberRange.Max),
		Visual:        visual,
	}
}

// Validate runs the generator's validators against q.
func (g *Generator) Validate(q *Question, cfg level.Config) error {
	for _, v := range g.validators {
		if verr := v.Validate(q, cfg); verr != nil {
			return verr
		}
	}
	return nil
}

// buildChoices returns four distinct non-negative options containing
// correct, shuffled.
func buildChoices(r Rand, correct, rangeMax int) []int {
	choices := make([]int, 0, ChoiceCount)
	choices = append(choices, correct)

	if coinFlip(r) {
		choices = append(choices, correct+1)
	}
	if coinFlip(r) && correct > 0 {
		choices = append(choices, correct-1)
	}

	for len(choices) < ChoiceCount {
		candidate := correct + between(r, -5, 5)
		if candidate >= 0 && !slices.Contains(choices, candidate) {
			choices = append(choices, candidate)
			continue
		}
		fallback := between(r, 0, rangeMax+5)
		if !slices.Contains(choices, fallback) {
			choices = append(choices, fallback)
		}
	}

	for i := len(choices) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		choices[i], choices[j] = choices[j], choices[i]
	}
	return choices
}
