package problemgen

import (
	"fmt"
	"slices"

	"github.com/abhisek/mathquest/internal/level"
)

// Validator checks a generated question.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if q passes.
	Validate(q *Question, cfg level.Config) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the full validator chain.
func DefaultValidators() []Validator {
	return []Validator{&StructuralValidator{}, &MathCheckValidator{}}
}

// StructuralValidator checks the choice set and operand bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, cfg level.Config) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	if len(q.Choices) != ChoiceCount {
		return fail("expected %d choices, got %d", ChoiceCount, len(q.Choices))
	}
	seen := make(map[int]bool, ChoiceCount)
	for _, c := range q.Choices {
		if c < 0 {
			return fail("negative choice %d", c)
		}
		if seen[c] {
			return fail("duplicate choice %d", c)
		}
		seen[c] = true
	}
	if !slices.Contains(q.Choices, q.CorrectAnswer) {
		return fail("correct answer %d missing from choices", q.CorrectAnswer)
	}
	if !slices.Contains(cfg.Operators, q.Operator) {
		return fail("operator %q not allowed by level %s", q.Operator, cfg.ID)
	}
	if cfg.IsVisual != (q.Visual != nil) {
		return fail("visual data does not match level mode")
	}
	if q.Visual != nil {
		if q.Visual.Count1 != q.Num1 || q.Visual.Count2 != q.Num2 {
			return fail("icon counts %d,%d do not match operands %d,%d",
				q.Visual.Count1, q.Visual.Count2, q.Num1, q.Num2)
		}
		if q.Num1 > maxVisualCount || q.Num2 > maxVisualCount {
			return fail("icon count above %d", maxVisualCount)
		}
	}
	return nil
}

// MathCheckValidator recomputes the answer from the operands.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ level.Config) *ValidationError {
	got, ok := Evaluate(q.Num1, q.Operator, q.Num2, q.Visual != nil)
	if !ok {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%s is not an exact integer expression", q.Text()),
		}
	}
	if got != q.CorrectAnswer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but question claims %d", got, q.CorrectAnswer),
		}
	}
	if got < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("negative answer %d", got),
		}
	}
	return nil
}
