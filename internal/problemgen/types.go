package problemgen

import (
	"fmt"

	"github.com/abhisek/mathquest/internal/level"
)

// ChoiceCount is the number of answer options on every question.
const ChoiceCount = 4

// Question is one generated round. It is immutable once returned.
type Question struct {
	Num1     int
	Num2     int
	Operator level.Operator

	// CorrectAnswer is the result of Num1 Operator Num2. For Divide,
	// Num1 is the dividend built as CorrectAnswer * Num2.
	CorrectAnswer int

	// Choices holds exactly four distinct non-negative values, one of
	// which is CorrectAnswer, in random order.
	Choices []int

	// Visual is set only for levels in visual mode.
	Visual *Visual
}

// Visual carries the icon groups shown instead of numerals.
type Visual struct {
	Icon   string
	Count1 int
	Count2 int
}

// Text renders the question as an expression, e.g. "12 ÷ 4 = ?".
func (q *Question) Text() string {
	return fmt.Sprintf("%d %s %d = ?", q.Num1, q.Operator, q.Num2)
}

// Check reports whether answer is correct.
func (q *Question) Check(answer int) bool {
	return answer == q.CorrectAnswer
}

// Evaluate recomputes the answer from the operands. Visual questions
// with an operator other than Add or Subtract evaluate to the sum.
func Evaluate(num1 int, op level.Operator, num2 int, visual bool) (int, bool) {
	if visual && op != level.Add && op != level.Subtract {
		return num1 + num2, true
	}
	switch op {
	case level.Add:
		return num1 + num2, true
	case level.Subtract:
		return num1 - num2, true
	case level.Multiply:
		return num1 * num2, true
	case level.Divide:
		if num2 == 0 || num1%num2 != 0 {
			return 0, false
		}
		return num1 / num2, true
	}
	return 0, false
}
