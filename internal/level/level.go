// Package level builds the ten-level ladder for each age bracket.
package level

import (
	"errors"
	"fmt"

	"github.com/abhisek/mathquest/internal/i18n"
)

// Operator is an arithmetic operation a level may ask about.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "x"
	Divide   Operator = "÷"
)

// Count is the number of levels in every bracket.
const Count = 10

// QuestionsPerLevel is fixed for every level.
const QuestionsPerLevel = 10

const (
	MinAge = 4
	MaxAge = 12
)

var (
	ErrInvalidAge   = errors.New("age must be between 4 and 12")
	ErrInvalidLevel = errors.New("level must be between 1 and 10")
)

// Range is an inclusive operand range.
type Range struct {
	Min int
	Max int
}

// Config describes one level. It is immutable once built.
type Config struct {
	// ID is stable per (age, index) and keys persisted star ratings.
	ID          string
	Age         int
	Index       int
	Name        string
	Description string

	// Operators is never empty.
	Operators      []Operator
	NumberRange    Range
	QuestionsCount int
	TargetScore    int

	// IsVisual means operands are shown as groups of icons.
	IsVisual bool
}

// LevelID returns the persistent key for a level.
func LevelID(age, index int) string {
	return fmt.Sprintf("age_%d_lvl_%d", age, index)
}

// ValidAge reports an error when age is outside the supported brackets.
func ValidAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("%w: got %d", ErrInvalidAge, age)
	}
	return nil
}

// ForAge returns the ten levels for age in ascending order. Numeric
// fields depend only on age; lang only changes Name and Description.
// Ages outside 4-9 follow the 10-12 rules.
func ForAge(age int, lang i18n.Lang) []Config {
	levels := make([]Config, 0, Count)
	for i := 1; i <= Count; i++ {
		levels = append(levels, build(age, i, lang))
	}
	return levels
}

// Get returns a single level of the bracket.
func Get(age, index int, lang i18n.Lang) (Config, error) {
	if err := ValidAge(age); err != nil {
		return Config{}, err
	}
	if index < 1 || index > Count {
		return Config{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, index)
	}
	return build(age, index, lang), nil
}

func build(age, i int, lang i18n.Lang) Config {
	en := lang == i18n.EN
	c := Config{
		ID:             LevelID(age, i),
		Age:            age,
		Index:          i,
		QuestionsCount: QuestionsPerLevel,
	}

	switch {
	case age >= 4 && age <= 5:
		c.IsVisual = true
		c.Operators = []Operator{Add}
		c.NumberRange = Range{1, min(10, 2+i)}
		c.TargetScore = 500 + 50*i
		c.Name = pick(en, "Happy Garden", "Kebun Ceria", i)
		c.Description = text(en, "Count the items!", "Hitung gambar lucu!")

	case age >= 6 && age <= 7:
		c.IsVisual = i <= 5
		if c.IsVisual {
			c.Operators = []Operator{Add}
			c.NumberRange = Range{1, min(10, 4+i)}
			c.Description = text(en, "Counting Pictures", "Berhitung Gambar")
		} else {
			c.Operators = []Operator{Add, Subtract}
			c.NumberRange = Range{1, 5 + 2*i}
			c.Description = text(en, "Fun Numbers", "Angka Seru")
		}
		c.TargetScore = 600 + 60*i
		c.Name = pick(en, "Adventure", "Petualangan", i)

	case age >= 8 && age <= 9:
		switch {
		case i <= 3:
			c.Operators = []Operator{Add, Subtract}
			c.Description = text(en, "Add & Subtract", "Tambah Kurang")
		case i <= 7:
			c.Operators = []Operator{Multiply}
			c.Description = text(en, "Basic Multiplication", "Perkalian Dasar")
		default:
			c.Operators = []Operator{Add, Subtract, Multiply}
			c.Description = text(en, "Basic Multiplication", "Perkalian Dasar")
		}
		c.NumberRange = Range{2, 10 + 3*i}
		c.TargetScore = 800 + 80*i
		c.Name = pick(en, "Challenge", "Tantangan", i)

	default:
		switch {
		case i <= 3:
			c.Operators = []Operator{Multiply}
		case i <= 6:
			c.Operators = []Operator{Divide}
		default:
			c.Operators = []Operator{Add, Subtract, Multiply, Divide}
		}
		c.NumberRange = Range{5, 20 + 5*i}
		c.TargetScore = 1000 + 100*i
		c.Name = pick(en, "Master", "Master", i)
		c.Description = text(en, "Mixed Operations", "Operasi Campuran")
	}
	return c
}

func pick(en bool, enName, idName string, i int) string {
	return fmt.Sprintf("%s %d", text(en, enName, idName), i)
}

func text(en bool, enText, idText string) string {
	if en {
		return enText
	}
	return idText
}

// Bracket returns a short label for the age bracket of age.
func Bracket(age int) string {
	switch {
	case age >= 4 && age <= 5:
		return "4-5"
	case age >= 6 && age <= 7:
		return "6-7"
	case age >= 8 && age <= 9:
		return "8-9"
	default:
		return "10-12"
	}
}
