package menu

import (
	"errors"
	"strings"
)

// Dish is one menu entry. Dishes are values and are never mutated after
// the store publishes them.
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Course      Course `json:"course"`
	Price       Price  `json:"price"`
}

// Candidate holds raw field values as entered, before validation.
type Candidate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Course      string `json:"course" yaml:"course"`
	Price       string `json:"price" yaml:"price"`
}

// Validate checks every field and returns the dish it describes, without
// an ID. All problems are reported together.
func (c Candidate) Validate() (Dish, error) {
	var problems []FieldProblem
	d := Dish{
		Name:        strings.TrimSpace(c.Name),
		Description: strings.TrimSpace(c.Description),
	}

	if d.Name == "" {
		problems = append(problems, FieldProblem{Field: "name", Code: ProblemEmpty, Message: "name is required"})
	}
	if d.Description == "" {
		problems = append(problems, FieldProblem{Field: "description", Code: ProblemEmpty, Message: "description is required"})
	}

	if strings.TrimSpace(c.Course) == "" {
		d.Course = DefaultCourse
	} else if course, ok := ParseCourse(c.Course); ok {
		d.Course = course
	} else {
		problems = append(problems, FieldProblem{
			Field:   "course",
			Code:    ProblemUnknownCourse,
			Message: "course must be one of Starters, Mains, Desserts",
		})
	}

	switch price, err := ParsePrice(c.Price); {
	case err == nil:
		d.Price = price
	case strings.TrimSpace(c.Price) == "":
		problems = append(problems, FieldProblem{Field: "price", Code: ProblemEmpty, Message: "price is required"})
	case errors.Is(err, errNegativePrice):
		problems = append(problems, FieldProblem{Field: "price", Code: ProblemNegativePrice, Message: err.Error()})
	default:
		problems = append(problems, FieldProblem{Field: "price", Code: ProblemInvalidPrice, Message: err.Error()})
	}

	if len(problems) > 0 {
		return Dish{}, &InvalidInputError{Problems: problems}
	}
	return d, nil
}
