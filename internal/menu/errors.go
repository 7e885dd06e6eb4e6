package menu

import (
	"errors"
	"strings"
)

// ErrInvalidInput matches every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// ProblemCode categorizes why a candidate field was rejected.
type ProblemCode string

const (
	// ProblemEmpty indicates a required field was missing or blank.
	ProblemEmpty ProblemCode = "EMPTY"

	// ProblemInvalidPrice indicates the price did not parse as a finite number.
	ProblemInvalidPrice ProblemCode = "INVALID_PRICE"

	// ProblemNegativePrice indicates the price parsed but was below zero.
	ProblemNegativePrice ProblemCode = "NEGATIVE_PRICE"

	// ProblemUnknownCourse indicates the course is outside the closed set.
	ProblemUnknownCourse ProblemCode = "UNKNOWN_COURSE"
)

// FieldProblem describes one rejected candidate field.
type FieldProblem struct {
	Field   string      `json:"field"`
	Code    ProblemCode `json:"code"`
	Message string      `json:"message"`
}

// InvalidInputError is returned by Store.Add when a candidate is rejected.
// Problems lists every offending field in field order
// (name, description, course, price).
type InvalidInputError struct {
	Problems []FieldProblem
}

func (e *InvalidInputError) Error() string {
	if len(e.Problems) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Message
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Fields returns the names of the rejected fields.
func (e *InvalidInputError) Fields() []string {
	out := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		out[i] = p.Field
	}
	return out
}

// IsInvalidInput returns true if err is or wraps an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
