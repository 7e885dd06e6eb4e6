package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/forkknife/internal/menu"
)

// AllCourses is the course filter value that passes every dish through.
const AllCourses = "All"

// Predicate decides whether a dish belongs in a view.
//
// This is a sealed interface - only types in this package implement it.
//
// Predicate types:
//   - NameContains: case-insensitive substring of the dish name
//   - CourseIs: exact course match, or AllCourses
//   - And: all predicates must hold
type Predicate interface {
	Match(d menu.Dish) bool
	predicateNode()
}

// NameContains matches dishes whose name contains Query, ignoring case.
// An empty Query matches every dish.
//
// Comparison uses Unicode case folding on NFC-normalised text, so "ÉCLAIR"
// matches "éclair" whether or not the accent was typed precomposed.
type NameContains struct {
	Query string
}

func (NameContains) predicateNode() {}

// Match implements Predicate.
func (p NameContains) Match(d menu.Dish) bool {
	if p.Query == "" {
		return true
	}
	return strings.Contains(fold(d.Name), fold(p.Query))
}

// CourseIs matches dishes of exactly Course. AllCourses matches everything;
// a value outside the closed set matches nothing.
type CourseIs struct {
	Course string
}

func (CourseIs) predicateNode() {}

// Match implements Predicate.
func (p CourseIs) Match(d menu.Dish) bool {
	if p.Course == AllCourses {
		return true
	}
	return string(d.Course) == p.Course
}

// And matches when every predicate matches. An empty And matches everything.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Match implements Predicate.
func (p And) Match(d menu.Dish) bool {
	for _, pred := range p.Predicates {
		if !pred.Match(d) {
			return false
		}
	}
	return true
}

// fold normalises s for caseless comparison.
// cases.Caser is stateful, so a fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}
