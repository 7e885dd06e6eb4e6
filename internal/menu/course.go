package menu

import "strings"

// Course is the closed category of a dish.
type Course string

const (
	Starters Course = "Starters"
	Mains    Course = "Mains"
	Desserts Course = "Desserts"
)

// DefaultCourse is used when a candidate leaves the course unset.
const DefaultCourse = Starters

// Courses returns every course in display order.
func Courses() []Course {
	return []Course{Starters, Mains, Desserts}
}

// ParseCourse maps s onto its canonical course, ignoring case and
// surrounding whitespace.
func ParseCourse(s string) (Course, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Courses() {
		if strings.EqualFold(s, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Valid reports whether c is one of the canonical courses.
func (c Course) Valid() bool {
	switch c {
	case Starters, Mains, Desserts:
		return true
	}
	return false
}

func (c Course) String() string { return string(c) }
