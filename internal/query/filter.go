package query

import "github.com/roach88/forkknife/internal/menu"

// Select returns the dishes of s matching pred, in snapshot order.
// A nil pred matches everything. The result is always non-nil.
func Select(s menu.Snapshot, pred Predicate) []menu.Dish {
	return selectFrom(s.Dishes(), pred)
}

// Where filters an already-derived view, keeping order.
func Where(dishes []menu.Dish, pred Predicate) []menu.Dish {
	return selectFrom(dishes, pred)
}

func selectFrom(dishes []menu.Dish, pred Predicate) []menu.Dish {
	out := make([]menu.Dish, 0, len(dishes))
	for _, d := range dishes {
		if pred == nil || pred.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// FilterByName keeps dishes whose name contains q, ignoring case.
func FilterByName(s menu.Snapshot, q string) []menu.Dish {
	return Select(s, NameContains{Query: q})
}

// FilterByCourse keeps dishes of the given course. AllCourses passes the
// whole snapshot through; an unknown course yields an empty result.
func FilterByCourse(s menu.Snapshot, course string) []menu.Dish {
	return Select(s, CourseIs{Course: course})
}
