// Package query derives views and statistics from a menu snapshot.
//
// Everything here is a pure function of its inputs: no state is held between
// calls and a snapshot is never modified.
//
// Filters are expressed as predicates so they compose:
//
//	[FilterByName] ─┐
//	                ├─> Select(snapshot, And{...})
//	[FilterByCourse]┘
//
// Because both filters only drop dishes and keep relative order, applying
// them in either order yields the same result.
package query
