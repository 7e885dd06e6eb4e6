// Package menu holds the dish data model and the store that owns the menu.
//
// This package is the foundational layer: query, engine, catalog and cli all
// import menu; menu imports nothing internal.
//
// Key design constraints:
//   - NO float types for money - prices are exact apd decimals
//   - Dishes are never mutated in place; an edit is remove + add
//   - Every write publishes a fresh Snapshot; published snapshots never change
//   - IDs are issued once and never reused, even after removal
package menu
