package testutil

import "sync"

// FixedIDs returns predetermined dish IDs in order.
//
// Tests can provide a known sequence of IDs, including deliberate
// collisions, and verify how the store handles them.
//
// Thread-safety: FixedIDs is safe for concurrent use via internal mutex.
type FixedIDs struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedIDs creates a generator that returns ids in order.
//
//	gen := NewFixedIDs("a", "b")
//	gen.NextID() // "a"
//	gen.NextID() // "b"
//	gen.NextID() // panic: all IDs exhausted
func NewFixedIDs(ids ...string) *FixedIDs {
	return &FixedIDs{ids: ids}
}

// NextID returns the next predetermined ID.
//
// Panics if all IDs have been consumed, to catch a test that adds more
// dishes than it planned for.
func (g *FixedIDs) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedIDs: all IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
