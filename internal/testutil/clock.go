package testutil

import (
	"strconv"
	"sync"
)

// DeterministicClock provides a thread-safe monotonic logical clock for tests.
//
// Unlike menu.CounterIDs, DeterministicClock can be reset for test reuse.
// This enables the same script to run multiple times with identical IDs.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu     sync.Mutex
	seq    int64
	prefix string
}

// NewDeterministicClock creates a new deterministic clock starting at 0.
//
// The first call to Next() returns 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{seq: 0}
}

// NewPrefixedClock creates a clock whose NextID values carry prefix,
// e.g. "dish-1", "dish-2".
func NewPrefixedClock(prefix string) *DeterministicClock {
	return &DeterministicClock{prefix: prefix}
}

// Next increments and returns the next sequence number.
func (c *DeterministicClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// NextID returns the next sequence number as an ID string.
//
// Implements menu.IDGenerator.
func (c *DeterministicClock) NextID() string {
	seq := c.Next()
	return c.prefix + strconv.FormatInt(seq, 10)
}

// Current returns the current sequence number without incrementing.
func (c *DeterministicClock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the clock to 0.
//
// After Reset(), the next call to Next() returns 1.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
