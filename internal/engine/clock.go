package engine

import "sync/atomic"

// Clock is a monotonic logical clock that stamps applied intents.
//
// Every intent the writer applies gets a strictly increasing seq, so an
// observer can order outcomes without wall-clock time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations).
// The writer's single-owner design means only the Run goroutine calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
