package menu

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues dish IDs. Implementations must never return the same
// ID twice for the lifetime of a store.
type IDGenerator interface {
	NextID() string
}

// CounterIDs issues "1", "2", "3", ... from a monotonic logical counter.
//
// Thread-safety: CounterIDs is safe for concurrent use (atomic operations).
type CounterIDs struct {
	seq atomic.Int64
}

// NewCounterIDs creates a counter whose first ID is "1".
func NewCounterIDs() *CounterIDs {
	return &CounterIDs{}
}

// NextID returns the next counter value as a decimal string.
func (c *CounterIDs) NextID() string {
	return strconv.FormatInt(c.seq.Add(1), 10)
}

// UUIDv7IDs issues time-sortable UUIDv7 strings.
//
// Thread-safety: UUIDv7IDs is stateless and safe for concurrent use.
type UUIDv7IDs struct{}

// NextID creates a new UUIDv7 in hyphenated form.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7IDs) NextID() string {
	return uuid.Must(uuid.NewV7()).String()
}
