package engine

import (
	"fmt"

	"github.com/roach88/forkknife/internal/menu"
)

// IntentKind distinguishes the two writes a menu accepts.
type IntentKind int

const (
	// IntentAdd asks the store to add a candidate dish.
	IntentAdd IntentKind = iota + 1
	// IntentRemove asks the store to remove a dish by ID.
	IntentRemove
)

func (k IntentKind) String() string {
	switch k {
	case IntentAdd:
		return "add"
	case IntentRemove:
		return "remove"
	default:
		return fmt.Sprintf("IntentKind(%d)", int(k))
	}
}

// Intent is a queued write. Exactly one of Candidate or ID is meaningful,
// depending on Kind.
type Intent struct {
	Kind      IntentKind
	Candidate menu.Candidate
	ID        string

	reply chan Outcome // buffered, size 1: the writer never blocks on it
}

// Outcome reports what applying an intent did.
type Outcome struct {
	// Seq is the logical clock value the intent was applied at.
	// Zero if the intent was never applied.
	Seq int64

	// Kind echoes the intent.
	Kind IntentKind

	// Snapshot is the menu after the intent.
	Snapshot menu.Snapshot

	// Dish is the dish created by an add. Empty otherwise.
	Dish menu.Dish

	// Err is non-nil when an add was rejected or the writer stopped first.
	Err error
}
