package engine

import "errors"

// ErrClosed is returned when an intent is submitted to, or still queued in,
// a writer that has stopped.
var ErrClosed = errors.New("writer closed")

// IsClosed returns true if err is or wraps ErrClosed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
