// Package engine serialises writes to a menu.Store.
//
// ARCHITECTURE:
//
// Single-Writer Event Loop:
// Callers submit add and remove intents from any goroutine. Writer.Run
// applies them one at a time in a single goroutine, so the store sees
// exactly one writer and every outcome has a well-defined place in the
// history.
//
// Intent Processing Flow:
// 1. Add/Remove enqueue an Intent on the FIFO queue
// 2. Run dequeues intents one at a time
// 3. apply stamps the intent with Clock.Next() and calls the store
// 4. The Outcome (new snapshot, created dish, or rejection) is sent back
//
// Readers never go through the writer: Writer.Snapshot and Store.Snapshot
// return the last published snapshot without blocking.
//
// CRITICAL PATTERNS:
//
// CP-2: Logical Clock
// Every applied intent is stamped with a monotonic seq from Clock.Next().
// NEVER use wall-clock timestamps for ordering.
//
// Shutdown:
// Close stops accepting intents; Run applies what is queued and returns.
// Cancelling Run's context answers queued intents with ErrClosed.
package engine
