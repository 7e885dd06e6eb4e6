package engine

import "sync"

// intentQueue is a thread-safe FIFO queue for intents.
//
// The queue is unbounded so that submitters never block on a slow writer.
// It uses a channel for signaling to enable context-aware waiting
// in the Run loop.
type intentQueue struct {
	mu      sync.Mutex
	intents []Intent
	closed  bool
	signal  chan struct{} // Signals intent availability (buffered, size 1)
}

// newIntentQueue creates an empty intent queue.
func newIntentQueue() *intentQueue {
	return &intentQueue{
		intents: make([]Intent, 0, 16),
		signal:  make(chan struct{}, 1),
	}
}

// Enqueue adds an intent to the back of the queue.
// Thread-safe: may be called from any goroutine.
// Returns false if the queue is closed.
func (q *intentQueue) Enqueue(in Intent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.intents = append(q.intents, in)

	// Non-blocking: the buffer of 1 coalesces multiple signals.
	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// TryDequeue removes the front intent without blocking.
// Returns (Intent{}, false) if the queue is empty.
func (q *intentQueue) TryDequeue() (Intent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.intents) == 0 {
		return Intent{}, false
	}

	in := q.intents[0]

	// Nil out the slot so the reply channel can be collected.
	q.intents[0] = Intent{}

	if len(q.intents) == 1 {
		q.intents = q.intents[:0]
	} else {
		q.intents = q.intents[1:]
	}

	return in, true
}

// Wait returns a channel that signals when intents may be available.
// The channel is closed when the queue is closed.
func (q *intentQueue) Wait() <-chan struct{} {
	return q.signal
}

// Len returns the current queue length.
func (q *intentQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.intents)
}

// Drained reports whether the queue is closed and empty.
func (q *intentQueue) Drained() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && len(q.intents) == 0
}

// Close signals that no more intents will be enqueued.
// Wakes any blocked waiters by closing the signal channel.
func (q *intentQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}
