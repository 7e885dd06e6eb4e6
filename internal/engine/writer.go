package engine

import (
	"context"
	"log/slog"

	"github.com/roach88/forkknife/internal/menu"
)

// Writer is the single logical owner of a menu.Store.
//
// Presentation code on any goroutine submits add/remove intents; the Run
// loop applies them one at a time in FIFO order. Reads never go through
// the queue: Snapshot() reads the store directly.
//
// Thread-safety model:
//   - Add()/Remove()/Close()/Snapshot(): safe from any goroutine
//   - Run(): must be called from exactly one goroutine
//
// INVARIANTS:
//   - At most one goroutine mutates the store (the Run goroutine)
//   - Outcome.Seq is strictly increasing in application order
type Writer struct {
	store   *menu.Store
	clock   *Clock
	queue   *intentQueue
	logger  *slog.Logger
	onApply []func(Outcome)
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the writer's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = l
	}
}

// WithClock sets the logical clock. Default: NewClock().
func WithClock(c *Clock) Option {
	return func(w *Writer) {
		w.clock = c
	}
}

// OnApply registers fn to be called from the Run goroutine after every
// applied intent, rejected adds included. fn must not block.
func OnApply(fn func(Outcome)) Option {
	return func(w *Writer) {
		w.onApply = append(w.onApply, fn)
	}
}

// New creates a writer for store. Call Run to start applying intents.
func New(store *menu.Store, opts ...Option) *Writer {
	w := &Writer{
		store:  store,
		clock:  NewClock(),
		queue:  newIntentQueue(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Snapshot returns the store's current menu.
func (w *Writer) Snapshot() menu.Snapshot {
	return w.store.Snapshot()
}

// Add submits a candidate and waits for it to be applied.
// The returned error is the outcome's Err (e.g. *menu.InvalidInputError),
// ErrClosed, or ctx.Err().
func (w *Writer) Add(ctx context.Context, c menu.Candidate) (Outcome, error) {
	return w.submit(ctx, Intent{Kind: IntentAdd, Candidate: c})
}

// Remove submits a removal and waits for it to be applied.
// Removing an unknown ID succeeds and leaves the menu unchanged.
func (w *Writer) Remove(ctx context.Context, id string) (Outcome, error) {
	return w.submit(ctx, Intent{Kind: IntentRemove, ID: id})
}

func (w *Writer) submit(ctx context.Context, in Intent) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	in.reply = make(chan Outcome, 1)
	if !w.queue.Enqueue(in) {
		return Outcome{Kind: in.Kind}, ErrClosed
	}

	select {
	case out := <-in.reply:
		return out, out.Err
	case <-ctx.Done():
		// The intent may still be applied; the caller has stopped waiting.
		return Outcome{Kind: in.Kind}, ctx.Err()
	}
}

// Close stops accepting intents. Run applies what is already queued and
// then returns.
func (w *Writer) Close() {
	w.queue.Close()
}

// Run starts the single-writer loop.
// Blocks until ctx is cancelled or Close() is called and the queue drains.
//
// CRITICAL: Must be called from exactly ONE goroutine.
//
// On cancellation, intents still queued are answered with ErrClosed.
func (w *Writer) Run(ctx context.Context) error {
	w.logger.Info("writer starting", "dishes", w.store.Snapshot().Len())

	for {
		if in, ok := w.queue.TryDequeue(); ok {
			w.apply(in)
			continue
		}

		select {
		case <-ctx.Done():
			w.logger.Info("writer stopping: context cancelled")
			w.queue.Close()
			w.rejectPending()
			return ctx.Err()

		case <-w.queue.Wait():
			// The signal channel closes with the queue, so this fires
			// immediately once closed.
			if w.queue.Drained() {
				w.logger.Info("writer stopping: queue closed")
				return nil
			}
		}
	}
}

// apply runs one intent against the store.
// CRITICAL: Called only from Run() goroutine - single-writer guarantee.
func (w *Writer) apply(in Intent) {
	out := Outcome{Seq: w.clock.Next(), Kind: in.Kind}

	switch in.Kind {
	case IntentAdd:
		out.Snapshot, out.Dish, out.Err = w.store.Add(in.Candidate)
	case IntentRemove:
		out.Snapshot = w.store.Remove(in.ID)
	default:
		out.Snapshot = w.store.Snapshot()
		w.logger.Warn("unknown intent ignored", "kind", in.Kind)
	}

	w.logger.Debug("intent applied",
		"seq", out.Seq,
		"kind", in.Kind,
		"dish_id", out.Dish.ID,
		"remove_id", in.ID,
		"count", out.Snapshot.Len(),
		"rejected", out.Err != nil,
	)

	for _, fn := range w.onApply {
		fn(out)
	}
	in.reply <- out
}

// rejectPending answers every queued intent with ErrClosed.
func (w *Writer) rejectPending() {
	for {
		in, ok := w.queue.TryDequeue()
		if !ok {
			return
		}
		in.reply <- Outcome{Kind: in.Kind, Snapshot: w.store.Snapshot(), Err: ErrClosed}
	}
}
