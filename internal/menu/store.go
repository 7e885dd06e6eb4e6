package menu

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Store owns the authoritative menu and is its only mutation surface.
//
// Thread-safety model:
//   - Snapshot(): safe from any goroutine, never blocks on writers
//   - Add()/Remove(): serialised by an internal mutex; in an application
//     they should be driven by a single owner (see engine.Writer)
//
// INVARIANTS:
//   - IDs within the current snapshot are unique
//   - An ID is issued at most once, even after its dish is removed
//   - A published snapshot is never modified
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	ids     IDGenerator
	logger  *slog.Logger
	issued  map[string]struct{} // every ID handed out, removed or not
}

// StoreOption configures a Store.
type StoreOption func(*storeConfig)

type storeConfig struct {
	ids    IDGenerator
	logger *slog.Logger
	seed   []Candidate
}

// WithIDGenerator sets the ID source. Default: NewCounterIDs().
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(c *storeConfig) {
		c.ids = g
	}
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) StoreOption {
	return func(c *storeConfig) {
		c.logger = l
	}
}

// WithSeed loads initial dishes. Unlike Add, seeds keep the given order:
// the first candidate is listed first and receives the first ID.
func WithSeed(candidates ...Candidate) StoreOption {
	return func(c *storeConfig) {
		c.seed = append(c.seed, candidates...)
	}
}

// NewStore creates a store. It fails if any seed candidate is invalid.
func NewStore(opts ...StoreOption) (*Store, error) {
	cfg := storeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ids == nil {
		cfg.ids = NewCounterIDs()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	s := &Store{ids: cfg.ids, logger: cfg.logger, issued: make(map[string]struct{})}

	dishes := make([]Dish, 0, len(cfg.seed))
	for i, c := range cfg.seed {
		d, err := c.Validate()
		if err != nil {
			return nil, fmt.Errorf("seed dish %d: %w", i, err)
		}
		d.ID = s.nextUniqueID()
		dishes = append(dishes, d)
	}

	snap := newSnapshot(dishes)
	s.current.Store(&snap)
	return s, nil
}

// Snapshot returns the current menu.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Add validates c, prepends the new dish and returns the new snapshot.
// On validation failure nothing changes: the current snapshot is returned
// with an *InvalidInputError.
func (s *Store) Add(c Candidate) (Snapshot, Dish, error) {
	d, err := c.Validate()
	if err != nil {
		s.logger.Warn("dish rejected", "error", err)
		return s.Snapshot(), Dish{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = s.nextUniqueID()
	next := s.Snapshot().prepend(d)
	s.current.Store(&next)

	s.logger.Debug("dish added",
		"id", d.ID,
		"course", d.Course,
		"count", next.Len(),
	)
	return next, d, nil
}

// Remove deletes the dish with the given ID. Removing an unknown ID is a
// no-op that returns the current snapshot.
func (s *Store) Remove(id string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.Snapshot()
	i := cur.indexOf(id)
	if i < 0 {
		s.logger.Debug("remove skipped, no such dish", "id", id)
		return cur
	}

	next := cur.without(i)
	s.current.Store(&next)

	s.logger.Debug("dish removed", "id", id, "count", next.Len())
	return next
}

// nextUniqueID draws from the generator until it yields an ID this store
// has never issued. Caller must hold s.mu (or be NewStore).
func (s *Store) nextUniqueID() string {
	for {
		id := s.ids.NextID()
		if _, seen := s.issued[id]; !seen {
			s.issued[id] = struct{}{}
			return id
		}
		s.logger.Debug("generator repeated an issued id", "id", id)
	}
}
