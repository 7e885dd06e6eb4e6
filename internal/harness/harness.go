package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/roach88/forkknife/internal/catalog"
	"github.com/roach88/forkknife/internal/engine"
	"github.com/roach88/forkknife/internal/menu"
	"github.com/roach88/forkknife/internal/query"
	"github.com/roach88/forkknife/internal/testutil"
)

// Harness executes one script against a fresh store.
type Harness struct {
	writer *engine.Writer
	logger *slog.Logger
}

// Option configures a run.
type Option func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithLogger routes store and writer logs to l. Default: discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		c.logger = l
	}
}

// Run executes a script and returns the result.
//
// Execution flow:
// 1. Load the script's catalogue (or the default one)
// 2. Build a store with deterministic IDs and start a writer
// 3. Execute steps, writes through the writer and reads from snapshots
// 4. Check each step's expectations
//
// An error is returned only when the run itself cannot proceed
// (bad catalogue, cancelled context); failed expectations are reported
// through Result.
func Run(ctx context.Context, script *Script, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	cat := catalog.Default()
	if script.Menu != "" {
		var err error
		cat, err = catalog.Load(script.Menu)
		if err != nil {
			return nil, fmt.Errorf("loading menu: %w", err)
		}
	}

	storeOpts := append(cat.StoreOptions(),
		menu.WithIDGenerator(testutil.NewDeterministicClock()),
		menu.WithLogger(cfg.logger),
	)
	st, err := menu.NewStore(storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}

	clock := engine.NewClock()
	h := &Harness{
		writer: engine.New(st, engine.WithLogger(cfg.logger), engine.WithClock(clock)),
		logger: cfg.logger,
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- h.writer.Run(runCtx) }()
	defer func() {
		h.writer.Close()
		<-done
		cancel()
	}()

	result := NewResult()
	for i, step := range script.Steps {
		event, err := h.executeStep(runCtx, i, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Action(), err)
		}
		result.Trace = append(result.Trace, event)
		checkExpect(result, event, step.Expect)
	}

	result.Writes = clock.Current()
	return result, nil
}

// executeStep runs one step and returns its trace event.
func (h *Harness) executeStep(ctx context.Context, idx int, step Step) (TraceEvent, error) {
	event := TraceEvent{Step: idx, Action: step.Action()}

	switch event.Action {
	case ActionAdd:
		out, err := h.writer.Add(ctx, menu.Candidate{
			Name:        step.Add.Name,
			Description: step.Add.Description,
			Course:      step.Add.Course,
			Price:       string(step.Add.Price),
		})
		var invalid *menu.InvalidInputError
		switch {
		case err == nil:
			event.DishID = out.Dish.ID
		case errors.As(err, &invalid):
			event.Rejected = invalid.Fields()
		default:
			return event, err
		}
		event.Seq = out.Seq
		event.IDs = out.Snapshot.IDs()

	case ActionRemove:
		id := string(*step.Remove)
		out, err := h.writer.Remove(ctx, id)
		if err != nil {
			return event, err
		}
		event.Seq = out.Seq
		event.DishID = id
		event.IDs = out.Snapshot.IDs()

	case ActionFilter:
		course := step.Filter.Course
		if course == "" {
			course = query.AllCourses
		}
		view := query.Select(h.writer.Snapshot(), query.And{Predicates: []query.Predicate{
			query.NameContains{Query: step.Filter.Name},
			query.CourseIs{Course: course},
		}})
		event.IDs = dishIDs(view)

	case ActionStats:
		snap := h.writer.Snapshot()
		stats := query.ComputeStatistics(snap)
		event.IDs = snap.IDs()
		event.Averages = make(map[string]string, len(stats.AveragePriceByCourse))
		for _, a := range stats.AveragePriceByCourse {
			event.Averages[string(a.Course)] = a.Display
		}
	}

	h.logger.Debug("step executed", "step", idx, "action", event.Action, "view", len(event.IDs))
	return event, nil
}

// checkExpect compares an event against its expectations.
func checkExpect(result *Result, event TraceEvent, exp *Expect) {
	if exp == nil {
		return
	}
	prefix := fmt.Sprintf("step %d (%s)", event.Step, event.Action)

	if exp.Count != nil && *exp.Count != len(event.IDs) {
		result.AddError(fmt.Sprintf("%s: count: expected %d, got %d", prefix, *exp.Count, len(event.IDs)))
	}
	if exp.IDs != nil && !slices.Equal(exp.IDs, event.IDs) {
		result.AddError(fmt.Sprintf("%s: ids: expected %v, got %v", prefix, exp.IDs, event.IDs))
	}
	if exp.Rejected != nil && !slices.Equal(exp.Rejected, event.Rejected) {
		result.AddError(fmt.Sprintf("%s: rejected: expected %v, got %v", prefix, exp.Rejected, event.Rejected))
	}
	if len(exp.Averages) > 0 {
		if event.Averages == nil {
			result.AddError(fmt.Sprintf("%s: averages are only reported by stats steps", prefix))
			return
		}
		for _, c := range menu.Courses() {
			want, ok := exp.Averages[string(c)]
			if !ok {
				continue
			}
			if got := event.Averages[string(c)]; got != want {
				result.AddError(fmt.Sprintf("%s: average %s: expected %s, got %s", prefix, c, want, got))
			}
		}
		for _, course := range slices.Sorted(maps.Keys(exp.Averages)) {
			if !menu.Course(course).Valid() {
				result.AddError(fmt.Sprintf("%s: averages: unknown course %q", prefix, course))
			}
		}
	}
}

func dishIDs(dishes []menu.Dish) []string {
	out := make([]string, len(dishes))
	for i, d := range dishes {
		out[i] = d.ID
	}
	return out
}
