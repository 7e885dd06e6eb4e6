package menu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/forkknife/internal/testutil"
)

func TestNewStore_SeedOrderAndIDs(t *testing.T) {
	s := createTestStore(t)

	snap := s.Snapshot()
	require.Equal(t, 3, snap.Len())
	assert.Equal(t, []string{"1", "2", "3"}, snap.IDs())
	assert.Equal(t, "Garlic Bread", snap.At(0).Name)
	assert.Equal(t, Desserts, snap.At(2).Course)
}

func TestNewStore_Empty(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Snapshot().Len())
	assert.Same(t, slog.Default(), s.logger, "default logger")
}

func TestNewStore_InvalidSeed(t *testing.T) {
	_, err := NewStore(WithSeed(Candidate{Name: "Soup", Description: "Hot", Price: "abc"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "seed dish 0")
}

func TestAdd_Prepends(t *testing.T) {
	s := createTestStore(t)

	snap, d, err := s.Add(Candidate{Name: "Soup", Description: "Hot", Course: "Starters", Price: "15"})
	require.NoError(t, err)
	assert.Equal(t, "4", d.ID)
	assert.Equal(t, []string{"4", "1", "2", "3"}, snap.IDs())

	snap, d, err = s.Add(Candidate{Name: "Steak", Description: "Rare", Course: "Mains", Price: "180"})
	require.NoError(t, err)
	assert.Equal(t, "5", d.ID)
	assert.Equal(t, []string{"5", "4", "1", "2", "3"}, snap.IDs())
	assert.Equal(t, snap.IDs(), s.Snapshot().IDs())
}

func TestAdd_DefaultCourse(t *testing.T) {
	s := createTestStore(t)

	_, d, err := s.Add(Candidate{Name: "Olives", Description: "Marinated", Price: "40"})
	require.NoError(t, err)
	assert.Equal(t, Starters, d.Course)
}

func TestAdd_CanonicalCourseSpelling(t *testing.T) {
	s := createTestStore(t)

	_, d, err := s.Add(Candidate{Name: "Tart", Description: "Lemon", Course: " desserts ", Price: "60"})
	require.NoError(t, err)
	assert.Equal(t, Desserts, d.Course)
}

func TestAdd_RejectsWithoutMutation(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		fields    []string
		codes     []ProblemCode
	}{
		{
			name:      "missing name",
			candidate: Candidate{Description: "Hot", Price: "15"},
			fields:    []string{"name"},
			codes:     []ProblemCode{ProblemEmpty},
		},
		{
			name:      "blank description",
			candidate: Candidate{Name: "Soup", Description: "   ", Price: "15"},
			fields:    []string{"description"},
			codes:     []ProblemCode{ProblemEmpty},
		},
		{
			name:      "missing price",
			candidate: Candidate{Name: "Soup", Description: "Hot"},
			fields:    []string{"price"},
			codes:     []ProblemCode{ProblemEmpty},
		},
		{
			name:      "unparsable price",
			candidate: Candidate{Name: "Soup", Description: "Hot", Price: "15abc"},
			fields:    []string{"price"},
			codes:     []ProblemCode{ProblemInvalidPrice},
		},
		{
			name:      "negative price",
			candidate: Candidate{Name: "Soup", Description: "Hot", Price: "-1"},
			fields:    []string{"price"},
			codes:     []ProblemCode{ProblemNegativePrice},
		},
		{
			name:      "infinite price",
			candidate: Candidate{Name: "Soup", Description: "Hot", Price: "Infinity"},
			fields:    []string{"price"},
			codes:     []ProblemCode{ProblemInvalidPrice},
		},
		{
			name:      "unknown course",
			candidate: Candidate{Name: "Soup", Description: "Hot", Course: "Drinks", Price: "15"},
			fields:    []string{"course"},
			codes:     []ProblemCode{ProblemUnknownCourse},
		},
		{
			name:      "everything missing",
			candidate: Candidate{},
			fields:    []string{"name", "description", "price"},
			codes:     []ProblemCode{ProblemEmpty, ProblemEmpty, ProblemEmpty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestStore(t)
			before := s.Snapshot()

			snap, d, err := s.Add(tt.candidate)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.True(t, IsInvalidInput(err))
			assert.Empty(t, d.ID)

			var ie *InvalidInputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tt.fields, ie.Fields())
			for i, code := range tt.codes {
				assert.Equal(t, code, ie.Problems[i].Code)
			}

			assert.Equal(t, before.IDs(), snap.IDs())
			assert.Equal(t, before.IDs(), s.Snapshot().IDs())
		})
	}
}

func TestAdd_RejectedDoesNotConsumeID(t *testing.T) {
	s := createTestStore(t)

	_, _, err := s.Add(Candidate{Name: "Soup"})
	require.Error(t, err)

	_, d, err := s.Add(Candidate{Name: "Soup", Description: "Hot", Price: "15"})
	require.NoError(t, err)
	assert.Equal(t, "4", d.ID)
}

func TestRemove_Idempotent(t *testing.T) {
	s := createTestStore(t)

	once := s.Remove("2")
	assert.Equal(t, []string{"1", "3"}, once.IDs())

	twice := s.Remove("2")
	assert.Equal(t, once.IDs(), twice.IDs())
}

func TestRemove_UnknownIsNoop(t *testing.T) {
	s := createTestStore(t)

	snap := s.Remove("does-not-exist")
	assert.Equal(t, []string{"1", "2", "3"}, snap.IDs())
}

func TestRemove_IDsNeverReused(t *testing.T) {
	s := createTestStore(t)

	s.Remove("3")
	_, d, err := s.Add(Candidate{Name: "Soup", Description: "Hot", Price: "15"})
	require.NoError(t, err)
	assert.Equal(t, "4", d.ID)
}

func TestSnapshot_NotAffectedByLaterWrites(t *testing.T) {
	s := createTestStore(t)

	old := s.Snapshot()
	oldDishes := old.Dishes()

	s.Add(Candidate{Name: "Soup", Description: "Hot", Price: "15"})
	s.Remove("1")

	assert.Equal(t, []string{"1", "2", "3"}, old.IDs())
	assert.Equal(t, oldDishes, old.Dishes())
}

func TestSnapshot_DishesReturnsCopy(t *testing.T) {
	s := createTestStore(t)
	snap := s.Snapshot()

	dishes := snap.Dishes()
	dishes[0].Name = "changed"

	assert.Equal(t, "Garlic Bread", snap.At(0).Name)
}

func TestSnapshot_Lookup(t *testing.T) {
	s := createTestStore(t)

	d, ok := s.Snapshot().Lookup("2")
	require.True(t, ok)
	assert.Equal(t, "Lamb Shank", d.Name)

	_, ok = s.Snapshot().Lookup("9")
	assert.False(t, ok)
}

func TestStore_UniqueIDsUnderConcurrentWriters(t *testing.T) {
	s := createTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.Add(Candidate{Name: fmt.Sprintf("Dish %d", i), Description: "x", Price: "1"})
			assert.NoError(t, err)
			_ = s.Snapshot().Len()
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Equal(t, 53, snap.Len())
	seen := make(map[string]bool)
	for _, id := range snap.IDs() {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestStore_SkipsCollidingIDs(t *testing.T) {
	s, err := NewStore(
		WithIDGenerator(testutil.NewFixedIDs("a", "a", "b")),
		WithSeed(Candidate{Name: "Soup", Description: "Hot", Price: "15"}),
	)
	require.NoError(t, err)

	_, d, err := s.Add(Candidate{Name: "Tea", Description: "Rooibos", Price: "20"})
	require.NoError(t, err)
	assert.Equal(t, "b", d.ID)
}

func TestStore_RemovedIDNotReissued(t *testing.T) {
	s, err := NewStore(
		WithIDGenerator(testutil.NewFixedIDs("a", "b", "a", "c")),
		WithSeed(Candidate{Name: "Soup", Description: "Hot", Price: "15"}),
	)
	require.NoError(t, err)

	_, b, err := s.Add(Candidate{Name: "Tea", Description: "Rooibos", Price: "20"})
	require.NoError(t, err)
	assert.Equal(t, "b", b.ID)

	s.Remove("a")

	_, d, err := s.Add(Candidate{Name: "Pie", Description: "Apple", Price: "30"})
	require.NoError(t, err)
	assert.Equal(t, "c", d.ID)
	assert.Equal(t, []string{"c", "b"}, s.Snapshot().IDs())
}

func TestNewStore_SeedIDsUnique(t *testing.T) {
	s, err := NewStore(
		WithIDGenerator(testutil.NewFixedIDs("a", "a", "b")),
		WithSeed(
			Candidate{Name: "Soup", Description: "Hot", Price: "15"},
			Candidate{Name: "Tea", Description: "Rooibos", Price: "20"},
		),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, s.Snapshot().IDs())
}

func TestStore_UUIDv7IDs(t *testing.T) {
	s, err := NewStore(WithIDGenerator(UUIDv7IDs{}), WithSeed(seedCandidates()...))
	require.NoError(t, err)

	ids := s.Snapshot().IDs()
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.Len(t, id, 36)
	}
	assert.NotEqual(t, ids[0], ids[1])
}
