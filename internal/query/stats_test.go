package query

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/forkknife/internal/menu"
)

func TestComputeStatistics_Empty(t *testing.T) {
	stats := ComputeStatistics(menu.Snapshot{})

	assert.Equal(t, 0, stats.TotalCount)
	require.Len(t, stats.AveragePriceByCourse, 3)
	for _, c := range menu.Courses() {
		assert.Equal(t, "0.00", stats.Format(c))
		a, ok := stats.Average(c)
		require.True(t, ok)
		assert.Equal(t, 0, a.Count)
		assert.True(t, a.Average.IsZero())
	}
}

func TestComputeStatistics_CourseOrder(t *testing.T) {
	stats := ComputeStatistics(seededStore(t).Snapshot())

	var got []menu.Course
	for _, a := range stats.AveragePriceByCourse {
		got = append(got, a.Course)
	}
	assert.Equal(t, menu.Courses(), got)
}

func TestComputeStatistics_EmptyCourseIsZero(t *testing.T) {
	s, err := menu.NewStore(menu.WithSeed(
		menu.Candidate{Name: "Lamb Shank", Description: "Slow braised", Course: "Mains", Price: "210"},
	))
	require.NoError(t, err)

	stats := ComputeStatistics(s.Snapshot())
	assert.Equal(t, 1, stats.TotalCount)
	assert.Equal(t, "0.00", stats.Format(menu.Starters))
	assert.Equal(t, "210.00", stats.Format(menu.Mains))
	assert.Equal(t, "0.00", stats.Format(menu.Desserts))
}

func TestComputeStatistics_RoundHalfUp(t *testing.T) {
	tests := []struct {
		name   string
		prices []string
		want   string
	}{
		{name: "thirds", prices: []string{"10", "10", "13.33"}, want: "11.11"},
		{name: "exact half cent rounds up", prices: []string{"0.01", "0.02"}, want: "0.02"},
		{name: "half up not half even", prices: []string{"0.125"}, want: "0.13"},
		{name: "no binary drift", prices: []string{"0.1", "0.2"}, want: "0.15"},
		{name: "repeating", prices: []string{"1", "1", "0"}, want: "0.67"},
		{name: "largest prices", prices: []string{"999999999999999.99", "999999999999999.99"}, want: "999999999999999.99"},
		{name: "largest integer part", prices: []string{"999999999999999", "999999999999998"}, want: "999999999999998.50"},
		{name: "finest fraction", prices: []string{"0.004999999999999", "0.005000000000001"}, want: "0.01"},
		{name: "just below half cent", prices: []string{"0.004999999999999", "0.004999999999999", "0.005000000000001"}, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seed []menu.Candidate
			for _, p := range tt.prices {
				seed = append(seed, menu.Candidate{Name: "x", Description: "x", Course: "Mains", Price: p})
			}
			s, err := menu.NewStore(menu.WithSeed(seed...))
			require.NoError(t, err)

			assert.Equal(t, tt.want, ComputeStatistics(s.Snapshot()).Format(menu.Mains))
		})
	}
}

func TestComputeStatistics_ManyLargePricesStayExact(t *testing.T) {
	seed := make([]menu.Candidate, 0, 1000)
	for range 1000 {
		seed = append(seed, menu.Candidate{Name: "x", Description: "x", Course: "Mains", Price: "999999999999999.999999999999999"})
	}
	s, err := menu.NewStore(menu.WithSeed(seed...))
	require.NoError(t, err)

	a, ok := ComputeStatistics(s.Snapshot()).Average(menu.Mains)
	require.True(t, ok)
	assert.Equal(t, 1000, a.Count)
	want, _, err := apd.NewFromString("999999999999999.999999999999999")
	require.NoError(t, err)
	assert.Zero(t, a.Average.Cmp(want), "average %s", a.Average.Text('f'))
	assert.Equal(t, "1000000000000000.00", a.Display)
}

func TestFormat_UnknownCourse(t *testing.T) {
	stats := ComputeStatistics(seededStore(t).Snapshot())
	assert.Equal(t, "0.00", stats.Format(menu.Course("Drinks")))
}

// TestEndToEnd walks the seed, add, remove sequence and checks the
// statistics after each step.
func TestEndToEnd(t *testing.T) {
	s := seededStore(t)

	stats := ComputeStatistics(s.Snapshot())
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, "85.00", stats.Format(menu.Starters))
	assert.Equal(t, "210.00", stats.Format(menu.Mains))
	assert.Equal(t, "95.00", stats.Format(menu.Desserts))

	snap, _, err := s.Add(menu.Candidate{Name: "Soup", Description: "Hot", Course: "Starters", Price: "15"})
	require.NoError(t, err)
	stats = ComputeStatistics(snap)
	assert.Equal(t, 4, stats.TotalCount)
	assert.Equal(t, "50.00", stats.Format(menu.Starters))

	snap = s.Remove("1")
	stats = ComputeStatistics(snap)
	assert.Equal(t, 3, stats.TotalCount)
	assert.Equal(t, "15.00", stats.Format(menu.Starters))
	assert.Equal(t, "210.00", stats.Format(menu.Mains))
}
