package menu

import "testing"

// seedCandidates mirrors the default catalogue: one dish per course.
func seedCandidates() []Candidate {
	return []Candidate{
		{Name: "Garlic Bread", Description: "Toasted ciabatta", Course: "Starters", Price: "85"},
		{Name: "Lamb Shank", Description: "Slow braised", Course: "Mains", Price: "210"},
		{Name: "Malva Pudding", Description: "With custard", Course: "Desserts", Price: "95"},
	}
}

// createTestStore creates a seeded store with counter IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(WithSeed(seedCandidates()...))
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	return s
}
