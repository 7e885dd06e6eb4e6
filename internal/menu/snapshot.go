package menu

// Snapshot is an immutable, point-in-time view of the menu.
// Dishes are ordered newest first. The zero value is an empty menu.
//
// A Snapshot never changes after it is returned: the store builds a new
// backing slice for every write, so readers may iterate while a writer runs.
type Snapshot struct {
	dishes []Dish
}

func newSnapshot(dishes []Dish) Snapshot {
	return Snapshot{dishes: dishes}
}

// Len returns the number of dishes.
func (s Snapshot) Len() int { return len(s.dishes) }

// At returns the i-th dish. Panics if i is out of range.
func (s Snapshot) At(i int) Dish { return s.dishes[i] }

// Dishes returns a copy of the dishes in snapshot order.
func (s Snapshot) Dishes() []Dish {
	out := make([]Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

// Lookup finds a dish by ID.
func (s Snapshot) Lookup(id string) (Dish, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return Dish{}, false
	}
	return s.dishes[i], true
}

// IDs returns dish IDs in snapshot order.
func (s Snapshot) IDs() []string {
	out := make([]string, len(s.dishes))
	for i, d := range s.dishes {
		out[i] = d.ID
	}
	return out
}

func (s Snapshot) indexOf(id string) int {
	for i, d := range s.dishes {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// prepend returns a new snapshot with d first.
func (s Snapshot) prepend(d Dish) Snapshot {
	next := make([]Dish, 0, len(s.dishes)+1)
	next = append(next, d)
	next = append(next, s.dishes...)
	return newSnapshot(next)
}

// without returns a new snapshot lacking the dish at index i.
func (s Snapshot) without(i int) Snapshot {
	next := make([]Dish, 0, len(s.dishes)-1)
	next = append(next, s.dishes[:i]...)
	next = append(next, s.dishes[i+1:]...)
	return newSnapshot(next)
}
