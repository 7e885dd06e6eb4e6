package harness

// TraceEvent records what one step did.
type TraceEvent struct {
	Step   int    `json:"step"`
	Action string `json:"action"`

	// Seq is the writer's logical clock for add/remove; 0 for queries.
	Seq int64 `json:"seq,omitempty"`

	// DishID is the ID an add created, or the ID a remove targeted.
	DishID string `json:"dish_id,omitempty"`

	// Rejected lists fields of a rejected add.
	Rejected []string `json:"rejected,omitempty"`

	// IDs is the step's view: the full snapshot after a write or stats,
	// the filtered dishes after a filter.
	IDs []string `json:"ids"`

	// Averages holds two-decimal course averages for stats steps.
	Averages map[string]string `json:"averages,omitempty"`
}

// Result is the outcome of a script run.
type Result struct {
	// Pass is true if every expectation held.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Writes is the number of intents the writer applied, rejected adds
	// included.
	Writes int64 `json:"writes"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
