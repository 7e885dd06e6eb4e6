package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/forkknife/internal/catalog"
)

// Script defines a scripted menu session.
type Script struct {
	// Name uniquely identifies this script; it names the golden file.
	Name string `yaml:"name"`

	// Description explains what this script demonstrates.
	Description string `yaml:"description"`

	// Menu is an optional catalogue path, relative to the script file.
	// If empty, the built-in default catalogue seeds the store.
	Menu string `yaml:"menu,omitempty"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps"`
}

// Step is one intent or query. Exactly one of Add, Remove, Filter or Stats
// must be set.
type Step struct {
	Add    *DishInput          `yaml:"add,omitempty"`
	Remove *catalog.ScalarText `yaml:"remove,omitempty"`
	Filter *FilterInput        `yaml:"filter,omitempty"`
	Stats  bool                `yaml:"stats,omitempty"`

	// Expect is checked against the step's trace event. Nil means no checks.
	Expect *Expect `yaml:"expect,omitempty"`
}

// DishInput is a candidate dish as written in a script.
type DishInput struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Course      string             `yaml:"course"`
	Price       catalog.ScalarText `yaml:"price"`
}

// FilterInput selects a view of the current snapshot.
// An empty Course means "All".
type FilterInput struct {
	Name   string `yaml:"name"`
	Course string `yaml:"course"`
}

// Expect lists the checks for one step. Unset fields are not checked.
type Expect struct {
	// Count is the expected number of dishes in the step's view.
	Count *int `yaml:"count,omitempty"`

	// IDs is the expected dish IDs of the step's view, in order.
	IDs []string `yaml:"ids,omitempty"`

	// Rejected lists the fields an add is expected to reject.
	Rejected []string `yaml:"rejected,omitempty"`

	// Averages maps course name to the expected two-decimal average.
	Averages map[string]string `yaml:"averages,omitempty"`
}

// Action names used in traces.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionFilter = "filter"
	ActionStats  = "stats"
)

// Action returns the step's action name, or "" if the step sets none.
func (s Step) Action() string {
	switch {
	case s.Add != nil:
		return ActionAdd
	case s.Remove != nil:
		return ActionRemove
	case s.Filter != nil:
		return ActionFilter
	case s.Stats:
		return ActionStats
	}
	return ""
}

func (s Step) actionCount() int {
	n := 0
	if s.Add != nil {
		n++
	}
	if s.Remove != nil {
		n++
	}
	if s.Filter != nil {
		n++
	}
	if s.Stats {
		n++
	}
	return n
}

// LoadScript reads and parses a script YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
// A relative Menu path is resolved against the script's directory.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}

	script, err := ParseScript(data)
	if err != nil {
		return nil, err
	}

	if script.Menu != "" && !filepath.IsAbs(script.Menu) {
		script.Menu = filepath.Join(filepath.Dir(path), script.Menu)
	}
	return script, nil
}

// ParseScript parses script YAML with strict field validation.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&script); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScript(&script); err != nil {
		return nil, fmt.Errorf("invalid script: %w", err)
	}
	return &script, nil
}

// validateScript checks that required fields are present and valid.
func validateScript(s *Script) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		switch step.actionCount() {
		case 0:
			return fmt.Errorf("steps[%d]: one of add, remove, filter, stats is required", i)
		case 1:
		default:
			return fmt.Errorf("steps[%d]: only one of add, remove, filter, stats may be set", i)
		}
		if step.Expect != nil && len(step.Expect.Rejected) > 0 && step.Add == nil {
			return fmt.Errorf("steps[%d]: expect.rejected only applies to add", i)
		}
	}
	return nil
}
