package harness

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TraceSnapshot captures the trace of a script run for golden comparison.
type TraceSnapshot struct {
	ScriptName string       `json:"script_name"`
	Trace      []TraceEvent `json:"trace"`
}

// RunWithGolden executes a script and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{script.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the script cannot run.
// Test failure (via goldie) occurs if the trace doesn't match the golden file.
func RunWithGolden(t *testing.T, script *Script) (*Result, error) {
	t.Helper()

	result, err := Run(context.Background(), script)
	if err != nil {
		return nil, err
	}
	return result, AssertGolden(t, script.Name, result)
}

// AssertGolden compares an existing result's trace against a golden file.
func AssertGolden(t *testing.T, scriptName string, result *Result) error {
	t.Helper()

	data, err := MarshalTrace(scriptName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scriptName, data)
	return nil
}

// MarshalTrace renders a result's trace as indented JSON.
// Map keys are sorted, so the output is byte-stable across runs.
func MarshalTrace(scriptName string, result *Result) ([]byte, error) {
	return json.MarshalIndent(TraceSnapshot{
		ScriptName: scriptName,
		Trace:      result.Trace,
	}, "", "  ")
}
