package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout, stderr
// and the command error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// decodeData unmarshals the data field of a JSON CLIResponse into v.
func decodeData(t *testing.T, out string, v any) {
	t.Helper()

	var resp struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, "ok", resp.Status)
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

const (
	bistroMenu = "../harness/testdata/menus/bistro.cue"
	scriptsDir = "../harness/testdata/scripts"
)
