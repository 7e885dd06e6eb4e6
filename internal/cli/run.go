package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/forkknife/internal/harness"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Trace bool
}

// scriptReport is the JSON payload for one script.
type scriptReport struct {
	Name   string               `json:"name"`
	Path   string               `json:"path"`
	Pass   bool                 `json:"pass"`
	Steps  int                  `json:"steps"`
	Writes int64                `json:"writes"`
	Errors []string             `json:"errors,omitempty"`
	Trace  []harness.TraceEvent `json:"trace,omitempty"`
}

// runData is the JSON payload of the run command.
type runData struct {
	Passed  int            `json:"passed"`
	Failed  int            `json:"failed"`
	Scripts []scriptReport `json:"scripts"`
}

// NewRunCommand creates the run command for scripted menu sessions.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <script.yaml>...",
		Short: "Run scripted menu sessions and check their expectations",
		Long: `Run one or more YAML scripts of add, remove, filter and stats steps.

Each script starts from its own menu (the script's "menu" catalogue, or the
built-in one) and reports PASS or FAIL. The command exits 1 if any script fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScripts(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "print each script's step trace")

	return cmd
}

func runScripts(ctx context.Context, cmd *cobra.Command, opts *RunOptions, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(cmd, opts.RootOptions)
	logger := newLogger(formatter.GetErrWriter(), opts.Verbose)

	data := runData{Scripts: []scriptReport{}}
	for _, path := range paths {
		script, err := harness.LoadScript(path)
		if err != nil {
			return outputScriptError(formatter, path, err)
		}

		logger.Debug("running script", "name", script.Name, "path", path)
		result, err := harness.Run(ctx, script, harness.WithLogger(logger))
		if err != nil {
			return outputScriptError(formatter, path, err)
		}

		report := scriptReport{
			Name:   script.Name,
			Path:   path,
			Pass:   result.Pass,
			Steps:  len(result.Trace),
			Writes: result.Writes,
			Errors: result.Errors,
		}
		if opts.Trace {
			report.Trace = result.Trace
		}
		if result.Pass {
			data.Passed++
		} else {
			data.Failed++
		}
		data.Scripts = append(data.Scripts, report)
	}

	if err := formatter.Success(data, func(w io.Writer) {
		renderRun(w, data, opts.Trace)
	}); err != nil {
		return err
	}

	if data.Failed > 0 {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%s: %d of %d script(s) failed", ErrCodeScriptFailed, data.Failed, len(data.Scripts)))
	}
	return nil
}

func renderRun(w io.Writer, data runData, trace bool) {
	for _, s := range data.Scripts {
		status := "PASS"
		if !s.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "%s %s (%d steps)\n", status, s.Name, s.Steps)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
		if trace {
			for _, ev := range s.Trace {
				fmt.Fprintf(w, "  %d %s ids=%v", ev.Step, ev.Action, ev.IDs)
				if ev.DishID != "" {
					fmt.Fprintf(w, " dish=%s", ev.DishID)
				}
				if len(ev.Rejected) > 0 {
					fmt.Fprintf(w, " rejected=%v", ev.Rejected)
				}
				fmt.Fprintln(w)
			}
		}
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", data.Passed, data.Failed)
}

// outputScriptError reports a script that could not be loaded or run.
func outputScriptError(formatter *OutputFormatter, path string, err error) error {
	message := fmt.Sprintf("%s: %v", path, err)
	if ferr := formatter.Error(ErrCodeScript, message, nil); ferr != nil {
		return WrapExitError(ExitCommandError, "failed to output error", ferr)
	}
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeScript, message), nil)
}
