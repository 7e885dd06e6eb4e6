package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/forkknife/internal/engine"
	"github.com/roach88/forkknife/internal/menu"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name        string
	Description string
	Course      string
	Price       string
}

// addData is the JSON payload of a successful add.
type addData struct {
	Seq  int64       `json:"seq"`
	Dish menu.Dish   `json:"dish"`
	Menu listingData `json:"menu"`
}

// NewAddCommand creates the add command.
// The dish is added to this process's menu only; nothing is saved.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish and show the resulting menu",
		Long: `Add a dish to the top of the menu and print the result.

Name, description and price are required. Course defaults to Starters.
The menu is held in memory, so the dish is gone when the command exits;
use "forkknife run" to script a longer session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Name, "name", "n", "", "dish name")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "dish description")
	cmd.Flags().StringVarP(&opts.Course, "course", "c", "", "course (Starters|Mains|Desserts, default Starters)")
	cmd.Flags().StringVarP(&opts.Price, "price", "p", "", "price, e.g. 85 or 49.50")

	return cmd
}

func runAdd(ctx context.Context, cmd *cobra.Command, opts *AddOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(cmd, opts.RootOptions)

	sess, err := openSession(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	out, err := addDish(ctx, sess, menu.Candidate{
		Name:        opts.Name,
		Description: opts.Description,
		Course:      opts.Course,
		Price:       opts.Price,
	})
	if err != nil {
		var invalid *menu.InvalidInputError
		if errors.As(err, &invalid) {
			return outputInvalidInput(formatter, invalid)
		}
		if ferr := formatter.Error(ErrCodeGeneric, err.Error(), nil); ferr != nil {
			return WrapExitError(ExitCommandError, "failed to output error", ferr)
		}
		return WrapExitError(ExitCommandError, "add failed", err)
	}

	dishes := out.Snapshot.Dishes()
	data := addData{Seq: out.Seq, Dish: out.Dish, Menu: newListingData(dishes)}
	return formatter.Success(data, func(w io.Writer) {
		fmt.Fprintf(w, "Added [%s] %s\n\n", out.Dish.ID, out.Dish.Name)
		renderDishes(w, dishes, sess.currency)
	})
}

// addDish runs a writer for the lifetime of a single add.
func addDish(ctx context.Context, sess *session, c menu.Candidate) (engine.Outcome, error) {
	w := engine.New(sess.store, engine.WithLogger(sess.logger))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(runCtx) }()

	out, err := w.Add(runCtx, c)
	w.Close()
	if runErr := <-done; runErr != nil && err == nil {
		err = runErr
	}
	return out, err
}

// outputInvalidInput reports every rejected field and returns ExitFailure.
func outputInvalidInput(formatter *OutputFormatter, invalid *menu.InvalidInputError) error {
	message := "dish rejected"
	if formatter.Format == "json" {
		if err := formatter.Error(ErrCodeInvalidInput, message, invalid.Problems); err != nil {
			return WrapExitError(ExitCommandError, "failed to output error", err)
		}
	} else {
		fmt.Fprintf(formatter.Writer, "Error [%s]: %s\n", ErrCodeInvalidInput, message)
		for _, p := range invalid.Problems {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", p.Field, p.Message)
		}
	}
	return WrapExitError(ExitFailure, fmt.Sprintf("%s: %s", ErrCodeInvalidInput, message), invalid)
}
