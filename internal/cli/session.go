package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/forkknife/internal/catalog"
	"github.com/roach88/forkknife/internal/menu"
)

// session is one process's in-memory menu. Nothing outlives it.
type session struct {
	catalogue *catalog.Catalogue
	store     *menu.Store
	logger    *slog.Logger
	currency  string
}

// newFormatter builds the output formatter for a command.
func newFormatter(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// newLogger writes to w at Debug when verbose, otherwise errors only:
// rejected input is already reported on stdout.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// openSession loads the catalogue and seeds a fresh store. Failures are
// reported through formatter and returned as ExitCommandError.
func openSession(opts *RootOptions, formatter *OutputFormatter) (*session, error) {
	cat := catalog.Default()
	if opts.Menu != "" {
		var err error
		cat, err = catalog.Load(opts.Menu)
		if err != nil {
			return nil, outputCatalogueError(formatter, err)
		}
	}

	logger := newLogger(formatter.GetErrWriter(), opts.Verbose)

	var ids menu.IDGenerator = menu.NewCounterIDs()
	if opts.IDs == "uuid" {
		ids = menu.UUIDv7IDs{}
	}

	storeOpts := append(cat.StoreOptions(),
		menu.WithIDGenerator(ids),
		menu.WithLogger(logger),
	)
	st, err := menu.NewStore(storeOpts...)
	if err != nil {
		return nil, outputCatalogueError(formatter, err)
	}

	currency := opts.Currency
	if currency == "" {
		currency = cat.Currency
	}

	logger.Debug("menu loaded", "catalogue", cat.Name, "dishes", st.Snapshot().Len())

	return &session{
		catalogue: cat,
		store:     st,
		logger:    logger,
		currency:  currency,
	}, nil
}

// outputCatalogueError reports a catalogue that could not be loaded.
func outputCatalogueError(formatter *OutputFormatter, err error) error {
	var details any
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		details = map[string]any{
			"code": loadErr.Code,
			"path": loadErr.Path,
		}
	}
	message := err.Error()
	if ferr := formatter.Error(ErrCodeCatalogue, message, details); ferr != nil {
		return WrapExitError(ExitCommandError, "failed to output error", ferr)
	}
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", ErrCodeCatalogue, message), nil)
}
