package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Menu     string // catalogue path; empty uses the built-in menu
	IDs      string // "counter" | "uuid"
	Currency string // price prefix in text output; empty uses the catalogue's
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidIDs defines the allowed dish ID generators.
var ValidIDs = []string{"counter", "uuid"}

// NewRootCommand creates the root command for the forkknife CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "forkknife",
		Short:         "Fork and Knife - menu manager",
		Long:          "List, filter, add and summarise the dishes on a restaurant menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %s\n", ErrCodeBadFlag, err.Error())
				return err
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Menu, "menu", "", "catalogue file (.yaml or .cue) to seed the menu from")
	cmd.PersistentFlags().StringVar(&opts.IDs, "ids", "counter", "dish ID generator (counter|uuid)")
	cmd.PersistentFlags().StringVar(&opts.Currency, "currency", "", "currency prefix for prices (default from catalogue)")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

func (o *RootOptions) validate() error {
	if !slices.Contains(ValidFormats, o.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}
	if o.IDs != "" && !slices.Contains(ValidIDs, o.IDs) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid ids %q: must be one of %v", o.IDs, ValidIDs))
	}
	return nil
}
