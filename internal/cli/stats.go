package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/forkknife/internal/query"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show item count and average price per course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(cmd, rootOpts)

			sess, err := openSession(rootOpts, formatter)
			if err != nil {
				return err
			}

			stats := query.ComputeStatistics(sess.store.Snapshot())
			return formatter.Success(stats, func(w io.Writer) {
				renderStats(w, stats, sess.currency)
			})
		},
	}
}
