package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/forkknife/internal/menu"
	"github.com/roach88/forkknife/internal/query"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Search string
	Course string
}

// NewListCommand creates the list command for showing the menu.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dishes, newest first",
		Long: `List the dishes on the menu, newest first.

--search keeps dishes whose name contains the text, ignoring case.
--course keeps one course (Starters, Mains or Desserts); All keeps every course.
Both filters may be combined.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "name text to search for")
	cmd.Flags().StringVarP(&opts.Course, "course", "c", query.AllCourses, "course to show (All|Starters|Mains|Desserts)")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	formatter := newFormatter(cmd, opts.RootOptions)

	sess, err := openSession(opts.RootOptions, formatter)
	if err != nil {
		return err
	}

	snap := sess.store.Snapshot()
	pred := query.And{Predicates: []query.Predicate{
		query.NameContains{Query: opts.Search},
		query.CourseIs{Course: courseFilter(opts.Course)},
	}}
	dishes := query.Select(snap, pred)

	sess.logger.Debug("list",
		"search", opts.Search,
		"course", opts.Course,
		"matched", len(dishes),
		"total", snap.Len(),
	)

	return formatter.Success(newListingData(dishes), func(w io.Writer) {
		renderDishes(w, dishes, sess.currency)
	})
}

// courseFilter maps flag input to a filter value: "all" in any case is the
// All sentinel, a course name in any case is its canonical spelling, and
// anything else is passed through to match nothing.
func courseFilter(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), query.AllCourses) {
		return query.AllCourses
	}
	if c, ok := menu.ParseCourse(s); ok {
		return c.String()
	}
	return s
}
