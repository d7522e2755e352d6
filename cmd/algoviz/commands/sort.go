package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/sorting"
)

// SortCommand holds the flags of `algoviz sort`.
type SortCommand struct {
	algorithm string
	values    string
	quiet     bool
}

// NewSortCommand builds the `sort` command: generate a sorting trace and
// print it step by step with a summary table.
func NewSortCommand() *cobra.Command {
	sc := &SortCommand{}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Trace a sorting algorithm over an input array",
		Example: `  algoviz sort -a bubble -v 5,3,8,1
  algoviz sort -a quick -v 9,1,8,2,7,3 --quiet`,
		RunE: sc.run,
	}

	cmd.Flags().StringVarP(&sc.algorithm, "algorithm", "a", sorting.Bubble,
		"one of: "+strings.Join(sorting.Algorithms(), ", "))
	cmd.Flags().StringVarP(&sc.values, "values", "v", "", "comma-separated input array")
	cmd.Flags().BoolVar(&sc.quiet, "quiet", false, "summary only, no per-step output")

	return cmd
}

func (sc *SortCommand) run(cmd *cobra.Command, _ []string) error {
	values, err := parseInts(sc.values)
	if err != nil {
		return err
	}

	trace, err := sorting.Generate(values, sc.algorithm)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !sc.quiet {
		for i, step := range trace {
			fmt.Fprintf(out, "%3d  %v  %s\n", i, step.Array, step.Operation)
		}
	}

	final := trace[len(trace)-1]
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"algorithm", "steps", "comparisons", "swaps"})
	tbl.AppendRow(table.Row{sc.algorithm, len(trace), final.Comparisons, final.Swaps})
	tbl.Render()

	return nil
}
