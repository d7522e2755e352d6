package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/tree"
)

// TreeCommand holds the flags of `algoviz tree`.
type TreeCommand struct {
	values    string
	traversal string
	heap      bool
	quiet     bool
}

// NewTreeCommand builds the `tree` command: construct a BST or a max-heap
// from the input values and optionally walk it.
func NewTreeCommand() *cobra.Command {
	tc := &TreeCommand{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Trace BST construction, heap building, and traversals",
		Example: `  algoviz tree -v 8,3,10,1,6 -t inorder
  algoviz tree -v 4,10,3,5,1 --heap`,
		RunE: tc.run,
	}

	cmd.Flags().StringVarP(&tc.values, "values", "v", "", "comma-separated input values")
	cmd.Flags().StringVarP(&tc.traversal, "traversal", "t", tree.InOrder,
		"one of: "+strings.Join(tree.Traversals(), ", "))
	cmd.Flags().BoolVar(&tc.heap, "heap", false, "build a max-heap instead of a BST")
	cmd.Flags().BoolVar(&tc.quiet, "quiet", false, "summary only, no per-step output")

	return cmd
}

func (tc *TreeCommand) run(cmd *cobra.Command, _ []string) error {
	values, err := parseInts(tc.values)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if tc.heap {
		trace, err := tree.BuildMaxHeap(values)
		if err != nil {
			return err
		}
		final := trace[len(trace)-1]
		if !tc.quiet {
			for i, step := range trace {
				fmt.Fprintf(out, "%3d  %v  %s\n", i, step.Heap, step.Operation)
			}
		}
		fmt.Fprintf(out, "heap: %v\n", final.Heap)
		tc.summary(out, "heap-build", len(trace), final.Comparisons, final.Operations)

		return nil
	}

	buildTrace, tr, err := tree.BuildBST(values)
	if err != nil {
		return err
	}
	walkTrace, err := tree.Traverse(tr, tc.traversal)
	if err != nil {
		return err
	}

	if !tc.quiet {
		for i, step := range buildTrace {
			fmt.Fprintf(out, "%3d  %s\n", i, step.Operation)
		}
		for i, step := range walkTrace {
			fmt.Fprintf(out, "%3d  %v  %s\n", len(buildTrace)+i, step.Output, step.Operation)
		}
	}

	final := walkTrace[len(walkTrace)-1]
	fmt.Fprintf(out, "%s: %v\n", tc.traversal, final.Output)
	buildFinal := buildTrace[len(buildTrace)-1]
	tc.summary(out, "bst+"+tc.traversal,
		len(buildTrace)+len(walkTrace), buildFinal.Comparisons, buildFinal.Operations)

	return nil
}

func (tc *TreeCommand) summary(out io.Writer, kind string, steps, comparisons, operations int) {
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"trace", "steps", "comparisons", "operations"})
	tbl.AppendRow(table.Row{kind, steps, comparisons, operations})
	tbl.Render()
}
