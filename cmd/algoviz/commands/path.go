package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/pathfind"
)

// PathCommand holds the flags of `algoviz path`.
type PathCommand struct {
	algorithm string
	board     boardFlags
	showSteps bool
}

// NewPathCommand builds the `path` command: run a pathfinding algorithm on
// a generated board and print the explored result.
func NewPathCommand() *cobra.Command {
	pc := &PathCommand{}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Trace a pathfinding algorithm across a maze board",
		Example: `  algoviz path -a astar --rows 10 --cols 10 --density 0.3
  algoviz path -a bfs --slalom`,
		RunE: pc.run,
	}

	cmd.Flags().StringVarP(&pc.algorithm, "algorithm", "a", pathfind.AStar,
		"one of: "+strings.Join(pathfind.Algorithms(), ", "))
	cmd.Flags().BoolVar(&pc.showSteps, "steps", false, "print every operation, not just the final board")
	pc.board.register(cmd)

	return cmd
}

func (pc *PathCommand) run(cmd *cobra.Command, _ []string) error {
	g, err := pc.board.build()
	if err != nil {
		return err
	}

	trace, err := pathfind.Generate(g, pc.algorithm)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if pc.showSteps {
		for i, step := range trace {
			fmt.Fprintf(out, "%4d  %s\n", i, step.Operation)
		}
	}

	final := finalStep(trace)
	fmt.Fprint(out, renderBoard(final.Grid))
	fmt.Fprintln(out, final.Operation)

	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"algorithm", "steps", "visited", "path length"})
	tbl.AppendRow(table.Row{pc.algorithm, len(trace), final.NodesVisited, final.PathLength})
	tbl.Render()

	return nil
}
