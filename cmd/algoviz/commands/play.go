package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/pathfind"
	"github.com/katalvlaran/algoviz/playback"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/tree"
	"github.com/katalvlaran/algoviz/tui"
)

// NewPlayCommand builds the `play` command group: interactive trace
// playback in the terminal.
func NewPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a trace interactively in the terminal",
	}
	cmd.AddCommand(newPlaySortCommand(), newPlayPathCommand(), newPlayTreeCommand())

	return cmd
}

func newPlaySortCommand() *cobra.Command {
	var algorithm, values string

	cmd := &cobra.Command{
		Use:     "sort",
		Short:   "Play a sorting trace",
		Example: "  algoviz play sort -a merge -v 9,1,8,2,7,3",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			vs, err := parseInts(values)
			if err != nil {
				return err
			}
			trace, err := sorting.Generate(vs, algorithm)
			if err != nil {
				return err
			}

			return tui.RunPlayer(trace, tui.RenderSortStep,
				fmt.Sprintf("%s sort", algorithm),
				playback.WithDelays[sorting.Step](cfg.Delays()))
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", sorting.Bubble,
		"one of: "+strings.Join(sorting.Algorithms(), ", "))
	cmd.Flags().StringVarP(&values, "values", "v", "", "comma-separated input array")

	return cmd
}

func newPlayPathCommand() *cobra.Command {
	var algorithm string
	board := &boardFlags{}

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Play a pathfinding trace",
		Example: "  algoviz play path -a astar --rows 10 --cols 10",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := board.build()
			if err != nil {
				return err
			}
			trace, err := pathfind.Generate(g, algorithm)
			if err != nil {
				return err
			}

			return tui.RunPlayer(trace, tui.RenderPathStep, algorithm,
				playback.WithDelays[pathfind.Step](cfg.Delays()))
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", pathfind.AStar,
		"one of: "+strings.Join(pathfind.Algorithms(), ", "))
	board.register(cmd)

	return cmd
}

func newPlayTreeCommand() *cobra.Command {
	var values, traversal string
	var heap bool

	cmd := &cobra.Command{
		Use:     "tree",
		Short:   "Play a tree trace",
		Example: "  algoviz play tree -v 8,3,10,1,6 -t postorder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			vs, err := parseInts(values)
			if err != nil {
				return err
			}

			var trace []tree.Step
			title := "max-heap build"
			if heap {
				trace, err = tree.BuildMaxHeap(vs)
			} else {
				var tr *tree.Tree
				var build []tree.Step
				build, tr, err = tree.BuildBST(vs)
				if err == nil {
					var walk []tree.Step
					walk, err = tree.Traverse(tr, traversal)
					trace = append(build, walk...)
					title = "bst " + traversal
				}
			}
			if err != nil {
				return err
			}

			return tui.RunPlayer(trace, tui.RenderTreeStep, title,
				playback.WithDelays[tree.Step](cfg.Delays()))
		},
	}

	cmd.Flags().StringVarP(&values, "values", "v", "", "comma-separated input values")
	cmd.Flags().StringVarP(&traversal, "traversal", "t", tree.InOrder,
		"one of: "+strings.Join(tree.Traversals(), ", "))
	cmd.Flags().BoolVar(&heap, "heap", false, "play a max-heap build instead of a BST")

	return cmd
}
