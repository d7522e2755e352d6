package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/challenge"
	"github.com/katalvlaran/algoviz/pathfind"
)

// NewChallengeCommand builds the `challenge` command group.
func NewChallengeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "List and run pathfinding challenges",
	}
	cmd.AddCommand(newChallengeListCommand(), newChallengeRunCommand())

	return cmd
}

// loadChallenges merges the built-in library with the user pack from the
// config file, if any.
func loadChallenges(cmd *cobra.Command) ([]challenge.Challenge, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	all := challenge.Library()
	if cfg.Challenge.File != "" {
		extra, err := challenge.LoadFile(cfg.Challenge.File)
		if err != nil {
			return nil, err
		}
		all = append(all, extra...)
	}

	return all, nil
}

func newChallengeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the available challenges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, err := loadChallenges(cmd)
			if err != nil {
				return err
			}

			tbl := newTable(cmd.OutOrStdout())
			tbl.AppendHeader(table.Row{"id", "name", "board", "focus", "constraints", "xp"})
			for _, ch := range all {
				tbl.AppendRow(table.Row{
					ch.ID, ch.Name,
					fmt.Sprintf("%dx%d", ch.Rows, ch.Cols),
					ch.AlgorithmFocus, len(ch.Constraints), ch.XPReward,
				})
			}
			tbl.Render()

			return nil
		},
	}
}

// ChallengeRunCommand holds the flags of `algoviz challenge run`.
type ChallengeRunCommand struct {
	algorithm string
	hints     bool
}

func newChallengeRunCommand() *cobra.Command {
	cc := &ChallengeRunCommand{}

	cmd := &cobra.Command{
		Use:   "run <id>",
		Short: "Run an algorithm against a challenge and score the attempt",
		Args:  cobra.ExactArgs(1),
		Example: `  algoviz challenge run first-steps -a astar
  algoviz challenge run slalom-run -a dijkstra --hints`,
		RunE: cc.run,
	}

	cmd.Flags().StringVarP(&cc.algorithm, "algorithm", "a", pathfind.AStar,
		"one of: "+strings.Join(pathfind.Algorithms(), ", "))
	cmd.Flags().BoolVar(&cc.hints, "hints", false, "show the challenge hints before the result")

	return cmd
}

func (cc *ChallengeRunCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	all, err := loadChallenges(cmd)
	if err != nil {
		return err
	}

	var ch challenge.Challenge
	found := false
	for _, c := range all {
		if c.ID == args[0] {
			ch, found = c, true
			break
		}
	}
	if !found {
		return fmt.Errorf("challenge %q: %w", args[0], challenge.ErrNotFound)
	}

	out := cmd.OutOrStdout()
	if cc.hints {
		for _, h := range ch.Hints {
			fmt.Fprintf(out, "hint: %s\n", h)
		}
	}

	g, err := ch.Grid()
	if err != nil {
		return err
	}
	trace, err := pathfind.Generate(g, cc.algorithm)
	if err != nil {
		return err
	}

	final := finalStep(trace)
	res := challenge.Evaluate(ch, challenge.Metrics{
		NodesVisited: final.NodesVisited,
		PathLength:   final.PathLength,
		Algorithm:    cc.algorithm,
	}, challenge.WithStarBands(cfg.StarBands()))

	fmt.Fprint(out, renderBoard(final.Grid))
	if res.Passed {
		fmt.Fprintf(out, "%s  %s  +%d XP\n",
			paintPass.Sprint("PASSED"),
			paintStars.Sprint(strings.Repeat("★", res.Stars)+strings.Repeat("☆", 3-res.Stars)),
			ch.XPReward)
	} else {
		fmt.Fprintf(out, "%s  constraints violated: %s\n",
			paintFail.Sprint("FAILED"), strings.Join(res.Failures, ", "))
	}

	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"algorithm", "visited", "optimal", "path", "optimal path"})
	tbl.AppendRow(table.Row{cc.algorithm, final.NodesVisited, ch.OptimalNodes, final.PathLength, ch.OptimalPath})
	tbl.Render()

	return nil
}
