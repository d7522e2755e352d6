// Package commands implements the algoviz CLI command handlers.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/internal/config"
	"github.com/katalvlaran/algoviz/maze"
	"github.com/katalvlaran/algoviz/pathfind"
)

// ErrNoValues is returned when a command needs an input array and none was
// given.
var ErrNoValues = errors.New("no input values. Use -v, e.g.: -v 5,3,8,1")

// loadConfig reads the config file named by the root --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}

	return config.Load(path)
}

// parseInts splits a comma-separated list into ints.
func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrNoValues
	}

	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", p, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// Board glyph painters. color honors NO_COLOR and non-TTY output on its own.
var (
	paintStart    = color.New(color.FgCyan, color.Bold)
	paintGoal     = color.New(color.FgMagenta, color.Bold)
	paintObstacle = color.New(color.FgHiBlack)
	paintPath     = color.New(color.FgGreen, color.Bold)
	paintFrontier = color.New(color.FgYellow)
	paintVisited  = color.New(color.FgBlue)
	paintPass     = color.New(color.FgGreen, color.Bold)
	paintFail     = color.New(color.FgRed, color.Bold)
	paintStars    = color.New(color.FgYellow, color.Bold)
)

// renderBoard paints one grid snapshot for the terminal.
func renderBoard(cells [][]grid.Cell) string {
	var b strings.Builder
	for r := range cells {
		for c := range cells[r] {
			cell := cells[r][c]
			switch {
			case cell.IsStart:
				b.WriteString(paintStart.Sprint("S "))
			case cell.IsEnd:
				b.WriteString(paintGoal.Sprint("G "))
			case cell.IsObstacle:
				b.WriteString(paintObstacle.Sprint("██"))
			case cell.IsPath:
				b.WriteString(paintPath.Sprint("◆ "))
			case cell.IsFrontier:
				b.WriteString(paintFrontier.Sprint("○ "))
			case cell.IsVisited:
				b.WriteString(paintVisited.Sprint("● "))
			default:
				b.WriteString("· ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// newTable returns a writer with the house table style.
func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	return tbl
}

// boardFlags are the shared maze/grid construction flags.
type boardFlags struct {
	rows    int
	cols    int
	density float64
	seed    int64
	slalom  bool
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rows, "rows", 8, "board height")
	cmd.Flags().IntVar(&f.cols, "cols", 8, "board width")
	cmd.Flags().Float64Var(&f.density, "density", 0.25, "obstacle density in [0,1)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "maze seed (0 uses the fixed default)")
	cmd.Flags().BoolVar(&f.slalom, "slalom", false, "fixed slalom walls instead of a random maze")
}

// build constructs the board described by the flags. Random boards are
// regenerated until solvable so every run has a reachable goal.
func (f *boardFlags) build() (*grid.Grid, error) {
	if f.slalom {
		return maze.Slalom(f.rows, f.cols)
	}

	return maze.Random(f.rows, f.cols, f.density,
		maze.WithSeed(f.seed), maze.WithEnsureSolvable())
}

// finalStep returns the last step of a pathfinding trace.
func finalStep(trace []pathfind.Step) pathfind.Step {
	return trace[len(trace)-1]
}
