package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/algoviz/grid"
)

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed boards.
func TestNew_Errors(t *testing.T) {
	start := grid.WithStart(grid.Coord{Row: 0, Col: 0})
	goal := grid.WithGoal(grid.Coord{Row: 2, Col: 2})

	cases := []struct {
		name string
		rows int
		cols int
		opts []grid.Option
		err  error
	}{
		{"ZeroRows", 0, 3, []grid.Option{start, goal}, grid.ErrEmptyGrid},
		{"ZeroCols", 3, 0, []grid.Option{start, goal}, grid.ErrEmptyGrid},
		{"NoStart", 3, 3, []grid.Option{goal}, grid.ErrNoStart},
		{"NoGoal", 3, 3, []grid.Option{start}, grid.ErrNoGoal},
		{"StartOutOfBounds", 3, 3, []grid.Option{grid.WithStart(grid.Coord{Row: 5, Col: 0}), goal}, grid.ErrOutOfBounds},
		{"StartIsGoal", 3, 3, []grid.Option{start, grid.WithGoal(grid.Coord{Row: 0, Col: 0})}, grid.ErrStartIsGoal},
		{"ObstacleOutOfBounds", 3, 3, []grid.Option{start, goal, grid.WithObstacles([]grid.Coord{{Row: 9, Col: 9}})}, grid.ErrOutOfBounds},
		{"ObstacleOnStart", 3, 3, []grid.Option{start, goal, grid.WithObstacles([]grid.Coord{{Row: 0, Col: 0}})}, grid.ErrBlockedTerminal},
		{"ObstacleOnGoal", 3, 3, []grid.Option{start, goal, grid.WithObstacles([]grid.Coord{{Row: 2, Col: 2}})}, grid.ErrBlockedTerminal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestNew_Layout checks that start, goal, and obstacles land on the right cells.
func TestNew_Layout(t *testing.T) {
	g, err := grid.New(3, 4,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 2, Col: 3}),
		grid.WithObstacles([]grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if !g.At(grid.Coord{Row: 0, Col: 0}).IsStart {
		t.Error("start cell not marked IsStart")
	}
	if !g.At(grid.Coord{Row: 2, Col: 3}).IsEnd {
		t.Error("goal cell not marked IsEnd")
	}
	if got := len(g.Obstacles()); got != 2 {
		t.Errorf("Obstacles() length = %d; want 2", got)
	}
	if g.At(grid.Coord{Row: 1, Col: 1}).G != grid.InfCost {
		t.Error("fresh cell G should be InfCost")
	}
}

//----------------------------------------------------------------------------//
// Geometry helpers
//----------------------------------------------------------------------------//

// TestNeighbors verifies the fixed up/right/down/left order and obstacle
// filtering.
func TestNeighbors(t *testing.T) {
	g, err := grid.New(3, 3,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 2, Col: 2}),
		grid.WithObstacles([]grid.Coord{{Row: 1, Col: 0}}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Center cell: all four neighbors, up/right/down/left, minus the obstacle.
	got := g.Neighbors(grid.Coord{Row: 1, Col: 1})
	want := []grid.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(1,1) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(1,1)[%d] = %v; want %v", i, got[i], want[i])
		}
	}

	// Corner cell: obstacle below, so only the right neighbor remains.
	got = g.Neighbors(grid.Coord{Row: 0, Col: 0})
	if len(got) != 1 || got[0] != (grid.Coord{Row: 0, Col: 1}) {
		t.Errorf("Neighbors(0,0) = %v; want [{0 1}]", got)
	}
}

func TestManhattanDistance(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int
	}{
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 3, Col: 3}, 6},
		{grid.Coord{Row: 2, Col: 5}, grid.Coord{Row: 2, Col: 5}, 0},
		{grid.Coord{Row: 4, Col: 1}, grid.Coord{Row: 1, Col: 3}, 5},
	}
	for _, tc := range cases {
		if got := grid.ManhattanDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("ManhattanDistance(%v,%v) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

//----------------------------------------------------------------------------//
// Snapshot isolation and Reset
//----------------------------------------------------------------------------//

// TestSnapshot_Isolation ensures later board mutation cannot reach a snapshot.
func TestSnapshot_Isolation(t *testing.T) {
	g, err := grid.New(2, 2,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 1, Col: 1}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	snap := g.Snapshot()
	g.At(grid.Coord{Row: 0, Col: 1}).IsVisited = true

	if snap[0][1].IsVisited {
		t.Error("mutating the live board leaked into an earlier snapshot")
	}
}

// TestReset clears search bookkeeping but keeps the layout.
func TestReset(t *testing.T) {
	g, err := grid.New(2, 3,
		grid.WithStart(grid.Coord{Row: 0, Col: 0}),
		grid.WithGoal(grid.Coord{Row: 1, Col: 2}),
		grid.WithObstacles([]grid.Coord{{Row: 0, Col: 1}}),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	c := g.At(grid.Coord{Row: 1, Col: 1})
	c.IsVisited, c.IsFrontier, c.IsPath = true, true, true
	c.G, c.H, c.F = 1, 2, 3

	g.Reset()

	c = g.At(grid.Coord{Row: 1, Col: 1})
	if c.IsVisited || c.IsFrontier || c.IsPath {
		t.Error("Reset left search flags set")
	}
	if c.G != grid.InfCost || c.H != grid.InfCost || c.F != grid.InfCost {
		t.Error("Reset left cost fields set")
	}
	if !g.At(grid.Coord{Row: 0, Col: 1}).IsObstacle {
		t.Error("Reset cleared the obstacle layout")
	}
	if !g.At(grid.Coord{Row: 0, Col: 0}).IsStart || !g.At(grid.Coord{Row: 1, Col: 2}).IsEnd {
		t.Error("Reset cleared start/goal markers")
	}
}
