package maze_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/maze"
	"github.com/katalvlaran/algoviz/pathfind"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestRandom_BadDensity(t *testing.T) {
	for _, d := range []float64{-0.1, 1.0, 2.5} {
		if _, err := maze.Random(4, 4, d); !errors.Is(err, maze.ErrBadDensity) {
			t.Errorf("Random(density=%v) error = %v; want ErrBadDensity", d, err)
		}
	}
}

func TestRandom_PropagatesGridErrors(t *testing.T) {
	_, err := maze.Random(0, 4, 0.2)
	if !errors.Is(err, grid.ErrEmptyGrid) {
		t.Fatalf("Random(0,4) error = %v; want grid.ErrEmptyGrid", err)
	}
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestRandom_Deterministic: identical seeds yield identical layouts,
// and seed 0 maps to the fixed default stream.
func TestRandom_Deterministic(t *testing.T) {
	a, err := maze.Random(8, 8, 0.3, maze.WithSeed(99))
	require.NoError(t, err)
	b, err := maze.Random(8, 8, 0.3, maze.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.Obstacles(), b.Obstacles())

	zero, err := maze.Random(8, 8, 0.3)
	require.NoError(t, err)
	one, err := maze.Random(8, 8, 0.3, maze.WithSeed(0))
	require.NoError(t, err)
	require.Equal(t, zero.Obstacles(), one.Obstacles())
}

// TestRandom_TerminalsNeverBlocked: start and goal are never obstacles,
// whatever the density rolls.
func TestRandom_TerminalsNeverBlocked(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := maze.Random(6, 6, 0.8, maze.WithSeed(seed))
		require.NoError(t, err)
		require.False(t, g.At(g.Start()).IsObstacle)
		require.False(t, g.At(g.Goal()).IsObstacle)
	}
}

//----------------------------------------------------------------------------//
// Solvability policy
//----------------------------------------------------------------------------//

// TestRandom_EnsureSolvable: the returned board always has a route.
func TestRandom_EnsureSolvable(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := maze.Random(8, 8, 0.35, maze.WithSeed(seed), maze.WithEnsureSolvable())
		require.NoError(t, err)

		trace, err := pathfind.Generate(g, pathfind.BFS)
		require.NoError(t, err)
		require.NotEmpty(t, trace[len(trace)-1].Path, "seed %d: board is not solvable", seed)
	}
}

// TestRandom_EnsureSolvable_Exhausted: with density so high that every roll
// walls the board off, the attempt budget runs out.
func TestRandom_EnsureSolvable_Exhausted(t *testing.T) {
	_, err := maze.Random(8, 8, 0.99,
		maze.WithSeed(3),
		maze.WithEnsureSolvable(),
		maze.WithMaxAttempts(4),
	)
	require.ErrorIs(t, err, maze.ErrUnsolvableMaze)
}

//----------------------------------------------------------------------------//
// Slalom layout
//----------------------------------------------------------------------------//

// TestSlalom_Solvable: the fixed layout always routes through its gaps.
func TestSlalom_Solvable(t *testing.T) {
	g, err := maze.Slalom(7, 6)
	require.NoError(t, err)

	trace, err := pathfind.Generate(g, pathfind.BFS)
	require.NoError(t, err)

	final := trace[len(trace)-1]
	require.NotEmpty(t, final.Path)
	// Walls sit on rows 1, 3, 5 with one gap each: the route must be
	// strictly longer than the open-board Manhattan distance.
	require.Greater(t, final.PathLength, grid.ManhattanDistance(g.Start(), g.Goal()))
}

// TestSlalom_Deterministic: no randomness at all.
func TestSlalom_Deterministic(t *testing.T) {
	a, err := maze.Slalom(7, 6)
	require.NoError(t, err)
	b, err := maze.Slalom(7, 6)
	require.NoError(t, err)
	require.Equal(t, a.Obstacles(), b.Obstacles())
}
