package challenge

import (
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
)

// builtin is the compiled-in challenge set. Kept private so callers can
// only reach it through Library/ByID, which hand out copies.
var builtin = []Challenge{
	{
		ID:             "first-steps",
		Name:           "First Steps",
		Rows:           4,
		Cols:           4,
		Start:          grid.Coord{Row: 0, Col: 0},
		Goal:           grid.Coord{Row: 3, Col: 3},
		AlgorithmFocus: "bfs",
		Constraints: []Constraint{
			{Kind: MaxPathLength, Limit: 6},
		},
		OptimalNodes: 14,
		OptimalPath:  6,
		XPReward:     50,
		Hints: []string{
			"On an open board every algorithm finds a 6-move route.",
			"Watch how the frontier spreads in waves from the start.",
		},
	},
	{
		ID:    "around-the-wall",
		Name:  "Around the Wall",
		Rows:  4,
		Cols:  4,
		Start: grid.Coord{Row: 0, Col: 0},
		Goal:  grid.Coord{Row: 3, Col: 3},
		Obstacles: []grid.Coord{
			{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
		},
		AlgorithmFocus: "astar",
		Constraints: []Constraint{
			{Kind: RequiredAlgorithm, Algorithm: "astar"},
			{Kind: MaxPathLength, Limit: 6},
		},
		OptimalNodes: 12,
		OptimalPath:  6,
		XPReward:     100,
		Hints: []string{
			"The wall forces everyone down first; A* still hugs the goal side.",
		},
	},
	{
		ID:    "slalom-run",
		Name:  "Slalom Run",
		Rows:  5,
		Cols:  5,
		Start: grid.Coord{Row: 0, Col: 0},
		Goal:  grid.Coord{Row: 4, Col: 4},
		Obstacles: []grid.Coord{
			{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
			{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3}, {Row: 3, Col: 4},
		},
		AlgorithmFocus: "dijkstra",
		Constraints: []Constraint{
			{Kind: MaxNodes, Limit: 20},
		},
		OptimalNodes: 17,
		OptimalPath:  16,
		XPReward:     150,
		Hints: []string{
			"Only one gap per wall: the route zig-zags the full board width.",
		},
	},
}

// Library returns a fresh copy of the built-in challenge set.
func Library() []Challenge {
	out := make([]Challenge, len(builtin))
	copy(out, builtin)

	return out
}

// ByID returns the built-in challenge with the given id, or ErrNotFound.
func ByID(id string) (Challenge, error) {
	for _, ch := range builtin {
		if ch.ID == id {
			return ch, nil
		}
	}

	return Challenge{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}
