// Package pathfind defines the Step shape, algorithm keys, and sentinel
// errors for the pathfinding trace generators.
package pathfind

import (
	"errors"

	"github.com/katalvlaran/algoviz/grid"
)

// Sentinel errors for trace generation.
var (
	// ErrNilGrid is returned if a nil board pointer is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrUnknownAlgorithm is returned for an algorithm key with no strategy.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm key")
)

// Algorithm keys accepted by Generate.
const (
	BFS      = "bfs"
	Dijkstra = "dijkstra"
	AStar    = "astar"
)

// Step is one immutable snapshot of search state, corresponding to exactly
// one primitive operation.
//
//   - Grid: deep copy of the board at this instant.
//   - Visited: finalized cells in visit order; accumulates monotonically.
//   - Frontier: discovered-but-not-finalized cells in discovery order.
//     The full frontier is exposed; bounding the preview is a UI concern.
//   - Path: start→goal cell sequence once reconstructed, empty if no route
//     exists (or none has been found yet).
//   - PathLength: number of moves along Path (len(Path)-1), 0 without one.
//   - NodesVisited: count of finalized cells, never decreasing.
type Step struct {
	Grid     [][]grid.Cell
	Visited  []grid.Coord
	Frontier []grid.Coord
	Path     []grid.Coord

	PathLength   int
	NodesVisited int
	Operation    string
	IsComplete   bool
}

// ordering decides which frontier entry pops first; see frontier.go.
type ordering func(a, b entry) bool

// registry maps algorithm keys to their frontier orderings.
var registry = map[string]ordering{
	BFS:      byInsertion,
	Dijkstra: byCost,
	AStar:    byEstimate,
}

// Algorithms returns the registered algorithm keys in stable order.
func Algorithms() []string {
	return []string{BFS, Dijkstra, AStar}
}
