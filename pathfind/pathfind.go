package pathfind

import (
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
)

// Generate runs the search selected by algorithm over g and returns the
// complete trace.
//
// Validation order:
//  1. g must be non-nil                  (ErrNilGrid)
//  2. algorithm must be registered      (ErrUnknownAlgorithm)
//
// Generate owns the board for the duration of the run: it calls g.Reset()
// first and mutates the live cells while walking. Every emitted Step holds
// a deep snapshot, so earlier steps never see later mutation. Board
// layout errors (missing start/goal, obstacles on terminals) cannot occur
// here; grid.New rejects them at construction.
func Generate(g *grid.Grid, algorithm string) ([]Step, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	less, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	g.Reset()
	w := &walker{
		grid:      g,
		algorithm: algorithm,
		front:     newFrontier(less),
		parent:    make(map[grid.Coord]grid.Coord),
		inFront:   make(map[grid.Coord]bool),
	}

	return w.run(), nil
}

// walker encapsulates mutable search state for one run.
type walker struct {
	grid      *grid.Grid
	algorithm string
	front     *frontier

	parent  map[grid.Coord]grid.Coord
	inFront map[grid.Coord]bool

	visited      []grid.Coord
	frontierList []grid.Coord
	path         []grid.Coord
	nodesVisited int
	steps        []Step
}

// run drives the search to completion and returns the trace.
func (w *walker) run() []Step {
	w.emit("initial grid", false)

	start, goal := w.grid.Start(), w.grid.Goal()
	w.discover(start, 0, grid.Coord{}, false)

	for !w.front.empty() {
		e := w.front.pop()
		cell := w.grid.At(e.c)
		if cell.IsVisited {
			// Stale duplicate from lazy decrease-key.
			continue
		}

		w.finalize(e.c)
		if e.c == goal {
			w.reconstruct(start, goal)
			return w.steps
		}
		w.expand(e)
	}

	// Frontier drained without reaching the goal: a valid terminal
	// outcome, not an error.
	w.emit("frontier empty - goal unreachable", true)

	return w.steps
}

// finalize marks c visited, removes it from the frontier preview, and emits
// the visit step.
func (w *walker) finalize(c grid.Coord) {
	cell := w.grid.At(c)
	cell.IsVisited = true
	cell.IsFrontier = false
	w.removeFromFrontier(c)
	w.visited = append(w.visited, c)
	w.nodesVisited++

	op := fmt.Sprintf("visit (%d,%d)", c.Row, c.Col)
	if c == w.grid.Goal() {
		op = fmt.Sprintf("visit goal (%d,%d)", c.Row, c.Col)
	}
	w.emit(op, false)
}

// expand relaxes every traversable neighbor of the popped entry. Each
// discovery or cost improvement is its own step. Neighbor order is the
// board's fixed up/right/down/left order, so expansion is deterministic.
func (w *walker) expand(e entry) {
	for _, n := range w.grid.Neighbors(e.c) {
		cell := w.grid.At(n)
		if cell.IsVisited {
			continue
		}
		nextG := e.g + 1
		if w.algorithm == BFS && w.inFront[n] {
			// FIFO frontier: first discovery is final.
			continue
		}
		if cell.G != grid.InfCost && nextG >= cell.G {
			continue
		}
		w.discover(n, nextG, e.c, true)
	}
}

// discover records cost and parent for c and pushes it onto the frontier.
// hasParent is false only for the start cell.
func (w *walker) discover(c grid.Coord, nextG int, from grid.Coord, hasParent bool) {
	cell := w.grid.At(c)
	improved := cell.G != grid.InfCost

	cell.G = nextG
	h := 0
	if w.algorithm == AStar {
		h = grid.ManhattanDistance(c, w.grid.Goal())
		cell.H = h
		cell.F = nextG + h
	}
	if hasParent {
		w.parent[c] = from
	}

	w.front.push(c, nextG, h, nextG+h)
	if !w.inFront[c] {
		w.inFront[c] = true
		cell.IsFrontier = true
		w.frontierList = append(w.frontierList, c)
	}

	switch {
	case !hasParent:
		w.emit(fmt.Sprintf("add start (%d,%d) to frontier", c.Row, c.Col), false)
	case improved:
		w.emit(fmt.Sprintf("update (%d,%d): cheaper route, cost %d", c.Row, c.Col, nextG), false)
	default:
		w.emit(fmt.Sprintf("discover (%d,%d), cost %d", c.Row, c.Col, nextG), false)
	}
}

// reconstruct walks back-pointers from goal to start, marking and emitting
// one step per path cell, then the terminal step with the full route.
func (w *walker) reconstruct(start, goal grid.Coord) {
	route := []grid.Coord{goal}
	for cur := goal; cur != start; {
		cur = w.parent[cur]
		route = append(route, cur)
	}
	// Reverse to get start → goal.
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	for _, c := range route {
		w.grid.At(c).IsPath = true
		w.path = append(w.path, c)
		w.emit(fmt.Sprintf("trace path through (%d,%d)", c.Row, c.Col), false)
	}
	w.emit(fmt.Sprintf("path found, %d moves", len(route)-1), true)
}

// removeFromFrontier drops c from the ordered frontier preview.
func (w *walker) removeFromFrontier(c grid.Coord) {
	if !w.inFront[c] {
		return
	}
	delete(w.inFront, c)
	for i, fc := range w.frontierList {
		if fc == c {
			w.frontierList = append(w.frontierList[:i], w.frontierList[i+1:]...)
			break
		}
	}
}

// emit appends one Step snapshotting board, visit order, frontier preview,
// and the path found so far.
func (w *walker) emit(op string, complete bool) {
	visited := make([]grid.Coord, len(w.visited))
	copy(visited, w.visited)
	front := make([]grid.Coord, len(w.frontierList))
	copy(front, w.frontierList)
	path := make([]grid.Coord, len(w.path))
	copy(path, w.path)

	length := 0
	if len(path) > 1 {
		length = len(path) - 1
	}

	w.steps = append(w.steps, Step{
		Grid:         w.grid.Snapshot(),
		Visited:      visited,
		Frontier:     front,
		Path:         path,
		PathLength:   length,
		NodesVisited: w.nodesVisited,
		Operation:    op,
		IsComplete:   complete,
	})
}
