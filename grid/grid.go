package grid

// neighborOffsets lists the four orthogonal directions in expansion order:
// up, right, down, left. All generators share this order so that ties in
// frontier cost resolve identically across algorithms.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rectangular board of Cells with one start and one goal.
// The zero value is not usable; construct via New.
type Grid struct {
	Rows, Cols int
	Cells      [][]Cell

	start Coord
	goal  Coord
}

// New builds a Rows×Cols board and validates the layout options in order:
//  1. rows > 0 and cols > 0                     (ErrEmptyGrid)
//  2. start present and in bounds               (ErrNoStart / ErrOutOfBounds)
//  3. goal present, in bounds, distinct         (ErrNoGoal / ErrOutOfBounds / ErrStartIsGoal)
//  4. obstacles in bounds, off start and goal   (ErrOutOfBounds / ErrBlockedTerminal)
//
// Complexity: O(R×C) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.start == nil {
		return nil, ErrNoStart
	}
	if cfg.goal == nil {
		return nil, ErrNoGoal
	}

	g := &Grid{Rows: rows, Cols: cols}
	if !g.InBounds(*cfg.start) || !g.InBounds(*cfg.goal) {
		return nil, ErrOutOfBounds
	}
	if *cfg.start == *cfg.goal {
		return nil, ErrStartIsGoal
	}

	g.start = *cfg.start
	g.goal = *cfg.goal
	g.Cells = make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		g.Cells[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			g.Cells[r][c] = Cell{Row: r, Col: c, G: InfCost, H: InfCost, F: InfCost}
		}
	}
	g.Cells[g.start.Row][g.start.Col].IsStart = true
	g.Cells[g.goal.Row][g.goal.Col].IsEnd = true

	for _, o := range cfg.obstacles {
		if !g.InBounds(o) {
			return nil, ErrOutOfBounds
		}
		if o == g.start || o == g.goal {
			return nil, ErrBlockedTerminal
		}
		g.Cells[o.Row][o.Col].IsObstacle = true
	}

	return g, nil
}

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Goal returns the goal coordinate.
func (g *Grid) Goal() Coord { return g.goal }

// InBounds reports whether c lies within the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// At returns a pointer to the live cell at c. The caller must not hold the
// pointer across a Reset.
func (g *Grid) At(c Coord) *Cell {
	return &g.Cells[c.Row][c.Col]
}

// Neighbors returns the in-bounds, non-obstacle neighbors of c in the fixed
// up/right/down/left order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) && !g.Cells[n.Row][n.Col].IsObstacle {
			out = append(out, n)
		}
	}

	return out
}

// Snapshot returns a deep copy of the board state at this instant.
// Trace steps store snapshots so that later mutation of the live board
// cannot reach back into already-emitted steps.
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]Cell, g.Cols)
		copy(out[r], g.Cells[r])
	}

	return out
}

// Reset clears all per-run search bookkeeping, leaving the obstacle layout
// and the start/goal cells untouched.
func (g *Grid) Reset() {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			cell := &g.Cells[r][c]
			cell.IsVisited = false
			cell.IsFrontier = false
			cell.IsPath = false
			cell.G, cell.H, cell.F = InfCost, InfCost, InfCost
		}
	}
}

// Obstacles returns the coordinates of every obstacle cell in row-major
// order. Useful for persisting a layout as challenge configuration.
func (g *Grid) Obstacles() []Coord {
	var out []Coord
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c].IsObstacle {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}

	return out
}

// ManhattanDistance returns |Δrow| + |Δcol| between a and b, the exact
// move count on an obstacle-free 4-connected board, hence an admissible
// heuristic for A*.
func ManhattanDistance(a, b Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}
