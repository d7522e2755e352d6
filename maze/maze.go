package maze

import (
	"errors"

	"github.com/katalvlaran/algoviz/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrBadDensity indicates density outside [0, 1).
	ErrBadDensity = errors.New("maze: density must be in [0, 1)")

	// ErrUnsolvableMaze indicates no solvable layout was found within the
	// attempt budget under WithEnsureSolvable.
	ErrUnsolvableMaze = errors.New("maze: no solvable layout within attempt budget")
)

// defaultMaxAttempts bounds WithEnsureSolvable retries.
const defaultMaxAttempts = 16

// Options configures maze generation.
type Options struct {
	// Seed selects the deterministic stream; 0 means the fixed default.
	Seed int64
	// Start and Goal override the default corners (0,0) and (rows-1,cols-1).
	Start, Goal *grid.Coord
	// EnsureSolvable retries with derived seeds until a route exists.
	EnsureSolvable bool
	// MaxAttempts caps EnsureSolvable retries; 0 means the default budget.
	MaxAttempts int
}

// Option configures generation via functional arguments.
type Option func(*Options)

// WithSeed selects the deterministic random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithStart overrides the default start corner.
func WithStart(c grid.Coord) Option {
	return func(o *Options) { o.Start = &c }
}

// WithGoal overrides the default goal corner.
func WithGoal(c grid.Coord) Option {
	return func(o *Options) { o.Goal = &c }
}

// WithEnsureSolvable retries generation with derived seeds until the goal
// is reachable, failing with ErrUnsolvableMaze when the budget runs out.
func WithEnsureSolvable() Option {
	return func(o *Options) { o.EnsureSolvable = true }
}

// WithMaxAttempts caps the WithEnsureSolvable retry budget.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// Random builds a rows×cols board where every cell except start and goal
// becomes an obstacle with probability density, drawn from the seeded
// stream in row-major order so layouts are platform-stable.
func Random(rows, cols int, density float64, opts ...Option) (*grid.Grid, error) {
	if density < 0 || density >= 1 {
		return nil, ErrBadDensity
	}

	o := buildOptions(rows, cols, opts)

	attempts := 1
	if o.EnsureSolvable {
		attempts = o.MaxAttempts
		if attempts <= 0 {
			attempts = defaultMaxAttempts
		}
	}

	seed := o.Seed
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			seed = deriveSeed(o.Seed, uint64(attempt))
		}
		g, err := randomOnce(rows, cols, density, seed, *o.Start, *o.Goal)
		if err != nil {
			return nil, err
		}
		if !o.EnsureSolvable || solvable(g) {
			return g, nil
		}
	}

	return nil, ErrUnsolvableMaze
}

// Slalom builds a deterministic layout of full-width walls on every second
// row, each with a single gap alternating between the right and left edge.
// The only route zig-zags through the gaps, which makes the layout a good
// fixed challenge board.
func Slalom(rows, cols int, opts ...Option) (*grid.Grid, error) {
	o := buildOptions(rows, cols, opts)

	var obstacles []grid.Coord
	for r := 1; r < rows-1; r += 2 {
		gapCol := cols - 1
		if (r/2)%2 == 1 {
			gapCol = 0
		}
		for c := 0; c < cols; c++ {
			if c == gapCol {
				continue
			}
			w := grid.Coord{Row: r, Col: c}
			if w == *o.Start || w == *o.Goal {
				continue
			}
			obstacles = append(obstacles, w)
		}
	}

	return grid.New(rows, cols,
		grid.WithStart(*o.Start),
		grid.WithGoal(*o.Goal),
		grid.WithObstacles(obstacles),
	)
}

// buildOptions applies opts and fills in the default corner terminals.
func buildOptions(rows, cols int, opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Start == nil {
		o.Start = &grid.Coord{Row: 0, Col: 0}
	}
	if o.Goal == nil {
		o.Goal = &grid.Coord{Row: rows - 1, Col: cols - 1}
	}

	return o
}

// randomOnce rolls one layout from one seed.
func randomOnce(rows, cols int, density float64, seed int64, start, goal grid.Coord) (*grid.Grid, error) {
	rng := rngFromSeed(seed)
	var obstacles []grid.Coord
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := grid.Coord{Row: r, Col: c}
			if cell == start || cell == goal {
				continue
			}
			if rng.Float64() < density {
				obstacles = append(obstacles, cell)
			}
		}
	}

	return grid.New(rows, cols,
		grid.WithStart(start),
		grid.WithGoal(goal),
		grid.WithObstacles(obstacles),
	)
}

// solvable flood-fills from start and reports whether the goal is
// reachable. A plain reachability check, deliberately cheaper than
// generating a full pathfinding trace just to answer yes/no.
func solvable(g *grid.Grid) bool {
	goal := g.Goal()
	seen := make(map[grid.Coord]bool, g.Rows*g.Cols)
	queue := []grid.Coord{g.Start()}
	seen[g.Start()] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == goal {
			return true
		}
		for _, n := range g.Neighbors(cur) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}

	return false
}
