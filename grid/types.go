// Package grid defines the board types, options, and sentinel errors
// shared by the pathfinding trace generators.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the requested board has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: board must have at least one row and one column")

	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrNoStart indicates the board was built without a start cell.
	ErrNoStart = errors.New("grid: exactly one start cell required")

	// ErrNoGoal indicates the board was built without a goal cell.
	ErrNoGoal = errors.New("grid: exactly one goal cell required")

	// ErrStartIsGoal indicates start and goal name the same cell.
	ErrStartIsGoal = errors.New("grid: start and goal must be distinct cells")

	// ErrBlockedTerminal indicates an obstacle covers the start or goal cell.
	ErrBlockedTerminal = errors.New("grid: start and goal cells cannot be obstacles")
)

// InfCost marks a cell cost that has not been computed yet.
// Chosen well below math.MaxInt so that G+H can never overflow.
const InfCost = math.MaxInt32

// Coord addresses a single cell by row and column.
type Coord struct {
	Row, Col int
}

// Cell is one board square. Layout fields (IsStart, IsEnd, IsObstacle) are
// fixed at construction; search fields (IsVisited, IsFrontier, IsPath, G, H,
// F) are mutated only by the generator that owns the current run and are
// cleared by Reset.
type Cell struct {
	Row, Col   int
	IsStart    bool
	IsEnd      bool
	IsObstacle bool

	IsVisited  bool
	IsFrontier bool
	IsPath     bool

	// G is cost-so-far from start, H the heuristic estimate to goal,
	// F their sum. All three start at InfCost.
	G, H, F int
}

// Option configures Grid construction via functional arguments.
type Option func(*config)

// config accumulates construction inputs before validation.
type config struct {
	start     *Coord
	goal      *Coord
	obstacles []Coord
}

// WithStart places the single start cell at c.
func WithStart(c Coord) Option {
	return func(cfg *config) {
		cfg.start = &c
	}
}

// WithGoal places the single goal cell at c.
func WithGoal(c Coord) Option {
	return func(cfg *config) {
		cfg.goal = &c
	}
}

// WithObstacles marks every listed coordinate as an obstacle.
// Duplicate coordinates are harmless.
func WithObstacles(obstacles []Coord) Option {
	return func(cfg *config) {
		cfg.obstacles = append(cfg.obstacles, obstacles...)
	}
}
