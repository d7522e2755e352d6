// Package challenge defines the challenge/constraint types and the
// sentinel errors of the YAML loader.
package challenge

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/grid"
)

// Sentinel errors for challenge loading. Evaluate itself never errors.
var (
	// ErrMissingID indicates a loaded challenge without an id.
	ErrMissingID = errors.New("challenge: challenge id must not be empty")

	// ErrUnknownConstraint indicates an unrecognized constraint kind.
	ErrUnknownConstraint = errors.New("challenge: unknown constraint kind")

	// ErrNotFound indicates no library challenge carries the requested id.
	ErrNotFound = errors.New("challenge: no challenge with that id")
)

// ConstraintKind names one rule a finished run is checked against.
type ConstraintKind string

// The four supported constraint kinds. The kind string doubles as the
// failure name reported by Evaluate.
const (
	MaxNodes          ConstraintKind = "max_nodes"
	RequiredAlgorithm ConstraintKind = "required_algorithm"
	MaxPathLength     ConstraintKind = "max_path_length"
	EfficiencyPercent ConstraintKind = "efficiency_percent"
)

// Constraint is one rule. Limit carries the numeric bound for the three
// numeric kinds; Algorithm carries the key for required_algorithm.
type Constraint struct {
	Kind      ConstraintKind
	Limit     int
	Algorithm string
}

// UnmarshalYAML decodes the single-key map form used in challenge files,
// e.g. `- max_nodes: 10` or `- required_algorithm: astar`.
func (c *Constraint) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]yaml.Node
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("challenge: constraint must be a single-key map: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("challenge: constraint must have exactly one key, got %d", len(raw))
	}

	for key, val := range raw {
		c.Kind = ConstraintKind(key)
		switch c.Kind {
		case RequiredAlgorithm:
			if err := val.Decode(&c.Algorithm); err != nil {
				return fmt.Errorf("challenge: %s value: %w", key, err)
			}
		case MaxNodes, MaxPathLength, EfficiencyPercent:
			if err := val.Decode(&c.Limit); err != nil {
				return fmt.Errorf("challenge: %s value: %w", key, err)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownConstraint, key)
		}
	}

	return nil
}

// MarshalYAML emits the same single-key map form.
func (c Constraint) MarshalYAML() (any, error) {
	if c.Kind == RequiredAlgorithm {
		return map[string]string{string(c.Kind): c.Algorithm}, nil
	}

	return map[string]int{string(c.Kind): c.Limit}, nil
}

// Challenge is one named puzzle: a board layout plus the rules a run must
// satisfy. Static configuration, never mutated at runtime.
type Challenge struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	Rows           int          `yaml:"rows"`
	Cols           int          `yaml:"cols"`
	Start          grid.Coord   `yaml:"start"`
	Goal           grid.Coord   `yaml:"goal"`
	Obstacles      []grid.Coord `yaml:"obstacles,omitempty"`
	AlgorithmFocus string       `yaml:"algorithm_focus,omitempty"`
	Constraints    []Constraint `yaml:"constraints,omitempty"`
	OptimalNodes   int          `yaml:"optimal_nodes"`
	OptimalPath    int          `yaml:"optimal_path"`
	XPReward       int          `yaml:"xp_reward"`
	Hints          []string     `yaml:"hints,omitempty"`
}

// Grid builds a fresh board for one run of this challenge.
func (c Challenge) Grid() (*grid.Grid, error) {
	return grid.New(c.Rows, c.Cols,
		grid.WithStart(c.Start),
		grid.WithGoal(c.Goal),
		grid.WithObstacles(c.Obstacles),
	)
}

// Metrics summarizes one finished pathfinding run.
type Metrics struct {
	NodesVisited int
	PathLength   int
	Algorithm    string
}

// Result is the evaluator's verdict. Failures lists the kind string of
// every constraint that did not hold, plus "no_path" when the run never
// reached the goal.
type Result struct {
	Passed   bool
	Failures []string
	Stars    int
}
