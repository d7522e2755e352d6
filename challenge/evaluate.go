package challenge

// NoPathFailure is reported when the run never reached the goal; a
// challenge can only pass on a found path.
const NoPathFailure = "no_path"

// StarBands holds the ratio cut-offs for the star rating, where ratio =
// nodesVisited / optimalNodes. At-or-below ThreeAt earns 3 stars, then
// TwoAt, then OneAt; above OneAt earns none. Thresholds are configuration,
// not engine logic.
type StarBands struct {
	ThreeAt float64
	TwoAt   float64
	OneAt   float64
}

// DefaultStarBands: full stars at-or-below optimal, degrading in fixed
// bands above it.
func DefaultStarBands() StarBands {
	return StarBands{ThreeAt: 1.0, TwoAt: 1.5, OneAt: 2.0}
}

// Option configures evaluation via functional arguments.
type Option func(*evalOptions)

type evalOptions struct {
	bands StarBands
}

// WithStarBands overrides the default star-rating cut-offs.
func WithStarBands(b StarBands) Option {
	return func(o *evalOptions) { o.bands = b }
}

// Evaluate checks every constraint of ch independently against m and
// returns the verdict. It is pure and total: no error return, no
// mutation, and identical arguments always yield identical results.
// Malformed metrics (zero nodes visited, empty algorithm key) simply fail
// the constraints that look at them.
//
// The run passes iff all constraints hold and a path was found
// (PathLength > 0). Stars are 0 for a failed run; for a passed run they
// follow the configured StarBands over nodesVisited/optimalNodes.
func Evaluate(ch Challenge, m Metrics, opts ...Option) Result {
	o := evalOptions{bands: DefaultStarBands()}
	for _, opt := range opts {
		opt(&o)
	}

	var failures []string
	for _, c := range ch.Constraints {
		if !satisfied(c, ch, m) {
			failures = append(failures, string(c.Kind))
		}
	}
	if m.PathLength <= 0 {
		failures = append(failures, NoPathFailure)
	}

	res := Result{Passed: len(failures) == 0, Failures: failures}
	if res.Passed {
		res.Stars = stars(ch, m, o.bands)
	}

	return res
}

// satisfied reports whether one constraint holds.
func satisfied(c Constraint, ch Challenge, m Metrics) bool {
	switch c.Kind {
	case MaxNodes:
		return m.NodesVisited <= c.Limit
	case RequiredAlgorithm:
		return m.Algorithm == c.Algorithm
	case MaxPathLength:
		return m.PathLength <= c.Limit
	case EfficiencyPercent:
		if m.NodesVisited <= 0 {
			return false
		}
		return ch.OptimalNodes*100 >= c.Limit*m.NodesVisited
	default:
		// Unknown kinds cannot be satisfied; the loader rejects them, so
		// this only triggers for hand-built configs.
		return false
	}
}

// stars maps the visit ratio onto the configured bands. A challenge with
// no optimal-nodes baseline rates full stars on any passing run.
func stars(ch Challenge, m Metrics, b StarBands) int {
	if ch.OptimalNodes <= 0 {
		return 3
	}
	ratio := float64(m.NodesVisited) / float64(ch.OptimalNodes)
	switch {
	case ratio <= b.ThreeAt:
		return 3
	case ratio <= b.TwoAt:
		return 2
	case ratio <= b.OneAt:
		return 1
	default:
		return 0
	}
}
