// Package challenge holds the named challenge library and the constraint
// evaluator that scores a finished pathfinding run.
//
// What:
//
//   - Challenge pairs a starting board layout with a constraint list, an
//     optimal-nodes baseline, an XP reward, and hints. Challenges are
//     static configuration: created at build time (Library) or loaded from
//     YAML (LoadFile), never mutated at runtime.
//   - Evaluate(ch, metrics, opts...) checks every constraint independently
//     and returns {Passed, Failures, Stars}. A run passes iff all
//     constraints hold and a path was actually found.
//   - Star ratings come from configurable ratio bands over
//     nodesVisited/optimalNodes; thresholds are configuration
//     (StarBands), not engine logic.
//
// Why:
//
//   - Evaluation is pure and total: it never returns an error, and
//     malformed metrics simply fail the relevant constraint. Calling it
//     twice with identical arguments yields identical results.
//
// Constraint kinds:
//
//   - max_nodes:          nodesVisited ≤ value
//   - required_algorithm: algorithm key must match
//   - max_path_length:    pathLength ≤ value
//   - efficiency_percent: optimalNodes/nodesVisited × 100 ≥ value
package challenge
