// Package maze generates obstacle layouts for the pathfinding board.
//
// What:
//
//   - Random(rows, cols, density, opts...) builds a grid.Grid where each
//     non-terminal cell becomes an obstacle with the given probability,
//     drawn from a deterministic seeded stream.
//   - Slalom(rows, cols, opts...) builds a fixed wall-with-alternating-gaps
//     layout that always has exactly one long route; no randomness at all.
//
// Determinism:
//
//   - Same seed ⇒ identical layout, per the module-wide rule that all
//     randomness is applied by the caller before trace generation. Seed 0
//     maps to a fixed default so the zero value is still reproducible.
//
// Solvability:
//
//   - Density-based generation does not guarantee a route from start to
//     goal; an unsolvable board is a legitimate product of Random and a
//     legitimate pathfinding outcome. Callers that need a route opt in via
//     WithEnsureSolvable: generation then retries with derived seeds up to
//     a bounded attempt count and fails with ErrUnsolvableMaze when
//     exhausted. Seed derivation uses a SplitMix64-style mix so retries
//     stay deterministic too.
//
// Errors:
//
//   - ErrBadDensity:     density outside [0, 1).
//   - ErrUnsolvableMaze: no solvable layout within the attempt budget.
//   - grid construction errors propagate unchanged (grid.ErrEmptyGrid etc).
package maze
