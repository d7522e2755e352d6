// Package pathfind produces replayable step traces for BFS, Dijkstra, and
// A* over a grid.Grid obstacle board.
//
// What:
//
//   - Generate(g, algorithm) walks the board from its start cell toward its
//     goal cell and returns the full []Step trace: one Step per primitive
//     operation (visit, discovery, cost update, path marking).
//   - The three algorithms share one frontier abstraction (a min-heap
//     parameterized by pop order), so they differ only in how candidates
//     are prioritized:
//     BFS       insertion order (FIFO; shortest path in moves on an
//     unweighted board)
//     Dijkstra  cost-so-far G, ties by insertion order (minimum-cost path)
//     A*        F = G + H with Manhattan-distance H, ties by lower H then
//     insertion order
//   - On reaching the goal the path is reconstructed by walking back-
//     pointers; if the frontier drains first, the trace completes normally
//     with an empty path. Unreachable is an outcome, not an error.
//
// Why:
//
//   - Manhattan distance never overestimates the true remaining cost on a
//     4-connected board, so A* with it is admissible and consistent: it can
//     never visit more nodes than Dijkstra on the same board. The trace
//     makes that visible (and the tests pin it).
//
// Determinism:
//
//   - Expansion order is fully determined by the board: neighbor iteration
//     follows grid's fixed up/right/down/left order and every heap tie
//     falls back to insertion sequence. Identical boards yield identical
//     traces.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the heap-ordered algorithms,
//     O(V + E) for BFS, with V = R×C cells.
//   - Space: O(V) live state plus O(V) per emitted Step snapshot.
//
// Errors:
//
//   - ErrNilGrid:          a nil board was passed.
//   - ErrUnknownAlgorithm: the algorithm key has no registered strategy.
package pathfind
