// Package grid models the 2D obstacle board that pathfinding traces run on.
//
// What:
//
//   - Grid wraps a rectangular Rows×Cols board of Cells with exactly one
//     start cell and one goal cell.
//   - Cells carry the obstacle layout plus per-run search bookkeeping
//     (IsVisited, IsFrontier, IsPath, and the G/H/F cost triple).
//   - Snapshot deep-copies the board so a trace step can freeze the exact
//     state at one instant; Reset clears run bookkeeping for a fresh run.
//
// Why:
//
//   - Pathfinding generators mutate the live board while walking it, but a
//     replayable trace needs immutable per-step copies: the Grid owns the
//     live state, Snapshot owns the frozen views.
//
// Complexity:
//
//   - New:      O(R×C) time and memory.
//   - Snapshot: O(R×C) time and memory per call.
//   - Neighbors, InBounds, At: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      zero rows or zero columns requested.
//   - ErrOutOfBounds:    a start, goal, or obstacle coordinate lies outside
//     the board.
//   - ErrNoStart:        no start cell was configured.
//   - ErrNoGoal:         no goal cell was configured.
//   - ErrStartIsGoal:    start and goal name the same cell.
//   - ErrBlockedTerminal: start or goal collides with an obstacle.
package grid
