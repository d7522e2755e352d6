// Package sorting produces replayable step traces for the classic
// comparison sorts: bubble, selection, insertion, merge, and quick sort.
//
// What:
//
//   - Generate(values, algorithm) runs the chosen sort in an instrumented
//     way and returns the full []Step trace: one Step per primitive
//     comparison or element move, in execution order.
//   - Step 0 is always the untouched input; the last Step carries
//     IsComplete and the fully sorted array.
//   - Each Step snapshots the array, the indices being compared or
//     swapped, the settled-index set, and the running counters.
//
// Why:
//
//   - A learner scrubbing a trace needs to see every comparison and every
//     move, not the end result. The generators therefore trade instruction
//     count for pedagogical fidelity: the trace reveals each algorithm's
//     true invariant (bubble and selection settle the largest elements at
//     the back, insertion grows a sorted prefix at the front, quick sort
//     pins one pivot per partition).
//
// Determinism:
//
//   - Traces are pure functions of the input slice and algorithm key.
//     No clock, no randomness, no ambient state. Identical input yields an
//     identical trace, which is what makes backward scrubbing exact.
//
// Complexity:
//
//   - Trace length is Θ(comparisons + moves) of the underlying algorithm,
//     so O(n²) steps for the quadratic sorts and O(n log n) for merge sort.
//     Each Step stores an O(n) array snapshot.
//
// Errors:
//
//   - ErrEmptyInput:       the input slice is empty.
//   - ErrUnknownAlgorithm: the algorithm key has no registered generator.
package sorting
