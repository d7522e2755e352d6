// Package tree produces replayable step traces for binary-tree operations:
// BST insertion, bottom-up max-heap construction, and the four classic
// traversals (in-order, pre-order, post-order, level-order).
//
// What:
//
//   - BuildBST(values) inserts the values one by one, emitting a Step per
//     comparison and per attachment, and returns the finished Tree.
//   - BuildMaxHeap(values) runs Floyd's bottom-up heapify over the array,
//     emitting a Step per parent/child comparison and per swap.
//   - Traverse(tr, algorithm) walks an already-built Tree with an explicit
//     stack (or a queue for level order), emitting a Step per visited node
//     with the accumulated output sequence so far.
//
// Why:
//
//   - Traversals deliberately require a Tree produced by a prior BuildBST
//     run: traversing nothing is undefined input and fails fast with
//     ErrNilTree rather than yielding an empty trace.
//   - The recursive traversals are simulated with an explicit stack so that
//     every visit is a discrete, replayable step in execution order.
//
// Node addressing:
//
//   - Nodes live in a flat slice in insertion order; children are slice
//     indices (NoChild when absent) and index 0 is the root. Snapshots are
//     therefore plain value copies with no pointer aliasing.
//
// Errors:
//
//   - ErrEmptyInput:       no values supplied to a build operation.
//   - ErrNilTree:          a traversal was requested without a built tree.
//   - ErrUnknownAlgorithm: the algorithm key has no generator.
package tree
