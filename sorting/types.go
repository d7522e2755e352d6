// Package sorting defines the Step shape, algorithm keys, and sentinel
// errors for the sorting trace generators.
package sorting

import "errors"

// Sentinel errors for trace generation.
var (
	// ErrEmptyInput is returned when the input slice has no elements.
	ErrEmptyInput = errors.New("sorting: input array must not be empty")

	// ErrUnknownAlgorithm is returned for an algorithm key with no generator.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm key")
)

// Algorithm keys accepted by Generate.
const (
	Bubble    = "bubble"
	Selection = "selection"
	Insertion = "insertion"
	Merge     = "merge"
	Quick     = "quick"
)

// NoPivot is the Pivot value on steps outside a quick-sort partition.
const NoPivot = -1

// Step is one immutable snapshot of sort state, corresponding to exactly
// one primitive operation (a comparison or an element move).
//
// Index-set semantics per algorithm:
//   - Comparing: the two indices under comparison (scanning pointer vs
//     pivot for quick sort, merge candidates in absolute indices for
//     merge sort).
//   - Swapping: the indices written by this step, empty on comparisons.
//   - Sorted: indices whose final position is settled; grows from the back
//     for bubble/selection, is the prefix for insertion, the set of fixed
//     pivots for quick sort, and the top-level merged prefix for merge
//     sort. Always ascending, never loses a member.
//   - Pivot: the active partition's pivot index, NoPivot outside quick sort.
type Step struct {
	Array     []int
	Comparing []int
	Swapping  []int
	Sorted    []int
	Pivot     int

	Operation   string
	Comparisons int
	Swaps       int
	IsComplete  bool
}

// generator mutates a recorder holding the working array and emits steps.
type generator func(*recorder)

// registry maps algorithm keys to their instrumented implementations.
var registry = map[string]generator{
	Bubble:    bubbleSort,
	Selection: selectionSort,
	Insertion: insertionSort,
	Merge:     mergeSort,
	Quick:     quickSort,
}

// Algorithms returns the registered algorithm keys in stable order.
func Algorithms() []string {
	return []string{Bubble, Selection, Insertion, Merge, Quick}
}
