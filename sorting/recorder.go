package sorting

import "fmt"

// Generate runs the instrumented sort selected by algorithm over a private
// copy of values and returns the complete trace.
//
// Validation order:
//  1. values must be non-empty          (ErrEmptyInput)
//  2. algorithm must be registered      (ErrUnknownAlgorithm)
//
// The returned trace always starts with the untouched input and ends with
// an IsComplete step whose Sorted set covers the full index range.
func Generate(values []int, algorithm string) ([]Step, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	gen, ok := registry[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	r := newRecorder(values)
	r.emit("initial array", nil, nil)
	gen(r)
	r.finish()

	return r.steps, nil
}

// recorder owns the working array and accumulates the trace. All mutation
// of the array during a run goes through compare/swap/assign so that every
// primitive operation lands in exactly one Step.
type recorder struct {
	arr    []int
	sorted []bool
	pivot  int

	comparisons int
	swaps       int
	steps       []Step
}

func newRecorder(values []int) *recorder {
	arr := make([]int, len(values))
	copy(arr, values)

	return &recorder{
		arr:    arr,
		sorted: make([]bool, len(arr)),
		pivot:  NoPivot,
	}
}

// emit appends one Step snapshotting the current state.
func (r *recorder) emit(op string, comparing, swapping []int) {
	arr := make([]int, len(r.arr))
	copy(arr, r.arr)

	r.steps = append(r.steps, Step{
		Array:       arr,
		Comparing:   comparing,
		Swapping:    swapping,
		Sorted:      r.sortedIndices(),
		Pivot:       r.pivot,
		Operation:   op,
		Comparisons: r.comparisons,
		Swaps:       r.swaps,
	})
}

// compare counts and records one comparison between indices i and j.
// Returns true when arr[i] > arr[j], the out-of-order case every
// ascending sort here reacts to.
func (r *recorder) compare(i, j int) bool {
	r.comparisons++
	r.emit(fmt.Sprintf("compare a[%d]=%d with a[%d]=%d", i, r.arr[i], j, r.arr[j]), []int{i, j}, nil)

	return r.arr[i] > r.arr[j]
}

// swap exchanges arr[i] and arr[j] and records the move.
func (r *recorder) swap(i, j int) {
	r.arr[i], r.arr[j] = r.arr[j], r.arr[i]
	r.swaps++
	r.emit(fmt.Sprintf("swap a[%d] and a[%d]", i, j), nil, []int{i, j})
}

// assign overwrites arr[i] with v, counting it as one move. Used by merge
// sort, which copies elements rather than exchanging them.
func (r *recorder) assign(i, v int) {
	r.arr[i] = v
	r.swaps++
	r.emit(fmt.Sprintf("write %d into a[%d]", v, i), nil, []int{i})
}

// markSorted records that index i has reached its final position. The mark
// becomes visible on the next emitted step; Sorted never loses a member.
func (r *recorder) markSorted(i int) {
	r.sorted[i] = true
}

// sortedIndices returns the settled indices in ascending order.
func (r *recorder) sortedIndices() []int {
	out := make([]int, 0, len(r.sorted))
	for i, ok := range r.sorted {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// finish settles any indices not yet marked and emits the terminal step.
func (r *recorder) finish() {
	for i := range r.sorted {
		r.sorted[i] = true
	}
	r.pivot = NoPivot
	r.emit("array sorted", nil, nil)
	r.steps[len(r.steps)-1].IsComplete = true
}
