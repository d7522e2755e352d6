package tree

import "fmt"

// BuildMaxHeap runs Floyd's bottom-up heapify over a private copy of
// values, emitting one Step per parent/child comparison and per swap.
// The final step's Heap satisfies the max-heap property.
//
// Returns ErrEmptyInput for an empty slice.
func BuildMaxHeap(values []int) ([]Step, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	h := &heapBuilder{arr: make([]int, len(values))}
	copy(h.arr, values)
	h.emit("initial array", NoNode, nil)

	// Sift down every internal node, last parent first.
	for i := len(h.arr)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	h.emit("max-heap built", NoNode, nil)
	h.steps[len(h.steps)-1].IsComplete = true

	return h.steps, nil
}

// heapBuilder accumulates the trace while the array is heapified.
type heapBuilder struct {
	arr         []int
	comparisons int
	operations  int
	steps       []Step
}

// siftDown pushes arr[i] toward the leaves until both children are smaller.
// Each child comparison is one step; each swap one more.
func (h *heapBuilder) siftDown(i int) {
	n := len(h.arr)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2

		if left < n {
			h.comparisons++
			h.emit(fmt.Sprintf("compare parent a[%d]=%d with left child a[%d]=%d", largest, h.arr[largest], left, h.arr[left]), i, []int{largest, left})
			if h.arr[left] > h.arr[largest] {
				largest = left
			}
		}
		if right < n {
			h.comparisons++
			h.emit(fmt.Sprintf("compare a[%d]=%d with right child a[%d]=%d", largest, h.arr[largest], right, h.arr[right]), i, []int{largest, right})
			if h.arr[right] > h.arr[largest] {
				largest = right
			}
		}

		if largest == i {
			return
		}
		h.arr[i], h.arr[largest] = h.arr[largest], h.arr[i]
		h.operations++
		h.emit(fmt.Sprintf("swap a[%d] and a[%d]", i, largest), largest, nil)
		i = largest
	}
}

// emit appends one Step snapshotting the heap array.
func (h *heapBuilder) emit(op string, visiting int, comparing []int) {
	arr := make([]int, len(h.arr))
	copy(arr, h.arr)

	h.steps = append(h.steps, Step{
		Heap:        arr,
		Visiting:    visiting,
		Comparing:   comparing,
		Operation:   op,
		Comparisons: h.comparisons,
		Operations:  h.operations,
	})
}
