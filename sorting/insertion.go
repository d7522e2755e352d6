package sorting

// insertionSort sinks each element into the sorted prefix via adjacent
// swaps, so every move is visible as a single-position shift rather than a
// long-range teleport. After outer iteration i the prefix [0..i] is sorted
// relative to itself; Sorted is exactly that prefix and grows from the
// front.
func insertionSort(r *recorder) {
	n := len(r.arr)
	r.markSorted(0)
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			if !r.compare(j-1, j) {
				break
			}
			r.swap(j-1, j)
		}
		r.markSorted(i)
	}
}
