package sorting

// selectionSort scans the unsettled prefix for its maximum and swaps it to
// the back of that prefix, so Sorted grows from the end, mirroring bubble.
// Comparing holds [candidate, currentMax]; one settled index per outer
// pass. Exactly n(n-1)/2 comparisons and at most n-1 swaps.
func selectionSort(r *recorder) {
	n := len(r.arr)
	for i := n - 1; i > 0; i-- {
		max := 0
		for j := 1; j <= i; j++ {
			if r.compare(j, max) {
				max = j
			}
		}
		if max != i {
			r.swap(max, i)
		}
		r.markSorted(i)
	}
	r.markSorted(0)
}
