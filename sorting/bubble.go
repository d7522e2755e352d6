package sorting

// bubbleSort performs the canonical full-pass bubble sort: pass k bubbles
// the largest unsettled element to index n-1-k, so Sorted grows from the
// back one index per pass. No early-exit: the trace deliberately shows
// every comparison of every pass, and the comparison count is the fixed
// n(n-1)/2 learners can predict.
func bubbleSort(r *recorder) {
	n := len(r.arr)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			if r.compare(j, j+1) {
				r.swap(j, j+1)
			}
		}
		// The largest element of the unsettled range is now in place.
		r.markSorted(n - 1 - i)
	}
	if n > 0 {
		r.markSorted(0)
	}
}
