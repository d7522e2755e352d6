package sorting

// quickSort uses the Lomuto partition scheme: the pivot is the last element
// of the range, the scanning pointer walks lo..hi-1 comparing against it,
// and the closing swap drops the pivot into its final slot. Sorted records
// each pivot's resting index as it is fixed: scattered single indices, not
// contiguous ranges.
func quickSort(r *recorder) {
	quickRange(r, 0, len(r.arr)-1)
}

// quickRange sorts arr[lo..hi] inclusive.
func quickRange(r *recorder, lo, hi int) {
	if lo > hi {
		return
	}
	if lo == hi {
		// Single-element range: already in final position.
		r.markSorted(lo)
		return
	}
	p := partition(r, lo, hi)
	quickRange(r, lo, p-1)
	quickRange(r, p+1, hi)
}

// partition runs one Lomuto pass over arr[lo..hi] with arr[hi] as pivot.
// Pivot is exposed on every step of the pass; Comparing holds the scanning
// pointer against the pivot index.
func partition(r *recorder, lo, hi int) int {
	prev := r.pivot
	r.pivot = hi
	defer func() { r.pivot = prev }()

	i := lo - 1
	for j := lo; j < hi; j++ {
		// compare(hi, j) is true when pivot > arr[j]: element belongs left.
		if r.compare(hi, j) {
			i++
			if i != j {
				r.swap(i, j)
			}
		}
	}
	// Pivot settles at i+1; the mark is visible on the closing swap step.
	r.markSorted(i + 1)
	if i+1 != hi {
		r.swap(i+1, hi)
	}

	return i + 1
}
