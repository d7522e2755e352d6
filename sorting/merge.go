package sorting

// mergeSort is the recursive divide-and-conquer sort. Comparisons happen
// only while merging two pre-sorted half-ranges, and every Step carries
// absolute array indices for the two candidates, never sub-array-relative
// ones. Writes back into the array are individual assign steps.
func mergeSort(r *recorder) {
	mergeRange(r, 0, len(r.arr)-1)
}

// mergeRange sorts arr[lo..hi] inclusive.
func mergeRange(r *recorder, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeRange(r, lo, mid)
	mergeRange(r, mid+1, hi)
	merge(r, lo, mid, hi)
}

// merge combines the sorted ranges arr[lo..mid] and arr[mid+1..hi].
// It compares through the recorder (absolute indices i and j), collects the
// merged order into a scratch buffer, then writes it back one assign step
// at a time. During the top-level merge every written index is final, so
// those indices join Sorted as they land.
func merge(r *recorder, lo, mid, hi int) {
	merged := make([]int, 0, hi-lo+1)
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		// compare reports arr[i] > arr[j]; take the left element on ties
		// to keep the merge stable.
		if r.compare(i, j) {
			merged = append(merged, r.arr[j])
			j++
		} else {
			merged = append(merged, r.arr[i])
			i++
		}
	}
	for ; i <= mid; i++ {
		merged = append(merged, r.arr[i])
	}
	for ; j <= hi; j++ {
		merged = append(merged, r.arr[j])
	}

	topLevel := lo == 0 && hi == len(r.arr)-1
	for k, v := range merged {
		if topLevel {
			r.markSorted(lo + k)
		}
		r.assign(lo+k, v)
	}
}
