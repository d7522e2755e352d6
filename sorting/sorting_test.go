package sorting_test

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/sorting"
)

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

func TestGenerate_EmptyInput(t *testing.T) {
	for _, algo := range sorting.Algorithms() {
		if _, err := sorting.Generate(nil, algo); !errors.Is(err, sorting.ErrEmptyInput) {
			t.Errorf("Generate(nil, %q) error = %v; want ErrEmptyInput", algo, err)
		}
	}
}

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	_, err := sorting.Generate([]int{1, 2}, "bogo")
	if !errors.Is(err, sorting.ErrUnknownAlgorithm) {
		t.Fatalf("Generate error = %v; want ErrUnknownAlgorithm", err)
	}
}

//----------------------------------------------------------------------------//
// Trace shape invariants, all algorithms
//----------------------------------------------------------------------------//

// TestTraceInvariants checks, for every algorithm over seeded random arrays:
// step 0 is the untouched input, the last step is the only IsComplete step,
// the final array is ascending, Sorted accumulates monotonically and ends
// as the full index range, and counters never decrease.
func TestTraceInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, algo := range sorting.Algorithms() {
		for _, n := range []int{1, 2, 3, 7, 16} {
			input := make([]int, n)
			for i := range input {
				input[i] = rng.Intn(100)
			}

			trace, err := sorting.Generate(input, algo)
			require.NoErrorf(t, err, "%s n=%d", algo, n)
			require.NotEmptyf(t, trace, "%s n=%d", algo, n)

			require.Equal(t, input, trace[0].Array, "%s: step 0 must be the untouched input", algo)

			final := trace[len(trace)-1]
			require.True(t, final.IsComplete, "%s: last step must be IsComplete", algo)
			require.True(t, sort.IntsAreSorted(final.Array), "%s: final array not sorted: %v", algo, final.Array)
			require.Len(t, final.Sorted, n, "%s: final Sorted must cover the full range", algo)

			prevSorted := map[int]bool{}
			prevComparisons, prevSwaps := 0, 0
			for si, step := range trace {
				require.False(t, step.IsComplete && si != len(trace)-1,
					"%s: IsComplete on non-final step %d", algo, si)
				require.GreaterOrEqual(t, step.Comparisons, prevComparisons, "%s: comparisons decreased at step %d", algo, si)
				require.GreaterOrEqual(t, step.Swaps, prevSwaps, "%s: swaps decreased at step %d", algo, si)
				prevComparisons, prevSwaps = step.Comparisons, step.Swaps

				seen := map[int]bool{}
				for _, idx := range step.Sorted {
					seen[idx] = true
				}
				for idx := range prevSorted {
					require.True(t, seen[idx], "%s: Sorted lost index %d at step %d", algo, idx, si)
				}
				prevSorted = seen
			}
		}
	}
}

// TestGenerate_Deterministic verifies byte-identical traces for identical
// input: the property that makes backward scrubbing exact.
func TestGenerate_Deterministic(t *testing.T) {
	input := []int{9, 1, 8, 2, 7, 3, 6, 4, 5}
	for _, algo := range sorting.Algorithms() {
		a, err := sorting.Generate(input, algo)
		require.NoError(t, err)
		b, err := sorting.Generate(input, algo)
		require.NoError(t, err)
		require.True(t, reflect.DeepEqual(a, b), "%s: two runs over identical input differ", algo)
	}
}

//----------------------------------------------------------------------------//
// Reference operation counts
//----------------------------------------------------------------------------//

// referenceCounts runs an uninstrumented twin of each algorithm and returns
// its comparison and move counts.
func referenceCounts(values []int, algo string) (comparisons, moves int) {
	arr := make([]int, len(values))
	copy(arr, values)
	n := len(arr)

	switch algo {
	case sorting.Bubble:
		for i := 0; i < n-1; i++ {
			for j := 0; j < n-1-i; j++ {
				comparisons++
				if arr[j] > arr[j+1] {
					arr[j], arr[j+1] = arr[j+1], arr[j]
					moves++
				}
			}
		}
	case sorting.Selection:
		for i := n - 1; i > 0; i-- {
			max := 0
			for j := 1; j <= i; j++ {
				comparisons++
				if arr[j] > arr[max] {
					max = j
				}
			}
			if max != i {
				arr[max], arr[i] = arr[i], arr[max]
				moves++
			}
		}
	case sorting.Insertion:
		for i := 1; i < n; i++ {
			for j := i; j > 0; j-- {
				comparisons++
				if arr[j-1] <= arr[j] {
					break
				}
				arr[j-1], arr[j] = arr[j], arr[j-1]
				moves++
			}
		}
	}

	return comparisons, moves
}

// TestOperationCounts pins the quadratic sorts to their exact reference
// comparison/swap counts on random input.
func TestOperationCounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, algo := range []string{sorting.Bubble, sorting.Selection, sorting.Insertion} {
		for trial := 0; trial < 5; trial++ {
			input := make([]int, 12)
			for i := range input {
				input[i] = rng.Intn(50)
			}

			wantCmp, wantMoves := referenceCounts(input, algo)
			trace, err := sorting.Generate(input, algo)
			require.NoError(t, err)

			final := trace[len(trace)-1]
			require.Equal(t, wantCmp, final.Comparisons, "%s: comparisons on %v", algo, input)
			require.Equal(t, wantMoves, final.Swaps, "%s: swaps on %v", algo, input)
		}
	}
}

//----------------------------------------------------------------------------//
// Per-algorithm behavior
//----------------------------------------------------------------------------//

// TestBubble_Scenario pins the worked example: [5,3,8,1] sorts to [1,3,5,8]
// with the full index range settled.
func TestBubble_Scenario(t *testing.T) {
	trace, err := sorting.Generate([]int{5, 3, 8, 1}, sorting.Bubble)
	require.NoError(t, err)

	final := trace[len(trace)-1]
	require.Equal(t, []int{1, 3, 5, 8}, final.Array)
	require.Equal(t, []int{0, 1, 2, 3}, final.Sorted)
	// Full-pass bubble over n=4: exactly n(n-1)/2 = 6 comparisons.
	require.Equal(t, 6, final.Comparisons)
}

// TestBubble_SortedGrowsFromBack checks that bubble settles the largest
// index first.
func TestBubble_SortedGrowsFromBack(t *testing.T) {
	trace, err := sorting.Generate([]int{4, 3, 2, 1}, sorting.Bubble)
	require.NoError(t, err)

	firstSettled := -1
	for _, step := range trace {
		if len(step.Sorted) > 0 {
			firstSettled = step.Sorted[len(step.Sorted)-1]
			break
		}
	}
	require.Equal(t, 3, firstSettled, "bubble must settle the last index first")
}

// TestSelection_SortedGrowsFromBack checks that selection settles the
// largest element at the last index first, like bubble.
func TestSelection_SortedGrowsFromBack(t *testing.T) {
	trace, err := sorting.Generate([]int{4, 3, 2, 1}, sorting.Selection)
	require.NoError(t, err)

	firstSettled := -1
	for _, step := range trace {
		if len(step.Sorted) > 0 {
			firstSettled = step.Sorted[len(step.Sorted)-1]
			break
		}
	}
	require.Equal(t, 3, firstSettled, "selection must settle the last index first")
}

// TestInsertion_SortedIsPrefix checks that insertion's settled set is always
// a contiguous prefix.
func TestInsertion_SortedIsPrefix(t *testing.T) {
	trace, err := sorting.Generate([]int{3, 1, 4, 1, 5}, sorting.Insertion)
	require.NoError(t, err)

	for si, step := range trace {
		for k, idx := range step.Sorted {
			require.Equalf(t, k, idx, "step %d: Sorted %v is not a prefix", si, step.Sorted)
		}
	}
}

// TestMerge_AbsoluteIndices verifies that merge-phase comparisons always
// carry in-range absolute indices referring to the values actually compared.
func TestMerge_AbsoluteIndices(t *testing.T) {
	input := []int{8, 3, 5, 1, 9, 2}
	trace, err := sorting.Generate(input, sorting.Merge)
	require.NoError(t, err)

	sawComparison := false
	for _, step := range trace {
		if len(step.Comparing) == 0 {
			continue
		}
		sawComparison = true
		require.Len(t, step.Comparing, 2)
		for _, idx := range step.Comparing {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(input))
		}
	}
	require.True(t, sawComparison, "merge trace contains no comparison steps")
}

// TestQuick_PivotTracking checks that every comparison during a partition
// exposes the pivot index, and that Sorted collects pivot resting positions
// one at a time rather than contiguous ranges.
func TestQuick_PivotTracking(t *testing.T) {
	trace, err := sorting.Generate([]int{7, 2, 9, 4, 3, 8, 1}, sorting.Quick)
	require.NoError(t, err)

	sawPivot := false
	for _, step := range trace {
		if len(step.Comparing) == 2 {
			require.NotEqual(t, sorting.NoPivot, step.Pivot, "comparison step without a pivot")
			require.Equal(t, step.Pivot, step.Comparing[0], "quick compares the pivot against the scan pointer")
			sawPivot = true
		}
	}
	require.True(t, sawPivot)

	// The first settled index is a single pivot resting position, not a
	// contiguous range.
	for _, step := range trace {
		if len(step.Sorted) > 0 {
			require.Len(t, step.Sorted, 1, "quick settles one pivot at a time")
			break
		}
	}
}
