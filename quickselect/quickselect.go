package quickselect

import (
	"cmp"
	"fmt"
)

// KthSmallest — expected-linear order statistic selection.
//
// Description:
//
//	Returns the element that would sit at index k if s were sorted
//	ascending (k = 0 is the minimum). The input is copied once and
//	never reordered.
//
// Algorithm Outline (random-pivot three-way quickselect):
//  1. Validate the rank BEFORE any computation: k outside [0, len(s))
//     is a precondition violation, empty input has nothing to select.
//  2. Pick a pivot uniformly from the active window via the LCG.
//  3. Three-way partition the window into <, ==, > pivot regions.
//  4. If k lands in the == region, done; otherwise shrink the window
//     to the side holding k and repeat.
//
// The equal region makes duplicate-heavy inputs cheap: every element
// equal to the pivot settles in one pass.
//
// Errors:
//   - ErrEmptyInput     — len(s) == 0.
//   - ErrRankOutOfRange — k < 0 or k ≥ len(s).
//
// Complexity: expected O(n) time (worst case O(n²) with adversarial
// pivots, vanishingly unlikely under random choice), O(n) memory.
func KthSmallest[T cmp.Ordered](s []T, k int, opts ...Option) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}
	if k < 0 || k >= len(s) {
		return zero, fmt.Errorf("%w: rank %d of %d elements", ErrRankOutOfRange, k, len(s))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := NewLCG(o.Seed)

	work := make([]T, len(s))
	copy(work, s)

	lo, hi := 0, len(work)-1
	for lo < hi {
		pivot := work[lo+g.Intn(hi-lo+1)]
		lt, gt := partition3(work, lo, hi, pivot)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return pivot, nil
		}
	}

	return work[lo], nil
}

// Median returns the lower median: the element of rank ⌊(len-1)/2⌋.
func Median[T cmp.Ordered](s []T, opts ...Option) (T, error) {
	return KthSmallest(s, (len(s)-1)/2, opts...)
}

// partition3 rearranges work[lo..hi] into three regions — smaller than,
// equal to, and greater than pivot — and returns the bounds [lt, gt]
// of the equal region (Dutch national flag).
func partition3[T cmp.Ordered](work []T, lo, hi int, pivot T) (lt, gt int) {
	lt, gt = lo, hi
	i := lo
	for i <= gt {
		switch {
		case work[i] < pivot:
			work[i], work[lt] = work[lt], work[i]
			lt++
			i++
		case work[i] > pivot:
			work[i], work[gt] = work[gt], work[i]
			gt--
		default:
			i++
		}
	}

	return lt, gt
}
