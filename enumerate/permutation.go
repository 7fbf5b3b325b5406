package enumerate

import "cmp"

// NextPermutation — the lexicographic successor of a sequence.
//
// Description:
//
//	Returns the lexicographically smallest sequence that is strictly
//	greater than s under the same multiset of elements, or ok == false
//	when s is already maximal (fully non-increasing). The input is not
//	mutated; the successor is a fresh slice.
//
// Algorithm Outline (classic next-permutation):
//  1. Scan adjacent pairs from the right; find the rightmost pivot
//     with s[pivot] < s[pivot+1]. None ⇒ no successor.
//  2. Find the rightmost position next > pivot with s[next] > s[pivot]
//     (it exists: the suffix after pivot is non-increasing).
//  3. Swap s[pivot] and s[next].
//  4. Reverse the suffix strictly after pivot.
//
// Both comparisons are strict, so equal elements are never swap
// candidates against each other — repeated calls starting from a
// sorted multiset visit each distinct permutation exactly once, in
// strictly increasing lexicographic order.
//
// Complexity: O(len) time and memory.
func NextPermutation[T cmp.Ordered](s []T) ([]T, bool) {
	n := len(s)
	if n < 2 {
		return nil, false
	}

	// Step 1: rightmost ascent.
	pivot := n - 2
	for pivot >= 0 && s[pivot] >= s[pivot+1] {
		pivot--
	}
	if pivot < 0 {
		return nil, false
	}

	out := make([]T, n)
	copy(out, s)

	// Step 2: rightmost element strictly greater than the pivot.
	next := n - 1
	for out[next] <= out[pivot] {
		next--
	}

	// Step 3: swap.
	out[pivot], out[next] = out[next], out[pivot]

	// Step 4: reverse the suffix after the pivot in-place.
	for l, r := pivot+1, n-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}

	return out, true
}
