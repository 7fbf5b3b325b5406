package enumerate

// Combinations — every subset of a sequence, grouped by size.
//
// Description:
//
//	Returns all 2^n subsets of s, ordered by increasing subset size
//	from 0 to n inclusive. Within one size class the subsets follow
//	the canonical "choose i" order over the input's index positions,
//	and the elements inside each subset keep the relative order they
//	had in s. Subsets are identified by chosen positions, so duplicate
//	values at different positions yield distinct subsets.
//
// Algorithm Outline:
//  1. For each size i = 0..n, walk the index vector [0,1,…,i-1].
//  2. Emit the subset addressed by the current vector.
//  3. Advance the vector like a rightmost-first counter: find the
//     rightmost index that can still grow (idx[j] < n-i+j), bump it,
//     and reset every index to its right to consecutive values.
//  4. Stop the size class when no index can grow.
//
// Edge cases:
//   - Empty input yields exactly one result: the empty subset.
//
// Complexity: O(2^n · n) time, output dominates memory.
func Combinations[T any](s []T) [][]T {
	n := len(s)
	out := make([][]T, 0, 1<<uint(min(n, 62)))
	for size := 0; size <= n; size++ {
		out = appendSizeClass(out, s, size)
	}

	return out
}

// appendSizeClass appends every size-element subset of s to out,
// in canonical index order.
func appendSizeClass[T any](out [][]T, s []T, size int) [][]T {
	n := len(s)
	if size == 0 {
		return append(out, make([]T, 0))
	}

	// idx holds the chosen positions, strictly increasing.
	idx := make([]int, size)
	for j := range idx {
		idx[j] = j
	}

	for {
		subset := make([]T, size)
		for j, p := range idx {
			subset[j] = s[p]
		}
		out = append(out, subset)

		// advance: rightmost position that can still move right
		j := size - 1
		for j >= 0 && idx[j] == n-size+j {
			j--
		}
		if j < 0 {
			return out
		}
		idx[j]++
		for j++; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// RepeatedCombinations — every fixed-length tuple drawn with repetition.
//
// Description:
//
//	Returns all |s|^n tuples of length n whose elements come from s,
//	allowing repeats. Tuples are built by prefixing each element of s
//	onto every length-(n-1) tuple, recursing down to the single empty
//	tuple at n == 0. The input is a slice, so the iteration order of
//	the underlying set is fixed by the caller's element order and the
//	output order is deterministic: all tuples starting with s[0] come
//	before any tuple starting with s[1], and so on.
//
// Errors:
//   - ErrNegativeLength — n < 0.
//
// Complexity: O(|s|^n · n) time, output dominates memory.
func RepeatedCombinations[T any](s []T, n int) ([][]T, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return repeatedTuples(s, n), nil
}

// repeatedTuples carries the recursion once the length is known valid.
func repeatedTuples[T any](s []T, n int) [][]T {
	if n == 0 {
		return [][]T{make([]T, 0)}
	}

	tails := repeatedTuples(s, n-1)
	out := make([][]T, 0, len(s)*len(tails))
	for _, head := range s {
		for _, tail := range tails {
			tuple := make([]T, 0, n)
			tuple = append(tuple, head)
			tuple = append(tuple, tail...)
			out = append(out, tuple)
		}
	}

	return out
}
