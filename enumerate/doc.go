// Package enumerate produces combinatorial structures systematically:
// all subsets of a sequence, fixed-length tuples with repetition,
// odometer-style counters in an arbitrary base, and the lexicographic
// next-permutation.
//
// 🚀 What is enumerate?
//
//	Pure, stateless generators for the building blocks of discrete
//	mathematics:
//	  • Combinations   — all 2^n subsets, grouped by size
//	  • RepeatedCombinations — all |s|^n length-n tuples with repetition
//	  • NextCombination — increment a base-n digit counter by one
//	  • NextPermutation — smallest rearrangement greater than the input
//
// ✨ Key properties:
//   - Pure functions: identical input ⇒ identical (deep-equal) output,
//     inputs are never mutated
//   - Generic: Combinations/RepeatedCombinations accept any element
//     type; NextPermutation requires cmp.Ordered
//   - Subsets preserve the relative order of elements in the source
//   - No caching: every call recomputes from scratch
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/enumerate"
//
//	subsets := enumerate.Combinations([]string{"a", "b", "c"}) // 8 subsets
//	next, ok := enumerate.NextPermutation([]int{1, 2, 3})      // [1 3 2], true
//
// Enumerating every permutation of a multiset is a loop: sort the
// input, then call NextPermutation until ok == false. Enumerating
// k-of-n patterns works the same way over an indicator sequence such
// as 0,0,1,1 (see example_test.go).
//
// Complexity:
//
//   - Combinations:          O(2^n · n) time and output size
//   - RepeatedCombinations:  O(|s|^n · n) time and output size
//   - NextCombination:       O(len) time
//   - NextPermutation:       O(len) time
//
// Errors are sentinel values declared in types.go; a fully descending
// permutation is a normal terminal case signalled by ok == false, not
// an error.
package enumerate
