// Package combinat is your in-memory toolbox for exact discrete
// mathematics — systematic enumeration of combinatorial structures and
// memoized, arbitrary-precision integer recurrences.
//
// 🚀 What is combinat?
//
//	A modern, pure-Go library that brings together:
//		• Enumeration: all subsets, tuples with repetition, odometer
//		  counters, lexicographic next-permutation
//		• Memoized recurrences: binomial coefficients, factorials,
//		  Fibonacci, Catalan numbers, derangements — all on math/big
//		• Order statistics: expected-linear quickselect with a
//		  deterministic linear-congruential pivot source
//		• Tree reconstruction: binary search trees from traversals
//
// ✨ Why choose combinat?
//
//   - Exact by construction – every numeric result is a *big.Int;
//     nothing ever overflows or truncates silently
//   - Rock-solid guarantees – pure functions, sentinel errors,
//     at-most-once computation per cached argument
//   - Pure Go – no cgo, no hidden deps
//   - Generic – enumeration works over any element type, ordered
//     operations are bounded by cmp.Ordered
//
// Everything is organized under five subpackages:
//
//	enumerate/   — subsets, repeated tuples, odometer, next-permutation
//	memo/        — the generic argument→result cache behind recurrence/
//	recurrence/  — C(n,r), n!, F(n), Catalan, derangements
//	bstree/      — binary(-search) tree reconstruction from traversals
//	quickselect/ — k-th smallest, median, and the LCG step function
//
// Quick taste:
//
//	perm, ok := enumerate.NextPermutation([]int{1, 2, 3}) // [1 3 2], true
//	val, _ := recurrence.Factorial(20)                    // 2432902008176640000
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/combinat
package combinat
