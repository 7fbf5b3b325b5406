// Package recurrence evaluates classic integer recurrences — binomial
// coefficients, factorials, Fibonacci, Catalan numbers and
// derangements — with memoized, arbitrary-precision results.
//
// 🚀 What is recurrence?
//
//	Each family owns one process-wide memo.Cache instance, populated
//	lazily and never evicted. Every argument is computed at most once
//	per process; later calls are map hits. All results are *big.Int,
//	so factorials and Catalan numbers never overflow or truncate.
//
// ✨ Key properties:
//   - Exact: math/big throughout, including the Catalan step's exact
//     integer division
//   - At-most-once computation per distinct argument per family; the
//     five caches share no storage
//   - Callers receive defensive copies — mutating a returned value
//     can never corrupt the cache
//   - Accessors warm their cache from the base cases upward, so the
//     call stack stays shallow no matter how large the argument
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/recurrence"
//
//	c := recurrence.C(5, 2)              // 10
//	f, err := recurrence.Factorial(100)  // 158-digit exact value
//	d := recurrence.Derangement(4)       // 9
//	p := recurrence.PartialDerangement(4, 1) // 8 = C(4,1)·D(3)
//
// Domain rules:
//   - C(n, 0) = 1 for every n; C(n, r) = 0 outside 0 ≤ r ≤ n
//   - Factorial, Fibonacci and Catalan reject negative arguments with
//     ErrNegativeArgument — the recurrences do not define them
//   - Derangement is total over the integers: 0 below the base cases
//
// Complexity: O(n) cached subproblems per one-dimensional family
// (O(n·min(r, n−r)) for the binomial triangle), O(1) amortized on
// every later request of the same argument.
package recurrence
