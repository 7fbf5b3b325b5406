// Package memo provides a generic argument→result cache for
// self-referential recurrence definitions — the classic memoization
// contract behind top-down dynamic programming.
//
// 🚀 What is memo?
//
//	A Cache wraps a recurrence body: a function from key to value that
//	may call back into the same cache for smaller or related keys. The
//	first Get of a key evaluates the body; the result is stored and
//	every later Get for that key is a map hit. Total work is bounded
//	by the number of distinct keys ever requested, not by the size of
//	the recursion tree.
//
// ✨ Key properties:
//   - At most one computation per distinct key over the cache's life
//     (exact under single-goroutine use; see Concurrency)
//   - Entries are created lazily and never evicted — cache lifetime is
//     process lifetime, with no teardown (entries are pure values)
//   - Len and Computations expose the cache state so tests can assert
//     the at-most-once property directly
//   - Warm pre-fills keys in caller-chosen order, letting accessors
//     turn an O(n)-deep recursion into an O(1)-deep iterative fill
//
// ⚙️ Usage:
//
//	fib := memo.New(func(c *memo.Cache[int, int], n int) int {
//	  if n < 2 {
//	    return n
//	  }
//	  return c.Get(n-1) + c.Get(n-2)
//	})
//	_ = fib.Get(40) // linear work, every subproblem computed once
//
// Concurrency:
//
//	Map access is mutex-guarded; the body runs outside the lock so it
//	can re-enter Get. Entries are written whole under the lock and the
//	first write wins, so a torn entry is impossible. Two goroutines
//	racing on the same missing key may both evaluate the body — benign
//	when the body is pure, since both produce the same value. Bodies
//	must be deterministic for the cached-value contract to hold.
package memo
