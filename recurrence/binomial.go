package recurrence

import (
	"math/big"

	"github.com/katalvlaran/combinat/memo"
)

// pair keys the two-dimensional binomial cache.
type pair struct{ n, r int }

// binomialCache memoizes Pascal's rule:
//
//	c(n, r) = c(n-1, r-1) + c(n-1, r)
//
// with base case c(n, 0) = 1, zero outside 0 ≤ r ≤ n, and the symmetry
// shortcut c(n, r) = c(n, n-r) whenever r > n/2 — the shortcut halves
// the populated triangle.
var binomialCache = memo.New(func(c *memo.Cache[pair, *big.Int], k pair) *big.Int {
	switch {
	case k.r == 0:
		return big.NewInt(1)
	case k.r < 0 || k.r > k.n:
		return big.NewInt(0)
	case k.r > k.n/2:
		return c.Get(pair{k.n, k.n - k.r})
	default:
		return new(big.Int).Add(c.Get(pair{k.n - 1, k.r - 1}), c.Get(pair{k.n - 1, k.r}))
	}
})

// C returns the binomial coefficient "n choose r" as an exact
// arbitrary-precision integer. C(n, 0) = 1 for every n; outside
// 0 ≤ r ≤ n the result is 0 (there is no way to choose a negative or
// excessive number of items).
//
// The triangle is warmed row by row before the final lookup, keeping
// recursion depth constant for arbitrarily large n.
//
// Complexity: O(n·min(r, n-r)) big-integer additions on first use,
// O(1) amortized afterwards.
func C(n, r int) *big.Int {
	if r > 0 && r <= n {
		width := r
		if width > n-r {
			width = n - r
		}
		for i := 1; i <= n; i++ {
			for j := 1; j <= width && j <= i; j++ {
				binomialCache.Get(pair{i, j})
			}
		}
	}

	return new(big.Int).Set(binomialCache.Get(pair{n, r}))
}
