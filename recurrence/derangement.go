package recurrence

import (
	"math/big"

	"github.com/katalvlaran/combinat/memo"
)

// derangementCache memoizes the signed one-step derangement recurrence:
//
//	D(n) = n·D(n-1) + 1  (n even)
//	D(n) = n·D(n-1) - 1  (n odd)
//	D(n) = 0             (n < 0, terminating the recursion)
//
// The bases fall out naturally: D(0) = 0·D(-1)+1 = 1, D(1) = 0.
var derangementCache = memo.New(func(c *memo.Cache[int, *big.Int], n int) *big.Int {
	if n < 0 {
		return big.NewInt(0)
	}

	v := new(big.Int).Mul(big.NewInt(int64(n)), c.Get(n-1))
	if n%2 == 0 {
		return v.Add(v, bigOne)
	}

	return v.Sub(v, bigOne)
})

// bigOne is shared read-only by the derangement body.
var bigOne = big.NewInt(1)

// Derangement returns D(n), the number of permutations of n items with
// no fixed point, as an exact arbitrary-precision integer. The
// function is total over the integers: D(n) = 0 for n < 0.
//
// The cache is warmed from -1 upward, so the call stack stays O(1)
// even for the first request of a large n.
//
// Complexity: O(n) big-integer multiplications on first use, O(1)
// amortized afterwards.
func Derangement(n int) *big.Int {
	for i := -1; i <= n; i++ {
		derangementCache.Get(i)
	}

	return new(big.Int).Set(derangementCache.Get(n))
}

// PartialDerangement returns the number of permutations of n items
// with exactly k fixed points: choose which k stay put, derange the
// rest.
//
//	PD(n, k) = C(n, k) · D(n-k)
//
// Derived and uncached — it composes two cached results. Out-of-range
// k (negative or above n) yields 0 through the binomial factor.
func PartialDerangement(n, k int) *big.Int {
	v := C(n, k)

	return v.Mul(v, Derangement(n-k))
}
