package recurrence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/combinat/memo"
)

// catalanCache memoizes the multiplicative Catalan recurrence:
//
//	Cat(n) = (4n-2) · Cat(n-1) / (n+1), base Cat(0) = 1.
//
// The division is exact: (4n-2)·Cat(n-1) is always divisible by n+1.
var catalanCache = memo.New(func(c *memo.Cache[int, *big.Int], n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}

	v := new(big.Int).Mul(big.NewInt(int64(4*n-2)), c.Get(n-1))

	return v.Quo(v, big.NewInt(int64(n+1)))
})

// Catalan returns the n-th Catalan number as an exact
// arbitrary-precision integer. Negative n yields ErrNegativeArgument.
//
// The cache is warmed from 0 upward, so the call stack stays O(1)
// even for the first request of a large n.
//
// Complexity: O(n) big-integer multiply/divide pairs on first use,
// O(1) amortized afterwards.
func Catalan(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: catalan of %d", ErrNegativeArgument, n)
	}

	for i := 0; i <= n; i++ {
		catalanCache.Get(i)
	}

	return new(big.Int).Set(catalanCache.Get(n)), nil
}
