package recurrence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/combinat/memo"
)

// factorialCache memoizes n! = n · (n-1)!, base 0! = 1.
var factorialCache = memo.New(func(c *memo.Cache[int, *big.Int], n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}

	return new(big.Int).Mul(big.NewInt(int64(n)), c.Get(n-1))
})

// Factorial returns n! as an exact arbitrary-precision integer.
// Negative n yields ErrNegativeArgument.
//
// The cache is warmed from 0 upward, so the call stack stays O(1)
// even for the first request of a large n.
//
// Complexity: O(n) big-integer multiplications on first use, O(1)
// amortized afterwards.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: factorial of %d", ErrNegativeArgument, n)
	}

	for i := 0; i <= n; i++ {
		factorialCache.Get(i)
	}

	return new(big.Int).Set(factorialCache.Get(n)), nil
}
