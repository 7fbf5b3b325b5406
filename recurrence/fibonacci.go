package recurrence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/combinat/memo"
)

// fibonacciCache memoizes F(n) = F(n-1) + F(n-2), bases F(0)=0, F(1)=1.
var fibonacciCache = memo.New(func(c *memo.Cache[int, *big.Int], n int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}

	return new(big.Int).Add(c.Get(n-1), c.Get(n-2))
})

// Fibonacci returns the n-th Fibonacci number as an exact
// arbitrary-precision integer. Negative n yields ErrNegativeArgument.
//
// The cache is warmed from 0 upward, so the call stack stays O(1)
// even for the first request of a large n.
//
// Complexity: O(n) big-integer additions on first use, O(1) amortized
// afterwards.
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: fibonacci of %d", ErrNegativeArgument, n)
	}

	for i := 0; i <= n; i++ {
		fibonacciCache.Get(i)
	}

	return new(big.Int).Set(fibonacciCache.Get(n)), nil
}
