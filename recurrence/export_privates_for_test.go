package recurrence

// Test-only windows onto the per-family cache counters, so the
// external test package can observe the at-most-once computation
// property without widening the public API.

// BinomialComputations reports the binomial cache's body invocations.
func BinomialComputations() int64 { return binomialCache.Computations() }

// FactorialComputations reports the factorial cache's body invocations.
func FactorialComputations() int64 { return factorialCache.Computations() }

// FibonacciComputations reports the Fibonacci cache's body invocations.
func FibonacciComputations() int64 { return fibonacciCache.Computations() }

// CatalanComputations reports the Catalan cache's body invocations.
func CatalanComputations() int64 { return catalanCache.Computations() }

// DerangementComputations reports the derangement cache's body invocations.
func DerangementComputations() int64 { return derangementCache.Computations() }
