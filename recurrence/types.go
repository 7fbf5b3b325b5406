package recurrence

import "errors"

// ErrNegativeArgument is returned by Factorial, Fibonacci and Catalan
// for n < 0: the defining recurrences only cover non-negative
// arguments, so a negative input is rejected before any cache is
// touched rather than silently extended.
var ErrNegativeArgument = errors.New("recurrence: argument must be non-negative")
