package enumerate

import "errors"

// Sentinel errors for enumeration inputs.
var (
	// ErrBadBase indicates the odometer base is smaller than one.
	ErrBadBase = errors.New("enumerate: base must be at least 1")

	// ErrDigitRange indicates a digit outside the half-open interval [0, base).
	ErrDigitRange = errors.New("enumerate: digit out of range [0, base)")

	// ErrNegativeLength indicates a negative tuple length was requested.
	ErrNegativeLength = errors.New("enumerate: tuple length must be non-negative")
)
