package quickselect

import "errors"

// Sentinel errors for selection.
var (
	// ErrEmptyInput indicates there is no element to select.
	ErrEmptyInput = errors.New("quickselect: input must be non-empty")

	// ErrRankOutOfRange indicates a requested rank outside [0, len).
	ErrRankOutOfRange = errors.New("quickselect: rank out of range [0, len)")
)

// Option configures selection via functional arguments.
type Option func(*Options)

// Options holds tunable selection parameters.
type Options struct {
	// Seed feeds the pivot LCG. Zero selects the fixed default seed,
	// keeping unseeded runs reproducible.
	Seed uint64
}

// DefaultOptions returns the reproducible defaults: the fixed LCG
// seed, no further tuning.
func DefaultOptions() Options {
	return Options{Seed: 0}
}

// WithSeed pins the pivot sequence. Zero keeps the default seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
