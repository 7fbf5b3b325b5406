// Package quickselect - deterministic random generation for pivots.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: one generator type; no time-based sources hidden anywhere.
//   - Safety: no panics or logging.
//
// Concurrency:
//   - An LCG is NOT goroutine-safe. Do not share one across goroutines;
//     create one per worker instead.
package quickselect

// defaultLCGSeed is the fixed "zero" seed used when callers pass
// seed==0. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultLCGSeed uint64 = 1

// LCG is a linear congruential generator stepping
//
//	x' = x·a + c (mod 2⁶⁴)
//
// with the multiplier and increment Knuth gives for the MMIX RISC
// processor. The full 2⁶⁴ period and the invertible step make it a
// compact, reproducible source of pivot indices.
type LCG struct {
	state uint64
}

// Knuth's MMIX constants, and the precomputed inverse pair that undoes
// one step: if x' = x·a + c then x = x'·aInv + cInv, where aInv is the
// 2-adic inverse of a and cInv = -aInv·c.
const (
	lcgMul uint64 = 0x5851f42d4c957f2d
	lcgInc uint64 = 0x14057b7ef767814f

	lcgMulInv uint64 = 0xc097ef87329e28a5
	lcgIncInv uint64 = 0x9995b5b621535015
)

// NewLCG returns a generator at the given seed state. Policy: seed==0
// ⇒ use defaultLCGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewLCG(seed uint64) *LCG {
	if seed == 0 {
		seed = defaultLCGSeed
	}

	return &LCG{state: seed}
}

// Seed reports the current generator state.
func (g *LCG) Seed() uint64 {
	return g.state
}

// Next advances the generator one step and returns the new state.
//
// Complexity: O(1).
func (g *LCG) Next() uint64 {
	g.state = g.state*lcgMul + lcgInc

	return g.state
}

// Prev steps the generator backwards, returning the state that
// preceded the current one. Next followed by Prev restores the seed.
//
// Complexity: O(1).
func (g *LCG) Prev() uint64 {
	g.state = g.state*lcgMulInv + lcgIncInv

	return g.state
}

// Intn returns a uniform integer in [0, n) for n ≥ 1, consuming one or
// more generator steps. Uniformity comes from rejecting the partial
// top interval of the 2⁶⁴ range instead of taking a biased modulus.
// Callers must not pass n < 1.
//
// Complexity: O(1) expected.
func (g *LCG) Intn(n int) int {
	un := uint64(n)
	limit := -un % un // 2⁶⁴ mod n: reject values below this threshold
	for {
		v := g.Next()
		if v >= limit {
			return int(v % un)
		}
	}
}
