// Package quickselect finds order statistics in expected linear time
// and provides the deterministic linear-congruential generator that
// drives its pivot choices.
//
// 🚀 What is quickselect?
//
//	Hoare's selection algorithm: partition around a random pivot, keep
//	only the side holding the requested rank, repeat. Expected O(n)
//	total work — no full sort needed to answer "what is the k-th
//	smallest element?".
//
// ✨ Key properties:
//   - Deterministic: same seed ⇒ identical pivot sequence ⇒ identical
//     behavior across platforms (the teacher of all reproducible
//     benchmarks and tests)
//   - Non-destructive: selection works on an internal copy; the input
//     slice is never reordered
//   - Strict preconditions: a rank outside [0, len) fails with
//     ErrRankOutOfRange before any work happens
//   - LCG: the classic x·a + c (mod 2^64) step with Knuth's MMIX
//     constants, invertible via Prev
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/combinat/quickselect"
//
//	v, err := quickselect.KthSmallest([]int{7, 1, 5, 3}, 1) // 3
//	m, err := quickselect.Median([]float64{9, 2, 5})        // 5
//
//	g := quickselect.NewLCG(42)
//	x := g.Next()     // one generator step
//	_ = g.Prev()      // steps back to x's predecessor state
//
// Complexity: KthSmallest/Median expected O(n) time, O(n) memory for
// the working copy; LCG steps are O(1). This package shares no state
// with the enumeration or recurrence packages.
package quickselect
