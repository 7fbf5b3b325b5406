package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/combinat/enumerate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextCombination_SimpleIncrement bumps the least-significant
// (first) digit when no carry is needed.
func TestNextCombination_SimpleIncrement(t *testing.T) {
	got, err := enumerate.NextCombination([]int{0, 0, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, got, "first element is least significant")
}

// TestNextCombination_CarryPropagatesRight checks a multi-position carry.
func TestNextCombination_CarryPropagatesRight(t *testing.T) {
	got, err := enumerate.NextCombination([]int{1, 1, 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1}, got, "carry must ripple rightward")
}

// TestNextCombination_AllMaxWrapsToZero confirms the lossless wrap with
// no carry-out signal.
func TestNextCombination_AllMaxWrapsToZero(t *testing.T) {
	got, err := enumerate.NextCombination([]int{2, 2, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, got, "all-max increments every digit to zero")
}

// TestNextCombination_EmptyInput returns empty output, no error.
func TestNextCombination_EmptyInput(t *testing.T) {
	got, err := enumerate.NextCombination([]int{}, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestNextCombination_DigitOutOfRange verifies ErrDigitRange fires
// before anything is produced, for both low and high violations.
func TestNextCombination_DigitOutOfRange(t *testing.T) {
	_, err := enumerate.NextCombination([]int{0, 3, 0}, 3)
	assert.ErrorIs(t, err, enumerate.ErrDigitRange, "digit == base must error")

	_, err = enumerate.NextCombination([]int{-1, 0}, 3)
	assert.ErrorIs(t, err, enumerate.ErrDigitRange, "negative digit must error")
}

// TestNextCombination_BadBase verifies base < 1 is rejected.
func TestNextCombination_BadBase(t *testing.T) {
	_, err := enumerate.NextCombination([]int{0}, 0)
	assert.ErrorIs(t, err, enumerate.ErrBadBase)
}

// TestNextCombination_InputNotMutated checks the all-or-nothing
// contract: the input never changes, even on success.
func TestNextCombination_InputNotMutated(t *testing.T) {
	in := []int{1, 1}
	_, err := enumerate.NextCombination(in, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, in)
}

// TestNextCombination_FullCycle drives the odometer base^length steps
// from all-zero and checks it visits every state exactly once before
// returning to the start.
func TestNextCombination_FullCycle(t *testing.T) {
	const base, length = 3, 4
	total := 1
	for i := 0; i < length; i++ {
		total *= base
	}

	state := make([]int, length)
	seen := make(map[[length]int]bool, total)
	for step := 0; step < total; step++ {
		var key [length]int
		copy(key[:], state)
		assert.False(t, seen[key], "state %v revisited at step %d", state, step)
		seen[key] = true

		next, err := enumerate.NextCombination(state, base)
		require.NoError(t, err)
		state = next
	}

	assert.Len(t, seen, total, "cycle must cover base^length distinct states")
	assert.Equal(t, make([]int, length), state, "after base^length steps the counter is back at all-zero")
}
