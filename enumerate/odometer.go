package enumerate

import "fmt"

// NextCombination — advance a base-n digit counter by one.
//
// Description:
//
//	Treats digits as one state of a mechanical odometer in base
//	`base`, with the FIRST element as the least-significant digit
//	(the opposite of conventional most-significant-first reading),
//	and returns the state one step later. The carry propagates
//	rightward through the sequence.
//
// Algorithm Outline:
//  1. Validate base ≥ 1 and every digit ∈ [0, base) before touching
//     anything (all-or-nothing: the input is never mutated).
//  2. Copy the digits, then bump position 0; on overflow reset the
//     digit to 0 and carry into the next position.
//
// Edge cases:
//   - An all-(base-1) input wraps losslessly to all zeros; there is no
//     carry-out signal. Callers that enumerate the full cycle detect
//     termination by comparing against the starting state.
//   - Empty input returns empty output.
//
// Errors:
//   - ErrBadBase    — base < 1.
//   - ErrDigitRange — some digit lies outside [0, base).
//
// Complexity: O(len) time and memory.
func NextCombination(digits []int, base int) ([]int, error) {
	if base < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBase, base)
	}
	for i, d := range digits {
		if d < 0 || d >= base {
			return nil, fmt.Errorf("%w: digit %d at position %d, base %d", ErrDigitRange, d, i, base)
		}
	}

	out := make([]int, len(digits))
	copy(out, digits)
	for i := range out {
		out[i]++
		if out[i] < base {
			break
		}
		out[i] = 0 // carry into the next position
	}

	return out, nil
}
