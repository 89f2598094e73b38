// SPDX-License-Identifier: MIT

package sparse

// DecimalToBinary writes the low `length` bits of n into a fresh slice.
// By default the most significant bit comes first (index 0); with reverse the
// least significant bit comes first. Bits of n above `length` are dropped.
// Returns nil for length < 0; n must be non-negative.
//
// Complexity: O(length).
func DecimalToBinary(n, length int, reverse bool) []uint8 {
	if length < 0 || n < 0 {
		return nil
	}
	out := make([]uint8, length)
	for i := 0; i < length && n > 0; i++ {
		bit := uint8(n & 1)
		if reverse {
			out[i] = bit
		} else {
			out[length-1-i] = bit
		}
		n >>= 1
	}

	return out
}

// DecimalToBinarySparse returns the positions of the set bits among the low
// `length` bits of n, least significant first (position 0 = bit 0).
//
// Complexity: O(length).
func DecimalToBinarySparse(n, length int) []int {
	if length < 0 || n < 0 {
		return nil
	}
	var out []int
	for i := 0; i < length && n > 0; i++ {
		if n&1 == 1 {
			out = append(out, i)
		}
		n >>= 1
	}

	return out
}

// BinaryToDecimal reads bits most significant first and returns the integer
// they encode. Any non-zero element counts as a one.
func BinaryToDecimal(bits []uint8) int {
	n := 0
	for _, b := range bits {
		n <<= 1
		if b != 0 {
			n |= 1
		}
	}

	return n
}
