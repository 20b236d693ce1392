// SPDX-License-Identifier: MIT

package factor

import (
	"math"
	"math/bits"
)

// mulInt returns a*b for non-negative a and b, and false if the product
// does not fit int.
func mulInt(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}

	return int(lo), true
}
