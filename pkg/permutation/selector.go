package permutation

import (
	"math/bits"

	"github.com/pkg/errors"
)

// SelectNthZero returns a mask with a single bit set, located at the n-th (1-indexed)
// clear bit of mask counting from the least significant bit.
//
// Example:
//
//	SelectNthZero(0b0101, 2) // 0b0010
//
// It panics with ErrOutOfRange when n is 0 or mask has fewer than n clear bits.
func SelectNthZero(mask, n uint64) uint64 {
	free := ^mask
	if n == 0 || n > uint64(bits.OnesCount64(free)) {
		panic(errors.Wrapf(ErrOutOfRange, "cannot select zero %v of mask %b", n, mask))
	}

	for ; n > 1; n-- {
		free &= free - 1 // Clear the lowest set bit
	}
	return 1 << bits.TrailingZeros64(free)
}
