package permutation

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// MaxLimit is the largest limit whose factorial fits in a uint64
	MaxLimit = 20
	// MaxTableLimit is the largest limit whose table can be allocated
	MaxTableLimit = 15

	// 2^48 bytes of uint64 cells, the largest allocation the runtime accepts on 64-bit platforms
	maxCells = 1 << 45
)

// Factorial returns limit!, or ErrInvalidInput if it overflows a uint64.
func Factorial(limit uint64) (uint64, error) {
	if limit > MaxLimit {
		return 0, errors.Wrapf(ErrInvalidInput, "%v! does not fit in 64 bits (limit must be at most %v)", limit, MaxLimit)
	}

	result := uint64(1)
	for i := uint64(2); i <= limit; i++ {
		result *= i
	}
	return result, nil
}

// cellCount returns limit * limit!, the number of cells of a table with the given limit.
func cellCount(limit uint64) (columns uint64, cells uint64, err error) {
	columns, err = Factorial(limit)
	if err != nil {
		return 0, 0, err
	}

	hi, cells := bits.Mul64(limit, columns)
	if hi != 0 || cells > maxCells || cells > math.MaxInt/8 {
		return 0, 0, errors.Wrapf(ErrInvalidInput, "a table of limit %v has more cells than can be allocated (limit must be at most %v)", limit, MaxTableLimit)
	}
	return columns, cells, nil
}
