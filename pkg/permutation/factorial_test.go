package permutation

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	expected := []uint64{1, 1, 2, 6, 24, 120, 720, 5040, 40320}
	for limit, value := range expected {
		actual, err := Factorial(uint64(limit))
		require.NoError(t, err)
		assert.Equal(t, value, actual)
	}

	actual, err := Factorial(MaxLimit)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), actual)
}

func TestFactorialOverflow(t *testing.T) {
	_, err := Factorial(MaxLimit + 1)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = Factorial(64)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCellCount(t *testing.T) {
	columns, cells, err := cellCount(4)
	require.NoError(t, err)
	assert.Equal(t, uint64(24), columns)
	assert.Equal(t, uint64(96), cells)

	columns, cells, err = cellCount(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), columns)
	assert.Zero(t, cells)

	// 20 * 20! overflows 64 bits even though 20! does not
	_, _, err = cellCount(MaxLimit)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestCellCountAllocationBound(t *testing.T) {
	_, cells, err := cellCount(MaxTableLimit)
	require.NoError(t, err)
	assert.Equal(t, uint64(19615115520000), cells)

	// Every limit whose factorial fits but whose table could never be allocated
	for limit := uint64(MaxTableLimit + 1); limit <= MaxLimit; limit++ {
		_, _, err := cellCount(limit)
		assert.True(t, errors.Is(err, ErrInvalidInput), "limit %v", limit)
	}
}
