package permutation

import (
	"math/bits"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSelectNthZero(t *testing.T) {
	assert.Equal(t, uint64(1), SelectNthZero(0, 1))
	assert.Equal(t, uint64(0b0010), SelectNthZero(0b0101, 2))
	assert.Equal(t, uint64(0b1000), SelectNthZero(0b0101, 3))
	assert.Equal(t, uint64(0b1000), SelectNthZero(0b0111, 1))
	assert.Equal(t, uint64(1)<<63, SelectNthZero(^uint64(0)>>1, 1))
}

func TestSelectNthZeroSingleBitOutsideMask(t *testing.T) {
	masks := []uint64{0, 0b1, 0b1010, 0b1111_0000, 0xdead_beef}

	for _, mask := range masks {
		free := uint64(bits.OnesCount64(^mask))
		for n := uint64(1); n <= free && n <= 40; n++ {
			// Act
			bit := SelectNthZero(mask, n)

			// Assert
			assert.Equal(t, 1, bits.OnesCount64(bit))
			assert.Zero(t, bit&mask)
			// Exactly n-1 clear bits of mask lie below the selected one
			assert.Equal(t, int(n-1), bits.OnesCount64(^mask&(bit-1)))
		}
	}
}

func TestSelectNthZeroOutOfRange(t *testing.T) {
	scenarios := []struct {
		mask uint64
		n    uint64
	}{
		{0, 0},
		{^uint64(0), 1},
		{^uint64(0) >> 1, 2},
		{0, 65},
	}

	for _, scenario := range scenarios {
		func() {
			defer func() {
				recovered := recover()
				err, ok := recovered.(error)
				assert.True(t, ok, "expected a panic with an error for mask %b and rank %v", scenario.mask, scenario.n)
				assert.True(t, errors.Is(err, ErrOutOfRange))
			}()
			SelectNthZero(scenario.mask, scenario.n)
		}()
	}
}

func BenchmarkSelectNthZero(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SelectNthZero(uint64(i)&0xffff, 7)
	}
}
