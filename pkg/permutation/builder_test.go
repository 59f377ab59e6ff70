package permutation

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMaskTable(t *testing.T, limit uint64, executor columnExecutor) *Table {
	t.Helper()
	table, err := newTable(limit)
	require.NoError(t, err)
	buildMasks(table, executor)
	return table
}

func TestMasksGrowOneBitPerRow(t *testing.T) {
	for limit := uint64(1); limit <= 7; limit++ {
		// Arrange & Act
		table := buildMaskTable(t, limit, sequentialExecutor{})

		// Assert
		within := uint64(1)<<limit - 1
		for row := range limit {
			for column := range table.Columns {
				mask := table.At(row, column)
				previous := table.previous(row, column)
				assert.Equal(t, int(row+1), bits.OnesCount64(mask))
				assert.Zero(t, mask&^within)
				assert.Equal(t, previous, mask&previous, "row %v column %v lost a bit", row, column)
			}
		}

		// The last row uses every index
		for _, mask := range table.Row(limit - 1) {
			assert.Equal(t, within, mask)
		}
	}
}

func TestMaskRanksMatchIndexer(t *testing.T) {
	for limit := uint64(1); limit <= 8; limit++ {
		// Arrange
		table := buildMaskTable(t, limit, sequentialExecutor{})
		indexer := newColumnIndexer(limit)

		// Act & Assert
		for column := range table.Columns {
			ranks := indexer.Ranks(column)
			for row := range limit {
				previous := table.previous(row, column)
				added := table.At(row, column) &^ previous
				// The rank is one more than the number of unused indices below the added one
				rank := uint64(bits.OnesCount64(^previous&(added-1))) + 1
				if !assert.Equal(t, ranks[row], rank, "limit %v row %v column %v", limit, row, column) {
					return
				}
			}
		}
	}
}

func TestBuildMasksEmpty(t *testing.T) {
	table := buildMaskTable(t, 0, sequentialExecutor{})
	assert.Equal(t, uint64(1), table.Columns)
	assert.Empty(t, table.Cells)
}

func TestParallelMasksMatchSequential(t *testing.T) {
	// Arrange
	const limit = 7
	sequential := buildMaskTable(t, limit, sequentialExecutor{})
	executor := newColumnExecutor(4, 16)
	defer executor.Close()

	// Act
	parallel := buildMaskTable(t, limit, executor)

	// Assert
	assert.Equal(t, sequential.Cells, parallel.Cells)
}
