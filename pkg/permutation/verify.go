package permutation

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Verify checks that table holds exactly Limit! columns, that each of them is a permutation
// of {0, ..., Limit-1} and that they enumerate all permutations once, in lexicographic order.
func Verify(table *Table) error {
	expected, err := Factorial(table.Limit)
	if err != nil {
		return err
	}
	if table.Columns != expected || uint64(len(table.Cells)) != table.Limit*table.Columns {
		return errors.Wrapf(ErrColumnCount, "limit %v requires %v columns, table has %v columns and %v cells", table.Limit, expected, table.Columns, len(table.Cells))
	}

	indexer := newColumnIndexer(table.Limit)
	for column := range table.Columns {
		values := table.Column(column)
		if !isPermutation(values, table.Limit) {
			return errors.Wrapf(ErrNotPermutation, "column %v: %v", column, values)
		}

		// Columns before this one hold exactly the positions below it
		position := indexer.Column(ranksOf(values))
		if position < column {
			return errors.Wrapf(ErrDuplicateColumn, "column %v repeats column %v: %v", column, position, values)
		} else if position > column {
			return errors.Wrapf(ErrColumnOrder, "column %v holds the permutation of column %v: %v", column, position, values)
		}
	}
	return nil
}

func isPermutation(values []uint64, limit uint64) bool {
	return uint64(len(values)) == limit &&
		lo.EveryBy(values, func(value uint64) bool { return value < limit }) &&
		len(lo.Uniq(values)) == len(values)
}

// ranksOf returns, for each position of a permutation, the 1-indexed rank of its value among the values not used before it
func ranksOf(values []uint64) []uint64 {
	used := uint64(0)
	return lo.Map(values, func(value uint64, _ int) uint64 {
		below := ^used & (uint64(1)<<value - 1)
		used |= 1 << value
		return uint64(bits.OnesCount64(below)) + 1
	})
}
