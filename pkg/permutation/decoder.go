package permutation

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// DecodeOrder is the order in which the backward pass visits rows. Both orders yield the same table.
type DecodeOrder int

const (
	Descending DecodeOrder = iota
	Ascending
)

var decodeOrderNames = map[DecodeOrder]string{
	Descending: "descending",
	Ascending:  "ascending",
}

func (order DecodeOrder) String() string {
	if name, ok := decodeOrderNames[order]; ok {
		return name
	}
	return fmt.Sprintf("DecodeOrder(%d)", int(order))
}

// ParseDecodeOrder accepts "descending" or "ascending", ignoring case.
func ParseDecodeOrder(name string) (DecodeOrder, error) {
	for order, orderName := range decodeOrderNames {
		if strings.EqualFold(name, orderName) {
			return order, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidInput, "unknown decode order %q", name)
}

// decodeMasks runs the backward pass, replacing every bitmask with the index its row added.
func decodeMasks(table *Table, order DecodeOrder, executor columnExecutor) {
	if table.Limit == 0 {
		return
	}

	executor.Run(table.Columns, func(from, to uint64) {
		if order == Ascending {
			decodeAscending(table, from, to)
		} else {
			decodeDescending(table, from, to)
		}
	})
}

// decodeDescending overwrites row i while row i-1 still holds its bitmask
func decodeDescending(table *Table, from, to uint64) {
	for row := table.Limit; row > 0; row-- {
		for column := from; column < to; column++ {
			table.set(row-1, column, decodeCell(table.previous(row-1, column), table.At(row-1, column)))
		}
	}
}

// decodeAscending walks each column top-down, carrying the bitmask of the row above
// since that cell has already been overwritten.
func decodeAscending(table *Table, from, to uint64) {
	for column := from; column < to; column++ {
		previous := uint64(0)
		for row := range table.Limit {
			current := table.At(row, column)
			table.set(row, column, decodeCell(previous, current))
			previous = current
		}
	}
}

// decodeCell returns the position of the single bit present in current but not in previous
func decodeCell(previous, current uint64) uint64 {
	return uint64(bits.TrailingZeros64(^previous & current))
}
