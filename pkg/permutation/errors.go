package permutation

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when a table of the requested limit cannot be represented.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange is the value SelectNthZero panics with when the requested rank does not exist.
	ErrOutOfRange = errors.New("rank out of range")

	// ErrNotPermutation is returned by Verify when a column repeats a value or holds one outside {0, ..., Limit-1}.
	ErrNotPermutation = errors.New("column is not a permutation")
	// ErrDuplicateColumn is returned by Verify when a column repeats the permutation of an earlier column.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrColumnOrder is returned by Verify when a column holds a permutation that belongs further right.
	ErrColumnOrder = errors.New("column out of order")
	// ErrColumnCount is returned by Verify when the table does not hold exactly Limit! columns.
	ErrColumnCount = errors.New("unexpected column count")
)
