package permutation

// partition splits the columns of a row into equally sized blocks; every block picks the
// same rank among the indices still unused at that row.
type partition struct {
	blockSize uint64 // consecutive columns sharing a rank
	choices   uint64 // indices still unused, i.e. the number of distinct ranks
}

// buildMasks runs the forward pass: cell (row, column) receives the set of indices the
// column's permutation has used up to and including row, as a bitmask.
// Rows are filled strictly in order; executor.Run acts as the barrier between them.
func buildMasks(table *Table, executor columnExecutor) {
	if table.Limit == 0 {
		return
	}

	current := partition{
		blockSize: table.Columns / table.Limit,
		choices:   table.Limit,
	}
	for row := range table.Limit {
		executor.Run(table.Columns, func(from, to uint64) {
			fillRow(table, row, current, from, to)
		})

		current.choices--
		if remaining := table.Limit - row - 1; remaining != 0 {
			current.blockSize /= remaining
		}
	}
}

func fillRow(table *Table, row uint64, current partition, from, to uint64) {
	for column := from; column < to; column++ {
		previous := table.previous(row, column)
		rank := (column/current.blockSize)%current.choices + 1
		table.set(row, column, previous|SelectNthZero(previous, rank))
	}
}
