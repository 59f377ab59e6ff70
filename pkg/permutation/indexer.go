package permutation

// columnIndexer maps a column of the table to the rank its permutation picks at every row and vice versa
type columnIndexer interface {
	// Returns the 1-indexed rank, among the indices still unused, that the column picks at each row
	Ranks(column uint64) []uint64
	// Returns the column that picks the given ranks
	Column(ranks []uint64) uint64
}

func newColumnIndexer(limit uint64) columnIndexer {
	// blockSizes[row] = (limit-row-1)!, the number of consecutive columns sharing a rank at that row
	blockSizes := make([]uint64, limit)
	size := uint64(1)
	for row := limit; row > 0; row-- {
		blockSizes[row-1] = size
		size *= limit - row + 1
	}

	return &columnIndexerImplementation{
		limit:      limit,
		blockSizes: blockSizes,
	}
}
