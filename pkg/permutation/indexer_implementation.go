package permutation

type columnIndexerImplementation struct {
	limit      uint64
	blockSizes []uint64
}

func (indexer *columnIndexerImplementation) Ranks(column uint64) []uint64 {
	ranks := make([]uint64, indexer.limit)
	for row := range indexer.limit {
		choices := indexer.limit - row
		ranks[row] = (column/indexer.blockSizes[row])%choices + 1
	}
	return ranks
}

func (indexer *columnIndexerImplementation) Column(ranks []uint64) uint64 {
	column := uint64(0)
	for row, rank := range ranks {
		column += (rank - 1) * indexer.blockSizes[row]
	}
	return column
}
