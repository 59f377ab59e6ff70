package permutation

// Options tunes how a table is built. The zero value builds sequentially in the reference decode order.
type Options struct {
	// Workers is the number of goroutines filling columns; 0 or 1 builds on the calling goroutine
	Workers int
	// ChunkSize is the smallest column range handed to a worker; 0 selects DefaultChunkSize
	ChunkSize uint64
	Order     DecodeOrder
}

// Build returns the table of every permutation of {0, ..., limit-1}, one per column.
// It fails with ErrInvalidInput, before allocating, when the table cannot be represented.
//
// Example:
//
//	table, err := permutation.Build(3)
//	table.Column(3) // [1 2 0]
func Build(limit uint64) (*Table, error) {
	return BuildWithOptions(limit, Options{})
}

func BuildWithOptions(limit uint64, options Options) (*Table, error) {
	table, err := newTable(limit)
	if err != nil {
		return nil, err
	}

	executor := newColumnExecutor(options.Workers, options.ChunkSize)
	defer executor.Close()

	buildMasks(table, executor)
	decodeMasks(table, options.Order, executor)
	return table, nil
}
