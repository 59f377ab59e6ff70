package permutation

import (
	"log"

	"github.com/alitto/pond/v2"
)

// DefaultChunkSize is the smallest number of columns handed to a single worker
const DefaultChunkSize = 4096

// columnExecutor runs fill over every column range of a row and returns once all of them are done.
// Columns are independent of each other, so ranges may be filled concurrently.
type columnExecutor interface {
	Run(columns uint64, fill func(from, to uint64))
	Close()
}

func newColumnExecutor(workers int, chunkSize uint64) columnExecutor {
	if workers <= 1 {
		return sequentialExecutor{}
	}
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	return &poolExecutor{
		pool:      pond.NewPool(workers),
		workers:   uint64(workers),
		chunkSize: chunkSize,
	}
}

type sequentialExecutor struct{}

func (sequentialExecutor) Run(columns uint64, fill func(from, to uint64)) {
	fill(0, columns)
}

func (sequentialExecutor) Close() {}

type poolExecutor struct {
	pool      pond.Pool
	workers   uint64
	chunkSize uint64
}

func (executor *poolExecutor) Run(columns uint64, fill func(from, to uint64)) {
	chunk := max((columns+executor.workers-1)/executor.workers, executor.chunkSize)

	group := executor.pool.NewGroup()
	for from := uint64(0); from < columns; from += chunk {
		to := min(from+chunk, columns)
		group.Submit(func() {
			fill(from, to)
		})
	}

	// Pool tasks recover panics, an invariant failure inside a worker must still bring the program down
	if err := group.Wait(); err != nil {
		log.Panicf("column worker failed: %v", err)
	}
}

func (executor *poolExecutor) Close() {
	executor.pool.StopAndWait()
}
