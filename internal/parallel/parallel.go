// Package parallel provides the chunked parallel-for used by kernel element loops.
package parallel

import (
	"sync"

	"github.com/born-ml/lazygraph/internal/envconfig"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns the configuration from LAZYGRAPH_PARALLEL,
// LAZYGRAPH_NUM_THREADS and LAZYGRAPH_MIN_CHUNK.
func DefaultConfig() Config {
	n := max(int(envconfig.NumThreads()), 1)
	return Config{
		Enabled:      envconfig.Parallel(true) && n > 1,
		NumWorkers:   n,
		MinChunkSize: max(int(envconfig.MinChunk()), 1),
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForChunks splits [0, n) into contiguous ranges and calls f(start, end)
// once per range, concurrently when parallelism applies. Ranges never
// overlap, so f may write to disjoint regions of a shared slice.
func ForChunks(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinChunkSize {
		// Sequential fallback.
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
