// Package parallel fans out independent evaluations across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 16, // A scalar evaluation is cheap; batch small trees together.
	}
}

// span is the half-open index range [lo, hi) owned by one worker.
type span struct {
	lo, hi int
}

// split partitions [0, n) into at most cfg.NumWorkers contiguous spans of at
// least cfg.MinChunkSize items. Sizes differ by at most one, larger spans first.
// Disabled or undersized work yields a single span.
func split(n int, cfg Config) []span {
	if n <= 0 {
		return nil
	}

	workers := 1
	if cfg.Enabled && cfg.NumWorkers > 1 {
		workers = max(min(cfg.NumWorkers, n/max(cfg.MinChunkSize, 1)), 1)
	}

	spans := make([]span, workers)
	base, extra := n/workers, n%workers
	lo := 0
	for w := range spans {
		size := base
		if w < extra {
			size++
		}
		spans[w] = span{lo: lo, hi: lo + size}
		lo += size
	}
	return spans
}

// run calls work once per span. The calling goroutine takes the first span,
// one goroutine is started for each of the others.
func run(spans []span, work func(s span)) {
	if len(spans) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, s := range spans[1:] {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work(s)
		}()
	}
	work(spans[0])
	wg.Wait()
}

// For executes f(i) for i in [0, n), each worker walking its own span in order.
// Runs sequentially if parallelism is disabled or n is below cfg.MinChunkSize.
// f must be safe to call concurrently for distinct i.
func For(n int, f func(i int), cfg Config) {
	run(split(n, cfg), func(s span) {
		for i := s.lo; i < s.hi; i++ {
			f(i)
		}
	})
}

// Map evaluates f(i) for i in [0, n) and returns the results in index order.
// Each worker writes only into the result slots of its own span.
func Map[R any](n int, f func(i int) R, cfg Config) []R {
	out := make([]R, n)
	run(split(n, cfg), func(s span) {
		slots := out[s.lo:s.hi]
		for k := range slots {
			slots[k] = f(s.lo + k)
		}
	})
	return out
}
