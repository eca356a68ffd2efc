// Package parallel splits row-wise matrix kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls when and how rows are split.
type Config struct {
	Workers int // Goroutines to use; 1 or less runs inline.
	MinWork int // Rows run inline while rows*rowCost stays below this.
}

// DefaultConfig runs everything inline. Callers opt in to splitting by
// raising Workers, e.g. to MaxWorkers().
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		MinWork: 1 << 16,
	}
}

// MaxWorkers returns one worker per schedulable CPU.
func MaxWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// Rows calls f(i) once for every i in [0, rows). rowCost is the approximate
// number of multiply-adds per row. f must only write state owned by row i.
func Rows(rows, rowCost int, cfg Config, f func(i int)) {
	if cfg.Workers <= 1 || rows < 2 || rows*rowCost < cfg.MinWork {
		for i := 0; i < rows; i++ {
			f(i)
		}
		return
	}

	chunk := (rows + cfg.Workers - 1) / cfg.Workers
	var wg sync.WaitGroup
	for start := 0; start < rows; start += chunk {
		end := min(start+chunk, rows)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
