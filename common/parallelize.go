// Package common holds small utilities shared by the field engines, the
// benchmarks and the binaries.
package common

import (
	"runtime"
	"sync"
)

// Parallelize splits [0, n) across the available cores and runs work on
// each sub-range from its own goroutine, blocking until all of them
// complete. work must be safe to call concurrently on disjoint ranges.
func Parallelize(n int, work func(start, stop int)) {
	nbTasks := runtime.NumCPU()
	if nbTasks > n {
		nbTasks = n
	}
	if nbTasks <= 1 {
		if n > 0 {
			work(0, n)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(nbTasks)

	chunk := n / nbTasks
	extra := n % nbTasks
	start := 0
	for i := 0; i < nbTasks; i++ {
		stop := start + chunk
		// spread the remainder over the first tasks
		if i < extra {
			stop++
		}
		go func(start, stop int) {
			work(start, stop)
			wg.Done()
		}(start, stop)
		start = stop
	}

	wg.Wait()
}
