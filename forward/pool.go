// SPDX-License-Identifier: MIT
package forward

import (
	"context"
	"sync"
)

// parallelRows calls fn(i) for every i in [0, n) using at most workers
// goroutines. Rows are split into contiguous shards, one per goroutine, so
// each row is written by exactly one goroutine. Workers stop at the next row
// once ctx is done; the context error is returned after all shards exit.
func parallelRows(ctx context.Context, n, workers int, fn func(i int)) error {
	if n == 0 {
		return ctx.Err()
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()

	return ctx.Err()
}
