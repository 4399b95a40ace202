package clique

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// parallelFor calls fn(i) for every i in [0, n) using up to numWorkers
// goroutines. Each worker handles a contiguous range of indices, so fn may
// write to slot i of a pre-sized result slice without synchronization.
// If numWorkers <= 1 or n <= 1, it runs sequentially on the calling goroutine.
//
// The first error returned by fn cancels the remaining work and is returned.
// Cancellation of ctx is checked before every call.
func parallelFor(ctx context.Context, n, numWorkers int, fn func(i int) error) error {
	if numWorkers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := min(start+perWorker, n)
		if start >= n {
			break
		}

		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return eg.Wait()
}
