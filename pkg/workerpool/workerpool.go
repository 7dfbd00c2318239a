// Package workerpool supervises a fixed set of long-lived workers.
package workerpool

import (
	"context"
	"sync"
	"time"
)

// Run starts one goroutine per item and blocks until every worker has
// returned. Workers are expected to run until the context is canceled;
// if one fails early, the shared context is canceled so the rest can
// stop, and the first error is returned. A positive stagger delays each
// worker's start relative to the previous one.
func Run[T any](
	ctx context.Context,
	items []T,
	stagger time.Duration,
	work func(context.Context, T) error,
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(items))
	wg := sync.WaitGroup{}
	for i, item := range items {
		if i > 0 && stagger > 0 {
			timer := time.NewTimer(stagger)
			select {
			case <-ctx.Done():
				timer.Stop()
			case <-timer.C:
			}
		}
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(item T) {
			defer wg.Done()
			if err := work(ctx, item); err != nil {
				select {
				case errs <- err:
				default:
				}
				cancel()
			}
		}(item)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}

	return ctx.Err()
}
