// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"fmt"
	"time"
)

// SleepWithContext waits for the duration or returns early if the
// context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Elapsed returns the wall-clock duration between started and now as
// reported by the supplied now function. A zero or negative reading is
// an error so callers never divide by a nonsensical duration.
func Elapsed(started time.Time, now func() time.Time) (time.Duration, error) {
	d := now().Sub(started)
	if d <= 0 {
		return 0, fmt.Errorf("non-positive elapsed duration %v", d)
	}
	return d, nil
}
