// Package clock holds the waiting helpers used while the node comes up.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d, returning ctx.Err() if ctx ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff returns base doubled attempt-1 times, capped at limit. A non-positive limit disables the cap.
func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if attempt < 1 || base <= 0 {
		return base
	}
	d := base
	for i := 1; i < attempt; i++ {
		if limit > 0 && d >= limit/2 {
			return limit
		}
		if d > time.Duration(1<<62) {
			return d
		}
		d *= 2
	}
	if limit > 0 && d > limit {
		return limit
	}
	return d
}
