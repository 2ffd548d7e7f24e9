package app

import (
	"context"
	"time"
)

// wait blocks for the configured simulated latency. Zero latency returns
// immediately so tests run synchronously.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
