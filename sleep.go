package atmost

import (
	"context"
	"time"
)

// Sleep blocks for d or until ctx is cancelled, whichever comes first.
// Returns ctx.Err() on cancellation, nil otherwise.
//
// The scheduler itself never sleeps; this is a convenience for callbacks
// and tests that simulate slow work.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
