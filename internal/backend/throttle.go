package backend

import (
	"context"
	"sync"
	"time"
)

// throttle enforces a minimum spacing between successive fetches. wait blocks
// until the spacing has elapsed or the context is cancelled.
type throttle struct {
	spacing time.Duration

	mu   sync.Mutex
	last time.Time
}

func newThrottle(spacing time.Duration) *throttle {
	return &throttle{spacing: spacing}
}

func (t *throttle) wait(ctx context.Context) error {
	if t == nil || t.spacing <= 0 {
		return ctx.Err()
	}
	t.mu.Lock()
	ready := t.last.Add(t.spacing)
	t.mu.Unlock()

	if delay := time.Until(ready); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	t.mu.Lock()
	t.last = time.Now()
	t.mu.Unlock()
	return nil
}
