package atmost

import (
	"context"
	"sync"
)

// cursor is the shared claim point between competing workers: a private
// snapshot of the input plus a monotonically advancing index. A claim
// (read element, advance index) is one critical section, so no two
// workers can take the same element.
type cursor[T any] struct {
	mu    sync.Mutex
	items []T
	next  int
}

// newCursor snapshots items, so caller-side mutation of the original
// slice after the call starts has no effect on the run.
func newCursor[T any](items []T) *cursor[T] {
	snap := make([]T, len(items))
	copy(snap, items)
	return &cursor[T]{items: snap}
}

// claim atomically takes the next unclaimed element. ok is false once
// the snapshot is exhausted; remaining reports whether unclaimed
// elements are left after this claim.
func (c *cursor[T]) claim() (item T, index int, ok bool, remaining bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next >= len(c.items) {
		var zero T
		return zero, 0, false, false
	}
	item, index = c.items[c.next], c.next
	c.next++
	return item, index, true, c.next < len(c.items)
}

// eachSequence adapts "call fn once per element, at most limit
// concurrently" into the pool's producer contract. fn receives the
// element's position in the input, so order-preserving combinators can
// record results by claim position rather than completion time.
func eachSequence[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T, index int) error, cfg *callConfig) error {
	if len(items) == 0 {
		return nil
	}

	cur := newCursor(items)
	producer := func(ctx context.Context) (bool, error) {
		item, index, ok, remaining := cur.claim()
		if !ok {
			return false, nil
		}
		return remaining, fn(ctx, item, index)
	}

	return runPool(ctx, cfg.resolveLimit(len(items)), producer, cfg)
}

// foldSequence is eachSequence's strictly serial cousin used by
// [Reduce]: the claim and the fold step form one critical section, so
// elements are folded in input order whatever the concurrency limit.
func foldSequence[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error, cfg *callConfig) error {
	if len(items) == 0 {
		return nil
	}

	cur := newCursor(items)
	var mu sync.Mutex
	producer := func(ctx context.Context) (bool, error) {
		mu.Lock()
		defer mu.Unlock()

		item, _, ok, remaining := cur.claim()
		if !ok {
			return false, nil
		}
		return remaining, fn(ctx, item)
	}

	return runPool(ctx, cfg.resolveLimit(len(items)), producer, cfg)
}
