package atmost

import (
	"context"
	"sync/atomic"
)

// Every reports whether pred resolved true for every element of items.
// Unlike a short-circuiting AND, a false result does not stop the run:
// every element is still visited, and Every returns only after all
// predicate calls have settled. An empty or nil items is vacuously true.
//
// On failure Every returns false and the run's [*AggregateError].
func Every[T any](ctx context.Context, items []T, pred func(ctx context.Context, item T) (bool, error), opts ...Option) (bool, error) {
	if pred == nil {
		panic("atmost: Every requires a non-nil pred")
	}

	var sawFalse atomic.Bool
	cfg := newCallConfig(opts)
	err := eachSequence(ctx, items, func(ctx context.Context, item T, _ int) error {
		ok, err := pred(ctx, item)
		if err != nil {
			return err
		}
		if !ok {
			sawFalse.Store(true)
		}
		return nil
	}, &cfg)
	if err != nil {
		return false, err
	}
	return !sawFalse.Load(), nil
}

// Some reports whether pred resolved true for at least one element of
// items. Like [Every], it drains all elements rather than
// short-circuiting. An empty or nil items is false.
//
// On failure Some returns false and the run's [*AggregateError].
func Some[T any](ctx context.Context, items []T, pred func(ctx context.Context, item T) (bool, error), opts ...Option) (bool, error) {
	if pred == nil {
		panic("atmost: Some requires a non-nil pred")
	}

	var sawTrue atomic.Bool
	cfg := newCallConfig(opts)
	err := eachSequence(ctx, items, func(ctx context.Context, item T, _ int) error {
		ok, err := pred(ctx, item)
		if err != nil {
			return err
		}
		if ok {
			sawTrue.Store(true)
		}
		return nil
	}, &cfg)
	if err != nil {
		return false, err
	}
	return sawTrue.Load(), nil
}
