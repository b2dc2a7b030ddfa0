package atmost

import "context"

// Reduce folds items into a single value, starting from seed and calling
// fn once per element in input order. Claiming an element and folding it
// share one critical section, so the result is identical for any
// concurrency limit; the limit only bounds the goroutines competing for
// the next fold step. For an order-insensitive fold over expensive
// callbacks, prefer [Map] followed by a plain loop.
//
// An empty or nil items returns seed unchanged. On failure Reduce
// returns the zero accumulator and the run's [*AggregateError]; partial
// folds are not exposed.
//
//	sum, err := atmost.Reduce(ctx, nums, 0, func(ctx context.Context, acc, n int) (int, error) {
//	    return acc + n, nil
//	})
func Reduce[T, A any](ctx context.Context, items []T, seed A, fn func(ctx context.Context, acc A, item T) (A, error), opts ...Option) (A, error) {
	if fn == nil {
		panic("atmost: Reduce requires a non-nil fn")
	}

	acc := seed
	cfg := newCallConfig(opts)
	err := foldSequence(ctx, items, func(ctx context.Context, item T) error {
		next, err := fn(ctx, acc, item)
		if err != nil {
			return err
		}
		acc = next
		return nil
	}, &cfg)
	if err != nil {
		var zero A
		return zero, err
	}
	return acc, nil
}
