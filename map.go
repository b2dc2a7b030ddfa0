package atmost

import "context"

// Map calls fn once for every element of items and collects the results
// in input order, with at most the configured limit executing
// concurrently. Result position is fixed at the moment an element is
// claimed, so out-of-order completion never reorders the output.
//
// On failure Map returns nil and the run's [*AggregateError].
//
//	halves, err := atmost.Map(ctx, nums, func(ctx context.Context, n int) (int, error) {
//	    return n / 2, nil
//	}, atmost.WithLimit(4))
func Map[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, item T) (R, error), opts ...Option) ([]R, error) {
	if fn == nil {
		panic("atmost: Map requires a non-nil fn")
	}

	results := make([]R, len(items))
	cfg := newCallConfig(opts)
	err := eachSequence(ctx, items, func(ctx context.Context, item T, index int) error {
		r, err := fn(ctx, item)
		if err != nil {
			return err
		}
		results[index] = r // safe: each index is claimed exactly once
		return nil
	}, &cfg)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Filter calls pred once for every element of items and returns the
// elements for which pred resolved true, preserving input order. The
// predicate runs with at most the configured limit concurrently.
//
// On failure Filter returns nil and the run's [*AggregateError].
func Filter[T any](ctx context.Context, items []T, pred func(ctx context.Context, item T) (bool, error), opts ...Option) ([]T, error) {
	if pred == nil {
		panic("atmost: Filter requires a non-nil pred")
	}

	// Keep-flags are recorded per claimed index and compacted after
	// the run, so relative order survives concurrent completion.
	keep := make([]bool, len(items))
	vals := make([]T, len(items))

	cfg := newCallConfig(opts)
	err := eachSequence(ctx, items, func(ctx context.Context, item T, index int) error {
		ok, err := pred(ctx, item)
		if err != nil {
			return err
		}
		keep[index] = ok
		vals[index] = item
		return nil
	}, &cfg)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(items))
	for i, ok := range keep {
		if ok {
			out = append(out, vals[i])
		}
	}
	return out, nil
}
