package atmost

import (
	"context"
	"fmt"
)

// Each calls fn once for every element of items, with at most the
// configured limit executing concurrently (unbounded by default).
// Invocation start order is unspecified. Each returns only after every
// started callback has settled: a failure stops new launches but never
// cancels in-flight callbacks.
//
// A nil or empty items is a no-op: fn is never called and Each returns
// nil. On failure the result is an [*AggregateError] with every captured
// callback error.
//
//	err := atmost.Each(ctx, urls, func(ctx context.Context, u string) error {
//	    return fetch(ctx, u)
//	}, atmost.WithLimit(10))
func Each[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error, opts ...Option) error {
	if fn == nil {
		panic("atmost: Each requires a non-nil fn")
	}

	cfg := newCallConfig(opts)
	return eachSequence(ctx, items, func(ctx context.Context, item T, _ int) error {
		return fn(ctx, item)
	}, &cfg)
}

// Invoke runs every function in fns, with at most the configured limit
// executing concurrently. It is [Each] for a list of zero-argument
// tasks.
//
// Invoke panics if any element of fns is nil.
func Invoke(ctx context.Context, fns []func(ctx context.Context) error, opts ...Option) error {
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("atmost: Invoke fns[%d] must not be nil", i))
		}
	}

	cfg := newCallConfig(opts)
	return eachSequence(ctx, fns, func(ctx context.Context, fn func(ctx context.Context) error, _ int) error {
		return fn(ctx)
	}, &cfg)
}
