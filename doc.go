// Package atmost runs an unbounded stream of tasks with at most N
// executing concurrently, collects every failure instead of aborting on
// the first one, and settles only once all in-flight work has finished.
//
// # The Pool Primitive
//
// The core entry point is [Pool]: a self-refilling worker pool driven by
// a pull-based [Producer]. The pool keeps up to size invocations of the
// producer in flight, greedily topping back up whenever capacity frees:
//
//	err := atmost.Pool(ctx, 3, func(ctx context.Context) (bool, error) {
//	    task, ok := queue.Next()
//	    if !ok {
//	        return false, nil // no more work; let the pool drain
//	    }
//	    return true, task.Run(ctx)
//	})
//
// The first failure (or the first more=false) starts draining: no new
// invocations are launched, but running ones are never cancelled and are
// always awaited. A run settles exactly once, returning nil or an
// [*AggregateError] carrying every captured failure in completion order.
// Use [IsAggregate] and [FailuresOf] to inspect it.
//
// # Combinators
//
// For the common case of a fixed slice, the combinators wrap a shared
// claim cursor into the producer contract:
//
//   - [Each]: call a function once per element, discarding results.
//   - [Invoke]: run a slice of zero-argument tasks.
//   - [Map]: transform every element, preserving input order.
//   - [Filter]: keep the elements a predicate accepts, preserving order.
//   - [Every], [Some]: boolean AND / OR over a predicate, always
//     draining all elements rather than short-circuiting.
//   - [Reduce]: fold into a single value, strictly in input order.
//
// All combinators snapshot their input before any work starts, treat a
// nil or empty input as an immediate success, and default to unbounded
// concurrency (every element starts at once). Cap that with [WithLimit]:
//
//	thumbs, err := atmost.Map(ctx, images, resize, atmost.WithLimit(4))
//
// # Shared Defaults
//
// There is no process-wide concurrency global. A [Defaults] bundle
// carries a reusable limit (and hooks) explicitly; per-call options
// always win:
//
//	d := atmost.NewDefaults(atmost.WithLimit(8))
//	err := atmost.Each(ctx, hosts, ping, atmost.WithDefaults(d))
//
// # Panics and Cancellation
//
// A panicking callback is captured with its stack as a [*PanicError] and
// recorded as an ordinary failure, so the run still settles after a full
// drain. The pool has no cancellation path of its own: ctx is handed
// through to callbacks, and one that returns ctx.Err() drains the pool
// like any other failure.
//
// # Observability
//
// [WithOnLaunch], [WithOnSettle] and [WithOnStats] register per-call
// hooks for invocation starts, the run's single settlement, and
// [PoolStats] snapshots on every state transition.
//
// [Sleep] is a small context-aware delay for callbacks and tests that
// simulate slow work; the scheduler itself never sleeps.
package atmost
