package atmost

import (
	"context"
	"sync"
	"time"
)

// Producer performs one unit of work per invocation. The returned more
// reports whether further work may exist: true keeps the pool pulling,
// false stops new invocations while in-flight ones finish. A producer
// may instead return an error, which also stops new invocations.
//
// The pool invokes a single Producer from many goroutines concurrently;
// any state it closes over must be synchronized. [Each], [Map] and the
// other combinators build such a producer from a slice automatically.
type Producer func(ctx context.Context) (more bool, err error)

// Pool repeatedly and concurrently invokes producer with at most size
// invocations in flight at any instant, until an invocation reports no
// more work or fails, and every outstanding invocation has settled.
//
// Whenever capacity frees, the pool greedily tops back up to size
// workers, so batch completions do not leave slots idle. The first
// failure (or the first more=false) starts draining: no new invocations
// are launched, but already-running ones are never cancelled and are
// always awaited. ctx is only handed through to the producer; a producer
// that returns ctx.Err() on cancellation drains the pool the same way
// any other failure does.
//
// Pool returns nil if every invocation succeeded, or an
// [*AggregateError] carrying every captured failure in completion order.
// It panics if size <= 0 or producer is nil.
//
// size is the pool's only concurrency bound: a [WithLimit] option (or a
// bundled limit from [WithDefaults]) configures combinator calls, which
// have a slice length to resolve it against, and is ignored here. Only
// the hook options apply to a direct Pool call.
func Pool(ctx context.Context, size int, producer Producer, opts ...Option) error {
	if size <= 0 {
		panic("atmost: Pool requires size > 0")
	}
	if producer == nil {
		panic("atmost: Pool requires a non-nil producer")
	}

	cfg := newCallConfig(opts)
	return runPool(ctx, size, producer, &cfg)
}

// runPool is the shared entry for Pool and the combinators, which have
// already resolved an effective size from their options.
func runPool(ctx context.Context, size int, producer Producer, cfg *callConfig) error {
	p := &pool{
		ctx:      ctx,
		producer: producer,
		size:     size,
		cfg:      cfg,
		done:     make(chan struct{}),
	}

	start := time.Now()

	p.mu.Lock()
	p.refill()
	stats := p.snapshot()
	p.mu.Unlock()
	p.publish(stats)

	<-p.done

	// No invocation is running anymore; errs is stable.
	var err error
	if len(p.errs) > 0 {
		err = &AggregateError{Errors: p.errs}
	}
	if cfg.onSettle != nil {
		cfg.onSettle(err, time.Since(start))
	}
	return err
}

// pool is the per-run scheduler state. It is created fresh for every
// call and discarded on settlement.
type pool struct {
	ctx      context.Context
	producer Producer
	size     int
	cfg      *callConfig

	mu       sync.Mutex
	active   int
	draining bool
	errs     []error
	launched int64
	errored  int64

	done chan struct{}
}

// refill tops the pool up to size workers. It never blocks and never
// suspends: each worker runs on its own goroutine. Caller must hold mu.
func (p *pool) refill() {
	for p.active < p.size && !p.draining {
		p.active++
		p.launched++
		go p.run()
	}
}

func (p *pool) run() {
	if p.cfg.onLaunch != nil {
		p.cfg.onLaunch()
	}

	more, err := p.invoke()

	p.mu.Lock()
	p.active--
	if err != nil {
		p.errs = append(p.errs, err)
		p.errored++
		p.draining = true
	} else if !more {
		p.draining = true
	}

	switch {
	case p.active == 0 && p.draining:
		// Last worker out settles the run. Exactly one worker can
		// observe this state, so done is closed at most once.
		close(p.done)
	case !p.draining:
		p.refill()
	}
	stats := p.snapshot()
	p.mu.Unlock()

	p.publish(stats)
}

// invoke runs one producer invocation, converting a panic into a
// recorded failure so the run still settles after a full drain.
func (p *pool) invoke() (more bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			more = false
			err = newPanicError(r)
		}
	}()
	return p.producer(p.ctx)
}

// snapshot copies the counters for the stats hook. Caller must hold mu.
func (p *pool) snapshot() PoolStats {
	return PoolStats{
		Launched: p.launched,
		Active:   int64(p.active),
		Errored:  p.errored,
		Draining: p.draining,
	}
}

// publish delivers a stats snapshot outside the lock, so a slow hook
// cannot stall the scheduler.
func (p *pool) publish(stats PoolStats) {
	if p.cfg.onStats != nil {
		p.cfg.onStats(stats)
	}
}
