package atmost

import "time"

// PoolStats is a point-in-time snapshot of a single pool run, delivered
// to the hook registered via [WithOnStats].
type PoolStats struct {
	Launched int64 // producer invocations started so far
	Active   int64 // invocations currently in flight
	Errored  int64 // invocations that failed
	Draining bool  // no further invocations will be started
}

type callConfig struct {
	limit    int
	limitSet bool

	onLaunch func()
	onSettle func(err error, d time.Duration)
	onStats  func(PoolStats)
}

// Option configures a single pool run or combinator call.
type Option func(*callConfig)

func newCallConfig(opts []Option) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// resolveLimit turns the configured limit into an effective pool size for
// an input of n elements: explicit per-call limit if set, else n
// (unbounded). A limit of zero or one exceeding n is clamped to n, since
// a sequence over n elements never has more than n units of work.
// Callers short-circuit n == 0 before reaching the pool.
func (c *callConfig) resolveLimit(n int) int {
	limit := n
	if c.limitSet && c.limit > 0 && c.limit < n {
		limit = c.limit
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

// WithLimit caps the number of concurrently executing tasks for a
// combinator call. A limit of zero means unbounded: every element of
// the input starts immediately. [Pool] takes its size as an explicit
// argument and does not consult this option.
//
// WithLimit panics if n is negative.
func WithLimit(n int) Option {
	if n < 0 {
		panic("atmost: WithLimit requires n >= 0")
	}
	return func(c *callConfig) {
		c.limit = n
		c.limitSet = true
	}
}

// WithOnLaunch registers a hook invoked at the start of every producer
// invocation, inside the invocation's goroutine.
func WithOnLaunch(fn func()) Option {
	return func(c *callConfig) {
		c.onLaunch = fn
	}
}

// WithOnSettle registers a hook invoked exactly once when the run
// settles, with the run's final error (nil on success) and wall-clock
// duration.
func WithOnSettle(fn func(err error, d time.Duration)) Option {
	return func(c *callConfig) {
		c.onSettle = fn
	}
}

// WithOnStats registers a hook that receives a [PoolStats] snapshot after
// every pool state transition (a refill or an invocation settling). The
// hook runs outside the pool's internal lock and must not block for long.
func WithOnStats(fn func(PoolStats)) Option {
	return func(c *callConfig) {
		c.onStats = fn
	}
}

// Defaults is an immutable, reusable bundle of call options. It replaces
// the usual process-wide default-concurrency global: instead of mutating
// shared state, build a Defaults once and pass it to each call via
// [WithDefaults]. Explicit per-call options always win over the bundle,
// so parallel callers sharing one Defaults cannot interfere.
type Defaults struct {
	cfg callConfig
}

// NewDefaults builds a Defaults from the same options a call accepts.
func NewDefaults(opts ...Option) *Defaults {
	return &Defaults{cfg: newCallConfig(opts)}
}

// Limit returns the bundled concurrency limit, or zero if unbounded.
func (d *Defaults) Limit() int {
	if !d.cfg.limitSet {
		return 0
	}
	return d.cfg.limit
}

// WithDefaults applies the bundle's settings to a call, filling only the
// knobs the call has not set itself.
//
// WithDefaults panics if d is nil.
func WithDefaults(d *Defaults) Option {
	if d == nil {
		panic("atmost: WithDefaults requires a non-nil Defaults")
	}
	return func(c *callConfig) {
		if !c.limitSet && d.cfg.limitSet {
			c.limit, c.limitSet = d.cfg.limit, true
		}
		if c.onLaunch == nil {
			c.onLaunch = d.cfg.onLaunch
		}
		if c.onSettle == nil {
			c.onSettle = d.cfg.onSettle
		}
		if c.onStats == nil {
			c.onStats = d.cfg.onStats
		}
	}
}
