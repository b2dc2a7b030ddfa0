package atmost

import (
	"fmt"
	"runtime"
)

// PanicError wraps a panic recovered from a producer or combinator
// callback, together with the goroutine stack captured at the point of
// the panic.
//
// A panicking task cannot be re-raised without breaking the pool's
// settle-once-after-drain contract, so panics are always recorded as
// ordinary failures and surface inside the run's [*AggregateError].
type PanicError struct {
	// Value is whatever the task panicked with.
	Value any

	// Stack is the worker goroutine's stack, captured before the
	// panic was recovered.
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v\n\n%s", e.Value, e.Stack)
}

func newPanicError(v any) *PanicError {
	// A fixed 8 KiB buffer; runtime.Stack simply cuts the trace off
	// when it runs out of room, which is fine for attribution.
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{
		Value: v,
		Stack: string(buf[:n]),
	}
}
