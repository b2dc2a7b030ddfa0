package atmost

import (
	"errors"
	"fmt"
	"strings"
)

// AggregateError is the single failure value returned by a pool run in
// which one or more producer invocations failed. Errors holds every
// captured failure in completion order, which is not input order: a slow
// early task may fail after a fast later one.
//
// AggregateError implements Unwrap() []error, so [errors.Is] and
// [errors.As] descend into the individual failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "atmost: run failed"
	case 1:
		return fmt.Sprintf("atmost: 1 task failed: %v", e.Errors[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "atmost: %d tasks failed:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n\t")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the captured failures to the errors package.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// IsAggregate reports whether err (or any error in its chain) is an
// [*AggregateError].
func IsAggregate(err error) bool {
	if err == nil {
		return false
	}
	var ae *AggregateError
	return errors.As(err, &ae)
}

// FailuresOf returns the ordered failure list carried by the first
// [*AggregateError] in err's chain. Returns nil if there is none.
func FailuresOf(err error) []error {
	if err == nil {
		return nil
	}

	var ae *AggregateError
	if errors.As(err, &ae) {
		return ae.Errors
	}
	return nil
}
