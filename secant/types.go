package secant

import (
	"errors"

	"github.com/katalvlaran/rootfind/core"
)

// Sentinel errors of the secant method.
var (
	// ErrNilFunc is returned when the supplied callable is nil.
	ErrNilFunc = errors.New("secant: function is nil")

	// ErrNonPositiveTol is returned when tol <= 0. A non-positive step
	// tolerance can never be met, so the call fails fast.
	ErrNonPositiveTol = errors.New("secant: tolerance must be positive")

	// ErrNonPositiveMaxIter is returned when maxIter < 1.
	ErrNonPositiveMaxIter = errors.New("secant: max iterations must be positive")

	// ErrDegenerateSecant is returned when the two working ordinates coincide
	// (f(x1) - f(x0) == 0): the secant line is horizontal and its zero
	// crossing is undefined. Fatal for the call; coincident initial guesses
	// trigger it on the first iteration.
	ErrDegenerateSecant = errors.New("secant: ordinates coincide, secant line is horizontal")
)

// Option configures the secant method via functional arguments.
type Option func(*Options)

// Options holds the optional knobs of the secant method. The numeric
// contract (guesses, tolerance, iteration budget) is positional; Options
// carry diagnostics only.
type Options struct {
	// OnIterate receives one core.Record per iteration, in order. Returning
	// an error aborts the method; the error is propagated wrapped, and no
	// result is produced. The hook must not retain the Record past the call.
	OnIterate func(core.Record) error
}

// DefaultOptions returns Options with a no-op iteration hook.
func DefaultOptions() Options {
	return Options{
		OnIterate: func(core.Record) error { return nil },
	}
}

// WithOnIterate registers a per-iteration hook. A nil fn is ignored.
func WithOnIterate(fn func(core.Record) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIterate = fn
		}
	}
}
