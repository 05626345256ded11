package fixedpoint

import (
	"errors"

	"github.com/katalvlaran/rootfind/core"
)

// Sentinel errors shared by the fixed-point family.
var (
	// ErrNilFunc is returned when a required callable (g, or Steffensen's f)
	// is nil.
	ErrNilFunc = errors.New("fixedpoint: function is nil")

	// ErrNonPositiveTol is returned when tol <= 0.
	ErrNonPositiveTol = errors.New("fixedpoint: tolerance must be positive")

	// ErrNonPositiveMaxIter is returned when maxIter < 1.
	ErrNonPositiveMaxIter = errors.New("fixedpoint: max iterations must be positive")
)

// machEps is the float64 machine epsilon: the spacing between 1 and the
// next representable value.
const machEps = 0x1p-52

// aitkenGuardTol is the absolute threshold below which the Aitken second
// difference x2 - 2*x1 + x counts as vanished and Steffensen stops softly.
// The comparison is absolute with zero relative slack: near a fixed point
// the difference legitimately approaches zero, and a relative test would
// never fire there.
const aitkenGuardTol = 10 * machEps

// Option configures a fixed-point method via functional arguments.
type Option func(*Options)

// Options holds the optional knobs of the fixed-point family. The numeric
// contract (guess, tolerance, iteration budget) is positional; Options
// carry diagnostics only.
type Options struct {
	// OnIterate receives one core.Record per iteration, in order. Returning
	// an error aborts the method; the error is propagated wrapped, and no
	// result is produced. The hook must not retain the Record past the call.
	OnIterate func(core.Record) error

	// Residual overrides the reported residual of FixedPoint. When nil the
	// fixed-point defect g(x) - x is used. Steffensen ignores this field:
	// its residual function is positional.
	Residual core.Func
}

// DefaultOptions returns Options with a no-op iteration hook and the
// default residual.
func DefaultOptions() Options {
	return Options{
		OnIterate: func(core.Record) error { return nil },
		Residual:  nil,
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

// WithResidual sets the function whose value is reported as the residual
// of each FixedPoint iterate. Typical use: solving f(x) = 0 through an
// equivalent x = g(x) form, where f itself is the quantity worth watching.
// A nil f is ignored and the default defect g(x) - x stays in effect.
func WithResidual(f core.Func) Option {
	return func(o *Options) {
		if f != nil {
			o.Residual = f
		}
	}
}
