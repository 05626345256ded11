package bracket

import (
	"errors"

	"github.com/katalvlaran/rootfind/core"
)

// Sentinel errors shared by the bracketing methods.
var (
	// ErrNilFunc is returned when the supplied callable is nil.
	ErrNilFunc = errors.New("bracket: function is nil")

	// ErrInvalidBracket is returned when f(a)*f(b) >= 0: the endpoints do not
	// straddle a sign change, so the interval is not guaranteed to contain a
	// root. The call performs exactly the two precondition evaluations and
	// no iteration.
	ErrInvalidBracket = errors.New("bracket: endpoints do not straddle a sign change")

	// ErrNonPositiveTol is returned when tol <= 0. A non-positive tolerance
	// can never be met, so the call fails fast instead of looping forever.
	ErrNonPositiveTol = errors.New("bracket: tolerance must be positive")

	// ErrNonPositiveMaxIter is returned when maxIter < 1.
	ErrNonPositiveMaxIter = errors.New("bracket: max iterations must be positive")

	// ErrDegenerateInterpolation is returned by Illinois when the cached
	// endpoint values coincide (fb - fa == 0), leaving the interpolation
	// step undefined. Fatal for the call: no usable approximation exists.
	ErrDegenerateInterpolation = errors.New("bracket: interpolation denominator vanished")
)

// Option configures a bracketing method via functional arguments.
type Option func(*Options)

// Options holds the optional knobs of the bracketing methods. The numeric
// contract (bracket, tolerance, iteration budget) is positional; Options
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

// stagnation records which bracket endpoint survived the immediately
// preceding Illinois update. The three states are closed: every update sets
// exactly one of stagnLeft/stagnRight, and stagnNone exists only before the
// first update.
type stagnation int

const (
	// stagnNone: no update has happened yet.
	stagnNone stagnation = iota

	// stagnLeft: a was retained by the last update (b moved).
	stagnLeft

	// stagnRight: b was retained by the last update (a moved).
	stagnRight
)
