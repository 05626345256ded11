package bracket

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// Illinois locates a root of f inside [a, b] by false position with the
// Illinois stagnation penalty. Plain regula falsi can stall geometrically
// when one endpoint never moves: the chord keeps pivoting on it while the
// other endpoint creeps toward the root. Illinois tracks which endpoint was
// retained by the previous update and, whenever the same endpoint survives
// two updates in a row, halves its cached function value before the next
// replacement. The halving is applied once per consecutive retention, so a
// stubborn endpoint's pull on the interpolation decays by powers of two
// until the chord finally crosses to its side.
//
// Contract: identical to RegulaFalsi: non-nil f, tol > 0, maxIter >= 1,
// endpoints in either order, f(a)*f(b) < 0 (ErrInvalidBracket otherwise).
// One additional hard failure: if the cached endpoint values ever coincide
// (fb - fa == 0), the interpolation step is undefined and the call aborts
// with ErrDegenerateInterpolation. The penalty halves a cached value toward
// zero but never flips its sign, so this arises only through pathological
// inputs (NaN-producing f), never through the penalty itself.
//
// Stopping criterion: residual, |f(c)| < tol, as in RegulaFalsi. Records
// carry the pre-update bracket in A/B, the interpolated point in X, and
// |f(c)| in Err. Exhaustion is a soft outcome: last point, Converged=false.
//
// With the penalty, convergence order recovers to ~1.44 versus plain false
// position's linear rate; on a bracket where regula falsi stalls, Illinois
// converges in no more iterations, usually far fewer.
func Illinois(f core.Func, a, b, tol float64, maxIter int, opts ...Option) (core.Result, error) {
	// 1) Validate arguments before touching f.
	if f == nil {
		return core.Result{}, ErrNilFunc
	}
	if tol <= 0 {
		return core.Result{}, ErrNonPositiveTol
	}
	if maxIter < 1 {
		return core.Result{}, ErrNonPositiveMaxIter
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if a > b {
		a, b = b, a
	}

	// 2) Precondition: the endpoints must straddle a sign change.
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return core.Result{}, ErrInvalidBracket
	}

	// 3) Interpolate with the stagnation penalty.
	var (
		c, fc float64
		stagn = stagnNone
	)
	for k := 1; k <= maxIter; k++ {
		if fb-fa == 0 {
			return core.Result{}, ErrDegenerateInterpolation
		}
		c = (a*fb - b*fa) / (fb - fa)
		fc = f(c)
		if err := o.OnIterate(core.Record{K: k, A: a, B: b, X: c, Err: math.Abs(fc)}); err != nil {
			return core.Result{}, fmt.Errorf("bracket: OnIterate error at iteration %d: %w", k, err)
		}
		if math.Abs(fc) < tol {
			return core.Result{Root: c, Residual: fc, Iterations: k, Converged: true}, nil
		}

		switch {
		case fa*fc < 0:
			// Root in [a, c]: b moves, a is retained.
			if stagn == stagnLeft {
				// a also survived the previous update; dampen its pull.
				fa /= 2
			}
			b, fb = c, fc
			stagn = stagnLeft
		default:
			// Root in [c, b]: a moves, b is retained.
			if stagn == stagnRight {
				fb /= 2
			}
			a, fa = c, fc
			stagn = stagnRight
		}
	}

	// 4) Budget exhausted: soft outcome, best estimate flagged unconverged.
	return core.Result{Root: c, Residual: fc, Iterations: maxIter, Converged: false}, nil
}
