package secant

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// Secant locates a root of f from two initial guesses x0, x1 by following
// the zero crossing of the line through (x0, f(x0)) and (x1, f(x1)).
//
// Contract:
//   - f must be non-nil (ErrNilFunc), tol > 0 (ErrNonPositiveTol) and
//     maxIter >= 1 (ErrNonPositiveMaxIter).
//   - No bracketing requirement: the guesses may lie on the same side of
//     the root, and f(x0), f(x1) may share a sign. The price is a weaker
//     guarantee; far from a root the iteration can wander or diverge.
//
// Each iteration first guards the denominator: when f(x1) - f(x0) == 0 the
// secant line is horizontal and the call fails hard with ErrDegenerateSecant
// (coincident guesses hit this on iteration one). Otherwise the update is
//
//	c = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
//
// followed by one fresh evaluation f(c), and the window slides: x0 takes x1,
// x1 takes c.
//
// Stopping criterion: step size. The method converges when |c - x1| < tol.
// This is a displacement test, not a residual test: near a simple root the
// step length tracks the error, and the criterion needs no bracket to be
// meaningful. With budget exhausted the last c is returned as a soft,
// non-converged Result with a nil error.
//
// Every iteration emits one core.Record carrying the working pair in A/B,
// the new point in X, and the step length |c - x1| in Err.
//
// Convergence is superlinear of order (1+sqrt(5))/2 near a simple root.
// Cost: two seed evaluations plus one per iteration.
func Secant(f core.Func, x0, x1, tol float64, maxIter int, opts ...Option) (core.Result, error) {
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

	// 2) Seed the two-point window.
	fx0, fx1 := f(x0), f(x1)

	// 3) Slide the secant window until the step criterion holds.
	var c, fc float64
	for k := 1; k <= maxIter; k++ {
		if fx1-fx0 == 0 {
			// Horizontal secant line: no zero crossing to aim at.
			return core.Result{}, ErrDegenerateSecant
		}
		c = x1 - fx1*(x1-x0)/(fx1-fx0)
		fc = f(c)
		step := math.Abs(c - x1)
		if err := o.OnIterate(core.Record{K: k, A: x0, B: x1, X: c, Err: step}); err != nil {
			return core.Result{}, fmt.Errorf("secant: OnIterate error at iteration %d: %w", k, err)
		}
		if step < tol {
			return core.Result{Root: c, Residual: fc, Iterations: k, Converged: true}, nil
		}
		x0, fx0 = x1, fx1
		x1, fx1 = c, fc
	}

	// 4) Budget exhausted: report the latest point, unconverged.
	return core.Result{Root: c, Residual: fc, Iterations: maxIter, Converged: false}, nil
}
