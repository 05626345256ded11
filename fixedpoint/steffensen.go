package fixedpoint

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/rootfind/core"
)

// Steffensen accelerates the fixed-point iteration x <- g(x) with the
// Aitken delta-squared extrapolation, trading a second g evaluation per
// iteration for quadratic convergence near an attracting fixed point.
//
// Contract:
//   - g and f must be non-nil (ErrNilFunc); f is the residual reported per
//     iterate, typically the f whose root the g-form encodes.
//   - tol > 0 (ErrNonPositiveTol), maxIter >= 1 (ErrNonPositiveMaxIter).
//
// Each iteration probes twice, x1 = g(x) and x2 = g(x1), and forms the
// second difference denom = x2 - 2*x1 + x. When |denom| <= 10 machine
// epsilons the extrapolation
//
//	xnew = x - (x1-x)^2 / denom
//
// would divide by noise, so the method stops early instead: the last
// stable x comes back with Converged=false and a nil error. That guard is
// a soft stop, not a fault. It fires precisely when the acceleration has
// nothing left to accelerate, either because x is already next to the
// fixed point or because g is locally affine; the comparison is absolute
// because denom itself legitimately approaches zero there, and a caller
// who sees Iterations < maxIter with Converged=false knows the guard, not
// the budget, ended the run.
//
// Stopping criterion: successive displacement, |xnew - x| < tol, as in
// FixedPoint. Every completed iteration emits one core.Record with the
// probes x1, x2 in A/B, the extrapolated point in X, and |f(xnew)| in Err.
// An iteration aborted by the guard emits no record.
func Steffensen(g, f core.Func, x0, tol float64, maxIter int, opts ...Option) (core.Result, error) {
	// 1) Validate arguments before touching g or f.
	if g == nil || f == nil {
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

	// 2) Extrapolate until the displacement criterion holds.
	x := x0
	for k := 1; k <= maxIter; k++ {
		x1 := g(x)
		x2 := g(x1)
		denom := x2 - 2*x1 + x
		if scalar.EqualWithinAbs(denom, 0, aitkenGuardTol) {
			// Nothing left to accelerate: stop at the last stable point.
			return core.Result{Root: x, Residual: f(x), Iterations: k - 1, Converged: false}, nil
		}
		d := x1 - x
		xnew := x - d*d/denom
		fnew := f(xnew)
		if err := o.OnIterate(core.Record{K: k, A: x1, B: x2, X: xnew, Err: math.Abs(fnew)}); err != nil {
			return core.Result{}, fmt.Errorf("fixedpoint: OnIterate error at iteration %d: %w", k, err)
		}
		if math.Abs(xnew-x) < tol {
			return core.Result{Root: xnew, Residual: fnew, Iterations: k, Converged: true}, nil
		}
		x = xnew
	}

	// 3) Budget exhausted: report the latest point, unconverged.
	return core.Result{Root: x, Residual: f(x), Iterations: maxIter, Converged: false}, nil
}
