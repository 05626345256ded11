package fixedpoint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// FixedPoint iterates x <- g(x) from x0 until successive iterates settle.
//
// Contract:
//   - g must be non-nil (ErrNilFunc), tol > 0 (ErrNonPositiveTol) and
//     maxIter >= 1 (ErrNonPositiveMaxIter).
//   - Convergence is local and conditional: the iteration contracts toward
//     a fixed point x* only where |g'(x*)| < 1, and then linearly with
//     ratio |g'(x*)|. Nothing here checks that condition; a repelling
//     fixed point simply shows up as budget exhaustion or divergence.
//
// Stopping criterion: successive displacement. The method converges when
// |g(x) - x| < tol. The reported residual is diagnostic only and does not
// influence stopping: by default it is the defect g(x) - x at the new
// iterate, or the function installed via WithResidual when the caller is
// really solving f(x) = 0 through a rearranged x = g(x).
//
// Non-convergence within maxIter is an expected, recoverable outcome, so
// it is data, not an error: the last iterate comes back with
// Converged=false and a nil error.
//
// Every iteration emits one core.Record with the previous iterate in A,
// the new iterate in B and X, and the absolute residual in Err.
func FixedPoint(g core.Func, x0, tol float64, maxIter int, opts ...Option) (core.Result, error) {
	// 1) Validate arguments before touching g.
	if g == nil {
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
	residual := o.Residual
	if residual == nil {
		residual = func(x float64) float64 { return g(x) - x }
	}

	// 2) Iterate until the displacement criterion holds.
	x := x0
	var rv float64
	for k := 1; k <= maxIter; k++ {
		next := g(x)
		rv = residual(next)
		if err := o.OnIterate(core.Record{K: k, A: x, B: next, X: next, Err: math.Abs(rv)}); err != nil {
			return core.Result{}, fmt.Errorf("fixedpoint: OnIterate error at iteration %d: %w", k, err)
		}
		if math.Abs(next-x) < tol {
			return core.Result{Root: next, Residual: rv, Iterations: k, Converged: true}, nil
		}
		x = next
	}

	// 3) Budget exhausted: report the latest iterate, unconverged.
	return core.Result{Root: x, Residual: rv, Iterations: maxIter, Converged: false}, nil
}
