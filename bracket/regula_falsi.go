package bracket

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// RegulaFalsi locates a root of f inside [a, b] by false position: each step
// replaces an endpoint with the x-intercept of the chord through
// (a, f(a)) and (b, f(b)),
//
//	c = (a*fb - b*fa) / (fb - fa),
//
// so the interpolated point leans toward the endpoint with the smaller
// function value instead of sitting at the midpoint.
//
// Contract:
//   - f must be non-nil (ErrNilFunc), tol > 0 (ErrNonPositiveTol),
//     maxIter >= 1 (ErrNonPositiveMaxIter).
//   - Endpoints may be supplied in either order.
//   - f(a)*f(b) < 0 must hold, else ErrInvalidBracket after exactly the two
//     precondition evaluations.
//
// Stopping criterion: residual. The loop ends when |f(c)| < tol, a
// function-value test, not Bisect's interval-width test; callers comparing
// the two methods must account for the different semantics. The bracket
// invariant is maintained exactly as in Bisect: one endpoint replaced per
// step, cached values reused for the endpoint that did not move.
//
// Each iteration evaluates f once and emits one core.Record with the
// pre-update bracket in A/B, the interpolated point in X, and |f(c)| in Err.
//
// Exhausting maxIter is not an error: the last interpolated point is
// returned with Converged=false, letting the caller retry with a looser
// tolerance, another bracket, or another method.
func RegulaFalsi(f core.Func, a, b, tol float64, maxIter int, opts ...Option) (core.Result, error) {
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

	// 2) Precondition: the endpoints must straddle a sign change. While the
	// invariant holds, fa and fb keep opposite signs, so fb-fa never
	// vanishes and the chord intercept is always defined.
	fa, fb := f(a), f(b)
	if fa*fb >= 0 {
		return core.Result{}, ErrInvalidBracket
	}

	// 3) Interpolate until the residual criterion holds or the budget runs out.
	var c, fc float64
	for k := 1; k <= maxIter; k++ {
		c = (a*fb - b*fa) / (fb - fa)
		fc = f(c)
		if err := o.OnIterate(core.Record{K: k, A: a, B: b, X: c, Err: math.Abs(fc)}); err != nil {
			return core.Result{}, fmt.Errorf("bracket: OnIterate error at iteration %d: %w", k, err)
		}
		if math.Abs(fc) < tol {
			return core.Result{Root: c, Residual: fc, Iterations: k, Converged: true}, nil
		}

		// Keep the half that still straddles the sign change.
		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
	}

	// 4) Budget exhausted: soft outcome, best estimate flagged unconverged.
	return core.Result{Root: c, Residual: fc, Iterations: maxIter, Converged: false}, nil
}
