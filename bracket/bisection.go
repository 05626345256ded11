package bracket

import (
	"fmt"

	"github.com/katalvlaran/rootfind/core"
)

// Bisect locates a root of f inside [a, b] by repeated interval halving.
//
// Contract:
//   - f must be non-nil (ErrNilFunc) and tol > 0 (ErrNonPositiveTol).
//   - The endpoints may be supplied in either order; they are normalized to
//     a < b before the precondition check.
//   - f(a) and f(b) must straddle a sign change: f(a)*f(b) < 0. On violation
//     the call fails with ErrInvalidBracket after exactly the two
//     precondition evaluations, and no iteration occurs.
//
// Each iteration evaluates f once, at the midpoint c = (a+b)/2, and replaces
// exactly one endpoint so the surviving interval still brackets the root;
// the replaced endpoint's cached value moves with it, the other is reused.
// An exact hit (f(c) == 0) terminates immediately with a zero residual.
//
// Stopping criterion: bracket width. The loop ends when b-a <= tol, an
// interval-width test, unlike the residual test of RegulaFalsi and Illinois.
// No iteration cap is needed: the width halves every step, so termination is
// guaranteed. Should the midpoint collide with an endpoint first (the
// endpoints are successive floating-point numbers), the root is pinned as
// tightly as float64 permits and the midpoint is returned as converged.
//
// Every completed iteration emits one core.Record carrying the pre-update
// bracket in A/B, the midpoint in X, and the updated width in Err (0 for an
// exact hit).
//
// Complexity: O(log2((b-a)/tol)) iterations, one evaluation each, plus the
// two precondition evaluations.
func Bisect(f core.Func, a, b, tol float64, opts ...Option) (core.Result, error) {
	// 1) Validate arguments before touching f.
	if f == nil {
		return core.Result{}, ErrNilFunc
	}
	if tol <= 0 {
		return core.Result{}, ErrNonPositiveTol
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

	// 3) Degenerate entry: the bracket is already tight enough.
	if b-a <= tol {
		mid := (a + b) / 2
		return core.Result{Root: mid, Residual: f(mid), Iterations: 0, Converged: true}, nil
	}

	// 4) Halve until the width criterion holds.
	var (
		c, fc float64
		k     int
	)
	for b-a > tol {
		c = (a + b) / 2
		if c == a || c == b {
			// a and b are successive floating-point numbers: the bracket
			// cannot shrink further, the root is pinned to one ulp.
			res := fa
			if c == b {
				res = fb
			}
			return core.Result{Root: c, Residual: res, Iterations: k, Converged: true}, nil
		}
		k++
		fc = f(c)
		if fc == 0 {
			// Exact root.
			if err := o.OnIterate(core.Record{K: k, A: a, B: b, X: c, Err: 0}); err != nil {
				return core.Result{}, fmt.Errorf("bracket: OnIterate error at iteration %d: %w", k, err)
			}
			return core.Result{Root: c, Residual: 0, Iterations: k, Converged: true}, nil
		}

		// Keep the half that still straddles the sign change.
		recA, recB := a, b
		if fa*fc < 0 {
			b, fb = c, fc
		} else {
			a, fa = c, fc
		}
		if err := o.OnIterate(core.Record{K: k, A: recA, B: recB, X: c, Err: b - a}); err != nil {
			return core.Result{}, fmt.Errorf("bracket: OnIterate error at iteration %d: %w", k, err)
		}
	}

	// 5) Width <= tol: the last midpoint is the answer.
	return core.Result{Root: c, Residual: fc, Iterations: k, Converged: true}, nil
}
