// Package secant implements the two-point secant method for scalar
// root-finding.
//
// What
//
//	Secant(f, x0, x1, tol, maxIter) drives the zero crossing of the line
//	through the two most recent points. Unlike the bracketing methods it
//	needs no sign change between the guesses, which makes it the tool of
//	choice when no bracket is known, at the cost of a weaker global
//	guarantee: far from a root the iteration may wander or diverge, and a
//	horizontal secant line (coinciding ordinates) kills the run outright.
//
// Stopping semantics
//
//	The method stops on the step length |c - x1| < tol, a displacement
//	criterion. There is no interval to measure and a residual threshold
//	would couple the tolerance to the scale of f, so the step is the
//	natural error proxy: near a simple root it tracks the true error
//	through the method's superlinear order (1+sqrt(5))/2.
//
// Soft versus hard outcomes
//
//	Argument errors and a vanished denominator (ErrDegenerateSecant) are
//	hard: a sentinel error, no result. An exhausted iteration budget is
//	soft: the latest point comes back with Converged=false and a nil
//	error.
//
// Diagnostics
//
//	WithOnIterate(fn) streams one core.Record per iteration: the working
//	pair in A/B, the new point in X, the step length in Err. Returning an
//	error from the hook aborts the run. See package report for ready-made
//	sinks.
//
// Usage
//
//	f := func(x float64) float64 { return x*x*x - x - 1 }
//	res, err := secant.Secant(f, 1, 2, 1e-10, 50)
//	if err != nil {
//	    // ErrDegenerateSecant or argument errors
//	}
//	fmt.Println(res.Root, res.Iterations)
//
// Errors
//
//   - ErrNilFunc             f is nil.
//   - ErrNonPositiveTol      tol <= 0.
//   - ErrNonPositiveMaxIter  maxIter < 1.
//   - ErrDegenerateSecant    f(x1)-f(x0) == 0; also covers x0 == x1.
package secant
