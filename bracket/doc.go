// Package bracket implements the bracketing family of scalar root-finders:
// bisection, regula falsi (false position), and the Illinois variant.
//
// What
//
//   - Bisect(f, a, b, tol):                guaranteed halving; width criterion.
//   - RegulaFalsi(f, a, b, tol, maxIter):  chord interpolation; residual criterion.
//   - Illinois(f, a, b, tol, maxIter):     regula falsi plus a stagnation
//     penalty that halves a retained endpoint's cached value after two
//     consecutive retentions, restoring superlinear convergence where plain
//     false position stalls.
//
// All three demand a valid bracket, endpoints whose function values differ
// in sign, and preserve it as an invariant: every iteration replaces
// exactly one endpoint, never both, and the cached value of the endpoint
// that did not move is reused, never recomputed.
//
// Stopping semantics (deliberately distinct per method)
//
//	Bisect stops on the interval width (b-a <= tol); RegulaFalsi and
//	Illinois stop on the residual (|f(c)| < tol). The two tolerances are not
//	interchangeable: a width tolerance bounds the root's location, a
//	residual tolerance bounds the function value at the estimate.
//
// Soft versus hard outcomes
//
//	Precondition violations (nil f, non-positive tol or maxIter, endpoints
//	that do not straddle a sign change, a vanished interpolation
//	denominator) are hard: a sentinel error, no result. Running out of
//	iterations is soft: the best estimate comes back with Converged=false
//	and a nil error, because a flagged-uncertain approximation is more
//	useful to a numerical caller than a failure.
//
// Diagnostics
//
//	WithOnIterate(fn) streams one core.Record per iteration to fn, in
//	order: pre-update bracket in A/B, new point in X, the method's own
//	convergence metric in Err. Returning an error from the hook aborts the
//	run. See package report for ready-made table, CSV, and plot sinks.
//
// Usage
//
//	res, err := bracket.Illinois(f, 1, 2, 1e-6, 50)
//	if err != nil {
//	    // ErrInvalidBracket, ErrDegenerateInterpolation, or argument errors
//	}
//	if !res.Converged {
//	    // iteration budget exhausted; res.Root is the best estimate
//	}
//
// Errors
//
//   - ErrNilFunc                  f is nil.
//   - ErrNonPositiveTol           tol <= 0.
//   - ErrNonPositiveMaxIter       maxIter < 1 (RegulaFalsi, Illinois).
//   - ErrInvalidBracket           f(a)*f(b) >= 0; exactly two evaluations occur.
//   - ErrDegenerateInterpolation  fb-fa == 0 mid-run (Illinois).
package bracket
