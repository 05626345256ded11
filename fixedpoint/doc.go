// Package fixedpoint implements plain fixed-point iteration and its
// Steffensen (Aitken delta-squared) acceleration.
//
// What
//
//	FixedPoint(g, x0, tol, maxIter) repeats x <- g(x); linear convergence
//	where |g'| < 1 at the fixed point. Steffensen(g, f, x0, tol, maxIter)
//	spends a second g evaluation per iteration on the Aitken
//	extrapolation and converges quadratically near an attracting fixed
//	point.
//
// Both solve x = g(x), not f(x) = 0. A root problem enters this package
// through an equivalent rearrangement, such as g(x) = cos(x) for
// cos(x) - x = 0, and the quality of that rearrangement (the size of
// |g'| near the solution) decides whether the plain iteration converges
// at all.
//
// Stopping semantics
//
//	Both methods stop on successive displacement: |next - x| < tol. The
//	residual attached to each iterate (the defect g(x) - x by default,
//	WithResidual(f) or Steffensen's positional f otherwise) is reported
//	for diagnostics and never consulted for stopping.
//
// Soft versus hard outcomes
//
//	Argument errors are hard sentinels. Everything that can go wrong
//	mid-run is soft: budget exhaustion returns the last iterate with
//	Converged=false, and Steffensen's vanished-denominator guard stops
//	early the same way. Distinguish the two by Iterations: the guard
//	leaves it below maxIter.
//
// Diagnostics
//
//	WithOnIterate(fn) streams one core.Record per iteration. FixedPoint
//	puts the previous iterate in A and the new one in B and X; Steffensen
//	puts its two probes g(x), g(g(x)) in A/B and the extrapolated point
//	in X. Err is the absolute residual in both. See package report for
//	ready-made sinks.
//
// Usage
//
//	g := math.Cos // solve x = cos x
//	res, err := fixedpoint.FixedPoint(g, 0.5, 1e-8, 100)
//	if err != nil {
//	    // argument errors only
//	}
//	fmt.Println(res.Root, res.Iterations) // the Dottie number, ~45 steps
//
// Errors
//
//   - ErrNilFunc             g (or Steffensen's f) is nil.
//   - ErrNonPositiveTol      tol <= 0.
//   - ErrNonPositiveMaxIter  maxIter < 1.
package fixedpoint
