package core

// Func is a scalar function of one real variable, the callable every
// root-finder consumes. Implementations are assumed pure (side-effect-free
// functions of x): the methods cache returned values and never re-evaluate
// an endpoint that did not move, and concurrent root-finds sharing one Func
// are safe precisely because evaluation mutates nothing.
type Func func(x float64) float64

// Result is the only value that survives a root-finding call.
//
// Soft outcomes (iteration exhaustion, Steffensen's stability guard) are
// reported here with Converged=false and a nil error: an approximate answer
// flagged uncertain is more useful to a numerical caller than a failure.
// Hard precondition violations (invalid bracket, degenerate interpolation)
// return a package sentinel error and a zero Result instead; see each
// method's documentation for its sentinels.
type Result struct {
	// Root is the final approximation to the root (or fixed point).
	Root float64

	// Residual is the signed function value at Root: f(Root) for the
	// f-based methods, the configured residual for the fixed-point family.
	Residual float64

	// Iterations counts completed iterations. Zero means the input already
	// satisfied the stopping criterion.
	Iterations int

	// Converged reports whether the method met its stopping tolerance.
	// False with a nil error means the best available estimate is returned:
	// the iteration budget ran out, or an acceleration guard stopped early.
	Converged bool
}

// Record is one row of a method's iteration trace, delivered in order to the
// OnIterate hook each method package exposes. Records are produced, never
// stored: the core's obligation is their order and content, presentation
// belongs to the sink (see package report).
//
// A and B carry the working pair the step started from:
//
//   - bisection, regula falsi, Illinois: the bracket endpoints [a, b];
//   - secant: the previous two points x0, x1;
//   - fixed-point iteration: the current iterate x and g(x);
//   - Steffensen: the two fresh evaluations g(x) and g(g(x)).
//
// X is the new approximation produced by the step. Err is the method's own
// convergence metric for that step: the updated bracket width for bisection,
// |f(c)| for regula falsi and Illinois, the step magnitude |c-x1| for the
// secant method, and the absolute residual for the fixed-point family.
type Record struct {
	K    int     // 1-based iteration index
	A, B float64 // working pair the step started from
	X    float64 // new approximation
	Err  float64 // method-specific convergence metric
}
