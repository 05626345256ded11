// Package rootfind is your numerical toolbox for solving one scalar
// equation, f(x) = 0 or x = g(x), with the classical iteration methods,
// instrumented end to end.
//
// 🚀 What is rootfind?
//
//	A small, focused library that brings together:
//		• Bracketing methods: bisection, regula falsi, Illinois
//		• Open methods: secant (no bracket required)
//		• Fixed-point methods: plain iteration, Steffensen (Aitken Δ²) acceleration
//		• Expression compiler: turn "x*x*x - x - 1" into a solvable function
//		• Trace sinks: aligned tables, CSV files, convergence charts
//
// ✨ Why choose rootfind?
//
//   - Honest contracts: every method documents its own stopping criterion
//     (bracket width, residual or step size), they are not interchangeable
//   - Soft failures: an exhausted iteration budget returns the best
//     estimate flagged unconverged, never a panic or a vague error
//   - Full visibility: an OnIterate hook streams every iteration to your
//     function, a table, a CSV file or a chart
//   - Pure functions in, structured results out: no globals, safe for
//     concurrent solves
//
// Under the hood, everything is organized in small subpackages:
//
//	core/       - shared Func, Result and Record types
//	bracket/    - Bisect, RegulaFalsi, Illinois
//	secant/     - Secant
//	fixedpoint/ - FixedPoint, Steffensen
//	exprfn/     - Compile: text expressions into core.Func
//	report/     - Table, CSV, Plot and Tee trace sinks
//	cmd/rootfind - the command-line front end
//
// Quick start:
//
//	f := func(x float64) float64 { return x*x*x - x - 1 }
//	res, err := bracket.Illinois(f, 1, 2, 1e-10, 50)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("root %.12f after %d iterations\n", res.Root, res.Iterations)
//
// Start with package bracket when you can bracket your root, package
// secant when you cannot, and package fixedpoint when your problem is
// already in x = g(x) form.
//
// Next up: Brent's method, polynomial deflation and vector-valued systems.
//
//	go get github.com/katalvlaran/rootfind
package rootfind
