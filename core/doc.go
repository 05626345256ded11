// Package core defines the shared contract of the rootfind module: the
// scalar callable (Func), the terminal outcome of a call (Result), and the
// per-iteration trace row (Record) that every method streams to an injected
// OnIterate hook.
//
// The package is a deliberate leaf. It carries no behavior beyond type
// definitions, so the method packages (bracket, secant, fixedpoint) stay
// independent of one another while agreeing on what a function, a result,
// and a trace row look like.
//
// Lifecycle
//
//	Every Record and every intermediate value is scoped to a single call and
//	discarded at return; a Result is the only object that survives. No state
//	crosses calls or methods, which is what makes re-running any method with
//	identical inputs yield bit-identical traces.
package core
