// Package exprfn compiles textual one-variable expressions into core.Func
// values, the bridge between command-line input and the solver packages.
//
// Compile("x*x - 2") returns a function ready to hand to any method in
// this module. Errors split by phase: whatever can be detected statically
// (syntax, variables other than x) fails Compile; whatever depends on the
// argument (domain violations such as sqrt(-1)) surfaces as NaN from the
// compiled function, because a core.Func has no error channel and the
// solvers already cope with non-finite values the way they cope with any
// other ordinate.
package exprfn
