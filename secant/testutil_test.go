package secant_test

import "github.com/katalvlaran/rootfind/core"

// cubic is the shared benchmark function x^3 - x - 1; its only real root
// is near 1.3247.
func cubic(x float64) float64 { return x*x*x - x - 1 }

// wantCubicRoot is the real root of cubic to full float64 precision.
const wantCubicRoot = 1.324717957244746

// counted wraps f and returns the wrapper plus a pointer to its call count.
func counted(f core.Func) (core.Func, *int) {
	n := new(int)
	return func(x float64) float64 {
		*n++
		return f(x)
	}, n
}

// capture returns a hook that appends every record to *dst.
func capture(dst *[]core.Record) func(core.Record) error {
	return func(rec core.Record) error {
		*dst = append(*dst, rec)
		return nil
	}
}
