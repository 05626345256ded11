package bracket_test

import "github.com/katalvlaran/rootfind/core"

// cubic is the shared regression function x³ - x - 1, whose single real root
// (the plastic number) lies in [1, 2].
func cubic(x float64) float64 { return x*x*x - x - 1 }

// wantCubicRoot is the real root of cubic to full float64 precision.
const wantCubicRoot = 1.324717957244746

// counted wraps f so every evaluation increments *n.
func counted(f core.Func) (core.Func, *int) {
	n := new(int)
	return func(x float64) float64 {
		*n++
		return f(x)
	}, n
}

// capture returns an OnIterate hook appending every record to *dst.
func capture(dst *[]core.Record) func(core.Record) error {
	return func(rec core.Record) error {
		*dst = append(*dst, rec)
		return nil
	}
}
