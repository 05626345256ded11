package fixedpoint_test

import (
	"math"

	"github.com/katalvlaran/rootfind/core"
)

// The canonical contraction: x = cos x, whose fixed point is the Dottie
// number. |cos'| ~ 0.674 there, so plain iteration converges linearly.
const wantDottie = 0.7390851332151607

// cosDefect is cos(x) - x, the root form of the same problem.
func cosDefect(x float64) float64 { return math.Cos(x) - x }

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
