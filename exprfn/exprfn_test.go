package exprfn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/exprfn"
)

// TestCompile_Arithmetic evaluates plain polynomials exactly: the
// operations are the same IEEE operations a hand-written closure performs.
func TestCompile_Arithmetic(t *testing.T) {
	f, err := exprfn.Compile("x*x*x - x - 1")
	require.NoError(t, err)

	want := func(x float64) float64 { return x*x*x - x - 1 }
	for _, x := range []float64{-2, -1, 0, 0.5, 1, 1.5, 2} {
		assert.Equal(t, want(x), f(x), "x=%v", x)
	}
}

// TestCompile_Builtins exercises each registered function once.
func TestCompile_Builtins(t *testing.T) {
	cases := []struct {
		expr string
		x    float64
		want float64
	}{
		{"sin(x)", 1, math.Sin(1)},
		{"cos(x)", 1, math.Cos(1)},
		{"tan(x)", 1, math.Tan(1)},
		{"exp(x)", 2, math.Exp(2)},
		{"log(x)", 2, math.Log(2)},
		{"sqrt(x)", 2, math.Sqrt(2)},
		{"abs(x)", -3.5, 3.5},
		{"pow(x, 3)", 2, 8},
	}
	for _, tc := range cases {
		f, err := exprfn.Compile(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.Equal(t, tc.want, f(tc.x), tc.expr)
	}
}

// TestCompile_Empty rejects blank input with the sentinel.
func TestCompile_Empty(t *testing.T) {
	for _, expr := range []string{"", "   ", "\t\n"} {
		_, err := exprfn.Compile(expr)
		assert.ErrorIs(t, err, exprfn.ErrEmptyExpression)
	}
}

// TestCompile_SyntaxError surfaces parse failures at compile time.
func TestCompile_SyntaxError(t *testing.T) {
	_, err := exprfn.Compile("x +* 2")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exprfn: compile")
}

// TestCompile_ForeignVariable refuses variables other than x so the
// compiled function can never miss a parameter at run time.
func TestCompile_ForeignVariable(t *testing.T) {
	_, err := exprfn.Compile("x + y")
	assert.ErrorIs(t, err, exprfn.ErrUnknownVariable)
	assert.Contains(t, err.Error(), `"y"`)
}

// TestCompile_NaNOutsideDomain maps run-time domain violations and
// non-numeric results to NaN instead of failing.
func TestCompile_NaNOutsideDomain(t *testing.T) {
	logf, err := exprfn.Compile("log(x)")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(logf(-1)), "log of a negative leaves the reals")

	boolf, err := exprfn.Compile("x > 1")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(boolf(2)), "boolean results are not ordinates")
}

// TestCompile_ConcurrentUse hammers one compiled Func from many
// goroutines; the per-call parameter binding must keep results exact.
func TestCompile_ConcurrentUse(t *testing.T) {
	f, err := exprfn.Compile("x*x - 2")
	require.NoError(t, err)

	done := make(chan bool)
	for g := 0; g < 8; g++ {
		go func(seed float64) {
			ok := true
			for i := 0; i < 200; i++ {
				x := seed + float64(i)
				if f(x) != x*x-2 {
					ok = false
					break
				}
			}
			done <- ok
		}(float64(g))
	}
	for g := 0; g < 8; g++ {
		assert.True(t, <-done)
	}
}
