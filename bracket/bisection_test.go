package bracket_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/bracket"
	"github.com/katalvlaran/rootfind/core"
)

// TestBisect_CubicRoot converges on the classic x³-x-1 bracket [1,2].
func TestBisect_CubicRoot(t *testing.T) {
	res, err := bracket.Bisect(cubic, 1, 2, 1e-6)
	require.NoError(t, err)
	assert.True(t, res.Converged, "valid bracket must converge")
	assert.InDelta(t, wantCubicRoot, res.Root, 1e-6, "root within the width tolerance")
	assert.Greater(t, res.Iterations, 0)
	assert.InDelta(t, 0, res.Residual, 1e-5, "residual must be small near the root")
}

// TestBisect_ExactHalving checks the defining property: the bracket width
// after iteration k is exactly (b₀-a₀)/2^k. On [1,2] every midpoint and
// width is a dyadic rational, so the equality is bit-exact.
func TestBisect_ExactHalving(t *testing.T) {
	var recs []core.Record
	res, err := bracket.Bisect(cubic, 1, 2, 1e-6, bracket.WithOnIterate(capture(&recs)))
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Len(t, recs, res.Iterations, "one record per iteration")

	for i, rec := range recs {
		require.Equal(t, i+1, rec.K, "records must arrive in order")
		require.Equal(t, 1.0/math.Exp2(float64(rec.K)), rec.Err,
			"width after iteration %d must be exactly 2^-%d", rec.K, rec.K)
	}
	last := recs[len(recs)-1]
	assert.LessOrEqual(t, last.Err, 1e-6, "final width must meet the tolerance")
}

// TestBisect_InvalidBracket covers same-sign and root-at-endpoint inputs:
// both must fail with ErrInvalidBracket after exactly two evaluations.
func TestBisect_InvalidBracket(t *testing.T) {
	cases := []struct {
		name string
		f    core.Func
		a, b float64
	}{
		{"both positive", func(x float64) float64 { return x * x }, 1, 2},
		{"both negative", func(x float64) float64 { return -x * x }, 1, 2},
		{"root at endpoint", func(x float64) float64 { return x }, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, n := counted(tc.f)
			_, err := bracket.Bisect(f, tc.a, tc.b, 1e-6)
			assert.ErrorIs(t, err, bracket.ErrInvalidBracket)
			assert.Equal(t, 2, *n, "no evaluation beyond the precondition check")
		})
	}
}

// TestBisect_ArgumentValidation rejects bad arguments before any evaluation.
func TestBisect_ArgumentValidation(t *testing.T) {
	_, err := bracket.Bisect(nil, 1, 2, 1e-6)
	assert.ErrorIs(t, err, bracket.ErrNilFunc)

	f, n := counted(cubic)
	_, err = bracket.Bisect(f, 1, 2, 0)
	assert.ErrorIs(t, err, bracket.ErrNonPositiveTol)
	_, err = bracket.Bisect(f, 1, 2, -1e-6)
	assert.ErrorIs(t, err, bracket.ErrNonPositiveTol)
	assert.Zero(t, *n, "validation failures must not evaluate f")
}

// TestBisect_SwappedEndpoints accepts the bracket in either order.
func TestBisect_SwappedEndpoints(t *testing.T) {
	fwd, err := bracket.Bisect(cubic, 1, 2, 1e-6)
	require.NoError(t, err)
	rev, err := bracket.Bisect(cubic, 2, 1, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, fwd, rev, "endpoint order must not matter")
}

// TestBisect_TightBracket returns the midpoint without iterating when the
// input interval is already narrower than the tolerance.
func TestBisect_TightBracket(t *testing.T) {
	a, b := wantCubicRoot-5e-10, wantCubicRoot+5e-10
	res, err := bracket.Bisect(cubic, a, b, 1e-6)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, (a+b)/2, res.Root)
}

// TestBisect_ExactHit terminates immediately with a zero residual when a
// midpoint lands exactly on the root.
func TestBisect_ExactHit(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	var recs []core.Record
	res, err := bracket.Bisect(f, 0, 2, 1e-9, bracket.WithOnIterate(capture(&recs)))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1.0, res.Root, "midpoint of [0,2] is the exact root")
	assert.Zero(t, res.Residual)
	assert.Equal(t, 1, res.Iterations)
	require.Len(t, recs, 1)
	assert.Zero(t, recs[0].Err)
}

// TestBisect_HookAbort propagates an OnIterate error and yields no result.
func TestBisect_HookAbort(t *testing.T) {
	errStop := errors.New("stop")
	res, err := bracket.Bisect(cubic, 1, 2, 1e-6, bracket.WithOnIterate(func(core.Record) error {
		return errStop
	}))
	assert.ErrorIs(t, err, errStop)
	assert.Zero(t, res, "aborted run must not produce a result")
}

// TestBisect_Idempotence re-runs with identical inputs and demands
// bit-identical traces: no hidden state may survive a call.
func TestBisect_Idempotence(t *testing.T) {
	var first, second []core.Record
	r1, err := bracket.Bisect(cubic, 1, 2, 1e-6, bracket.WithOnIterate(capture(&first)))
	require.NoError(t, err)
	r2, err := bracket.Bisect(cubic, 1, 2, 1e-6, bracket.WithOnIterate(capture(&second)))
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, first, second)
}
