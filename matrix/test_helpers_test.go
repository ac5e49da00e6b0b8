// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// epsTight is the absolute tolerance for results that go through rounding.
const epsTight = 1e-9

// mustSlices builds a *Matrix from row slices or fails the test.
func mustSlices(tb testing.TB, values [][]float64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.FromSlices(values)
	require.NoError(tb, err)

	return m
}

// mustDet builds a scalar Determinant from row slices or fails the test.
func mustDet(tb testing.TB, values [][]float64, opts ...matrix.Option) *matrix.Determinant {
	tb.Helper()
	d, err := matrix.DeterminantFromScalars(values, opts...)
	require.NoError(tb, err)

	return d
}

// mustEvalScalar evaluates d and unwraps a scalar result.
func mustEvalScalar(tb testing.TB, d *matrix.Determinant) float64 {
	tb.Helper()
	e, err := d.Evaluate()
	require.NoError(tb, err)
	x, err := e.Scalar()
	require.NoError(tb, err)

	return x
}

// mustBasis returns the i-th basis vector of length n.
func mustBasis(tb testing.TB, n, i int) matrix.Vector {
	tb.Helper()
	e, err := matrix.Basis(n, i)
	require.NoError(tb, err)

	return e
}

// randomSquare returns an n×n grid of U(-1,1) values for a fixed seed.
func randomSquare(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// randomInts returns an n×n grid of integers in [-5, 5]; all intermediate
// products stay exactly representable.
func randomInts(n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		for j := range out[i] {
			out[i][j] = float64(rng.Intn(11) - 5)
		}
	}

	return out
}
