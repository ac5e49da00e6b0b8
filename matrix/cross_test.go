// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestCrossProduct_BasisVectors(t *testing.T) {
	e1, e2, e3 := mustBasis(t, 3, 0), mustBasis(t, 3, 1), mustBasis(t, 3, 2)

	got, err := e1.CrossProduct(e2)
	require.NoError(t, err)
	assert.True(t, got.Equal(e3), "e1×e2 = %v", got)

	got, err = e2.CrossProduct(e3)
	require.NoError(t, err)
	assert.True(t, got.Equal(e1), "e2×e3 = %v", got)

	got, err = e3.CrossProduct(e1)
	require.NoError(t, err)
	assert.True(t, got.Equal(e2), "e3×e1 = %v", got)
}

func TestCrossProduct_Known(t *testing.T) {
	got, err := matrix.CrossProduct(matrix.VectorOf(1, 2, 3), matrix.VectorOf(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, []float64{-3, 6, -3}, got.Values())

	par, err := matrix.CrossProduct(matrix.VectorOf(1, 2, 3), matrix.VectorOf(4, 5, 6), matrix.WithParallelMinors(3))
	require.NoError(t, err)
	assert.True(t, got.Equal(par))
}

func TestCrossProduct_AntiCommutativeAndOrthogonal(t *testing.T) {
	pairs := [][2]matrix.Vector{
		{matrix.VectorOf(1, 2, 3), matrix.VectorOf(4, 5, 6)},
		{matrix.VectorOf(-1.5, 0, 2), matrix.VectorOf(3, 7, -0.25)},
		{matrix.VectorOf(0.1, 0.2, 0.3), matrix.VectorOf(-9, 8, 1e3)},
		{matrix.VectorOf(1, 1, 1), matrix.VectorOf(2, 2, 2)},
	}
	for i, p := range pairs {
		uv, err := p[0].CrossProduct(p[1])
		require.NoError(t, err)
		vu, err := p[1].CrossProduct(p[0])
		require.NoError(t, err)
		assert.True(t, uv.Equal(vu.Scale(-1)), "pair %d: %v vs %v", i, uv, vu)

		for _, w := range p {
			dot, err := uv.Dot(w)
			require.NoError(t, err)
			assert.InDelta(t, 0, dot, 1e-9, "pair %d", i)
		}
	}
}

func TestCrossProduct_Errors(t *testing.T) {
	_, err := matrix.CrossProduct(matrix.VectorOf(1, 2, 3), matrix.VectorOf(1, 2))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	for _, n := range []int{0, 1, 2, 4} {
		u := matrix.NewVector(n)
		_, err = u.CrossProduct(matrix.NewVector(n))
		assert.ErrorIs(t, err, matrix.ErrUnsupportedDimension, "n=%d", n)
	}
}
