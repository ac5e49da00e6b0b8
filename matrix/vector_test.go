// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewVector_ZeroFilled(t *testing.T) {
	v := matrix.NewVector(3)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, []float64{0, 0, 0}, v.Values())

	var zero matrix.Vector
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "()", zero.String())
}

func TestFromValues_CopiesInput(t *testing.T) {
	in := []float64{1, 2, 3}
	v := matrix.FromValues(in)
	in[0] = 100
	assert.Equal(t, []float64{1, 2, 3}, v.Values())

	out := v.Values()
	out[1] = -1
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x, "Values must hand out a copy")
}

func TestVector_At(t *testing.T) {
	v := matrix.VectorOf(4, 5)
	x, err := v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, x)

	for _, i := range []int{-1, 2} {
		_, err = v.At(i)
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "i=%d", i)
	}
}

func TestVector_Combine(t *testing.T) {
	cases := []struct {
		name string
		u, v []float64
	}{
		{"empty", nil, nil},
		{"single", []float64{2}, []float64{-3}},
		{"triple", []float64{1, 2, 3}, []float64{4, 5, 6}},
		{"mixed signs", []float64{-1.5, 0, 7}, []float64{0.5, -2, 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, v := matrix.FromValues(tc.u), matrix.FromValues(tc.v)
			sum, err := u.Combine(v, func(a, b float64) float64 { return a + b })
			require.NoError(t, err)
			require.Equal(t, len(tc.u), sum.Len())
			for i := range tc.u {
				got, _ := sum.At(i)
				assert.Equal(t, tc.u[i]+tc.v[i], got)
			}
			// Inputs are untouched.
			assert.True(t, u.Equal(matrix.FromValues(tc.u)))
		})
	}
}

func TestVector_CombineLengthMismatch(t *testing.T) {
	u, v := matrix.VectorOf(1, 2), matrix.VectorOf(1, 2, 3)

	_, err := u.Combine(v, func(a, b float64) float64 { return a * b })
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = u.Add(v)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = u.Sub(v)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = u.Dot(v)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = u.Distance(v)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestVector_MapScale(t *testing.T) {
	v := matrix.VectorOf(1, -2, 3)
	assert.Equal(t, []float64{1, 4, 9}, v.Map(func(x float64) float64 { return x * x }).Values())
	assert.Equal(t, []float64{-2, 4, -6}, v.Scale(-2).Values())
	assert.Equal(t, []float64{1, -2, 3}, v.Values())
}

func TestVector_AddSub(t *testing.T) {
	u, v := matrix.VectorOf(1, 2, 3), matrix.VectorOf(10, 20, 30)
	s, err := u.Add(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33}, s.Values())

	d, err := v.Sub(u)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27}, d.Values())
}

func TestVector_Dot(t *testing.T) {
	d, err := matrix.VectorOf(1, 2, 3).Dot(matrix.VectorOf(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	d, err = matrix.Vector{}.Dot(matrix.Vector{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestVector_OuterProduct(t *testing.T) {
	m := matrix.VectorOf(1, 2).OuterProduct(matrix.VectorOf(3, 4, 5))
	assert.Equal(t, matrix.Shape{Cols: 3, Rows: 2}, m.Shape())
	assert.Equal(t, [][]float64{{3, 4, 5}, {6, 8, 10}}, m.Values())

	empty := matrix.Vector{}.OuterProduct(matrix.VectorOf(1, 2))
	assert.Equal(t, matrix.Shape{Cols: 2, Rows: 0}, empty.Shape())
}

func TestVector_Reductions(t *testing.T) {
	v := matrix.VectorOf(3, -1, 7, 2)
	assert.Equal(t, 11.0, v.Sum())

	lo, err := v.Min()
	require.NoError(t, err)
	assert.Equal(t, -1.0, lo)
	hi, err := v.Max()
	require.NoError(t, err)
	assert.Equal(t, 7.0, hi)

	var empty matrix.Vector
	assert.Equal(t, 0.0, empty.Sum())
	_, err = empty.Min()
	assert.ErrorIs(t, err, matrix.ErrEmptyVector)
	_, err = empty.Max()
	assert.ErrorIs(t, err, matrix.ErrEmptyVector)
}

func TestVector_NormDistance(t *testing.T) {
	assert.Equal(t, 5.0, matrix.VectorOf(3, 4).Norm())

	d, err := matrix.VectorOf(1, 1).Distance(matrix.VectorOf(4, 5))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, epsTight)
}

func TestBasis(t *testing.T) {
	e := mustBasis(t, 3, 1)
	assert.Equal(t, []float64{0, 1, 0}, e.Values())

	for _, i := range []int{-1, 3} {
		_, err := matrix.Basis(3, i)
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	}
}

func TestVector_Equal(t *testing.T) {
	assert.True(t, matrix.VectorOf(1, 2).Equal(matrix.VectorOf(1, 2)))
	assert.False(t, matrix.VectorOf(1, 2).Equal(matrix.VectorOf(1, 2, 0)))
	assert.False(t, matrix.VectorOf(math.NaN()).Equal(matrix.VectorOf(math.NaN())))
	assert.True(t, matrix.VectorOf(1).EqualApprox(matrix.VectorOf(1+1e-12), epsTight))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", matrix.VectorOf(1, 2.5, -3).String())
}
