// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

func TestTranspose_Elements(t *testing.T) {
	m := mustSlices(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	assert.Equal(t, matrix.Shape{Cols: 2, Rows: 3}, tr.Shape())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			a, _ := m.Get(x, y)
			b, _ := tr.Get(y, x)
			assert.Equal(t, a, b)
		}
	}
}

func TestTranspose_Involution(t *testing.T) {
	shapes := []matrix.Shape{
		{Cols: 0, Rows: 0},
		{Cols: 1, Rows: 1},
		{Cols: 3, Rows: 2},
		{Cols: 1, Rows: 5},
		{Cols: 4, Rows: 0},
		{Cols: 0, Rows: 3},
	}
	for _, s := range shapes {
		m, err := matrix.New(s)
		require.NoError(t, err)
		m = m.Map(func(float64) float64 { return 7 })
		got := m.Transpose().Transpose()
		assert.True(t, m.Equal(got), "shape %v", s)
		assert.Equal(t, matrix.Shape{Cols: s.Rows, Rows: s.Cols}, m.Transpose().Shape())
	}
}

func TestMultiply_AgainstDotProducts(t *testing.T) {
	a := mustSlices(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustSlices(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := a.Multiply(b)
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Cols: 2, Rows: 2}, p.Shape())
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, p.Values())

	for y := 0; y < a.Rows(); y++ {
		row, _ := a.Row(y)
		for x := 0; x < b.Cols(); x++ {
			col, _ := b.Col(x)
			want, err := row.Dot(col)
			require.NoError(t, err)
			got, _ := p.Get(x, y)
			assert.Equal(t, want, got)
		}
	}

	q, err := matrix.Product(b, a)
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Cols: 3, Rows: 3}, q.Shape())
}

func TestMultiply_MatchesGonum(t *testing.T) {
	a := mustSlices(t, randomSquare(4, 11)[:3])
	b := mustSlices(t, randomSquare(4, 12))

	p, err := a.Multiply(b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	got, err := matrix.FromGonum(&want)
	require.NoError(t, err)
	assert.True(t, p.EqualApprox(got, epsTight))
}

func TestMultiply_Errors(t *testing.T) {
	a := mustSlices(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := a.Multiply(a)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = a.Multiply(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Product(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMultiply_NaNPropagates(t *testing.T) {
	a := mustSlices(t, [][]float64{{0}})
	b := mustSlices(t, [][]float64{{math.NaN()}})
	p, err := a.Multiply(b)
	require.NoError(t, err)
	x, _ := p.Get(0, 0)
	assert.True(t, math.IsNaN(x), "0·NaN must stay NaN")
}

func TestMultiply_Identity(t *testing.T) {
	a := mustSlices(t, randomSquare(3, 5))
	id, err := matrix.IdentityLike(a)
	require.NoError(t, err)
	p, err := a.Multiply(id)
	require.NoError(t, err)
	assert.True(t, a.Equal(p))

	_, err = matrix.IdentityLike(mustSlices(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrNonSquareMatrix)
}

func TestKronecker(t *testing.T) {
	a := mustSlices(t, [][]float64{{1, 2}, {3, 4}})
	b := mustSlices(t, [][]float64{{0, 5}, {6, 7}})

	k, err := a.Kronecker(b)
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Cols: 4, Rows: 4}, k.Shape())
	assert.Equal(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
		{0, 15, 0, 20},
		{18, 21, 24, 28},
	}, k.Values())

	row := mustSlices(t, [][]float64{{1, 2}})
	col := mustSlices(t, [][]float64{{1}, {2}})
	k, err = matrix.Kron(row, col)
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Cols: 2, Rows: 2}, k.Shape())
	assert.Equal(t, [][]float64{{1, 2}, {2, 4}}, k.Values())

	_, err = a.Kronecker(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFacades(t *testing.T) {
	a := mustSlices(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(a)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), z.Shape())
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, z.Values())

	assert.True(t, a.Transpose().Equal(matrix.T(a)))

	det, err := matrix.Det(a)
	require.NoError(t, err)
	assert.Equal(t, -2.0, det)

	_, err = matrix.Det(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ZerosLike(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
