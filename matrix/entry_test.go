// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestEntry_ZeroValueIsScalarZero(t *testing.T) {
	var e matrix.Entry
	assert.True(t, e.IsScalar())
	assert.Equal(t, matrix.KindScalar, e.Kind())
	x, err := e.Scalar()
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)
}

func TestEntry_Unwrap(t *testing.T) {
	s := matrix.ScalarEntry(2)
	v := matrix.VectorEntry(matrix.VectorOf(1, 2))

	_, err := s.Vector()
	assert.ErrorIs(t, err, matrix.ErrEntryTypeMismatch)
	_, err = v.Scalar()
	assert.ErrorIs(t, err, matrix.ErrEntryTypeMismatch)

	got, err := v.Vector()
	require.NoError(t, err)
	assert.True(t, got.Equal(matrix.VectorOf(1, 2)))
	assert.True(t, v.IsVector())
	assert.Equal(t, "vector", v.Kind().String())
	assert.Equal(t, "scalar", s.Kind().String())
}

func TestEntry_Arithmetic(t *testing.T) {
	s2, s3, s6 := matrix.ScalarEntry(2), matrix.ScalarEntry(3), matrix.ScalarEntry(6)
	v12 := matrix.VectorEntry(matrix.VectorOf(1, 2))
	v34 := matrix.VectorEntry(matrix.VectorOf(3, 4))
	v123 := matrix.VectorEntry(matrix.VectorOf(1, 2, 3))

	type binop func(a, b matrix.Entry) (matrix.Entry, error)
	add := func(a, b matrix.Entry) (matrix.Entry, error) { return a.Add(b) }
	sub := func(a, b matrix.Entry) (matrix.Entry, error) { return a.Sub(b) }
	mul := func(a, b matrix.Entry) (matrix.Entry, error) { return a.Mul(b) }
	div := func(a, b matrix.Entry) (matrix.Entry, error) { return a.Div(b) }

	cases := []struct {
		name    string
		op      binop
		a, b    matrix.Entry
		want    matrix.Entry
		wantErr error
	}{
		{"add ss", add, s2, s3, matrix.ScalarEntry(5), nil},
		{"add vv", add, v12, v34, matrix.VectorEntry(matrix.VectorOf(4, 6)), nil},
		{"add sv", add, s2, v12, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
		{"add vs", add, v12, s2, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
		{"add vv len", add, v12, v123, matrix.Entry{}, matrix.ErrShapeMismatch},

		{"sub ss", sub, s2, s3, matrix.ScalarEntry(-1), nil},
		{"sub vv", sub, v34, v12, matrix.VectorEntry(matrix.VectorOf(2, 2)), nil},
		{"sub sv", sub, s2, v12, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
		{"sub vv len", sub, v123, v12, matrix.Entry{}, matrix.ErrShapeMismatch},

		{"mul ss", mul, s2, s3, s6, nil},
		{"mul vv dot", mul, v12, v34, matrix.ScalarEntry(11), nil},
		{"mul sv", mul, s2, v12, matrix.VectorEntry(matrix.VectorOf(2, 4)), nil},
		{"mul vs", mul, v12, s3, matrix.VectorEntry(matrix.VectorOf(3, 6)), nil},
		{"mul vv len", mul, v12, v123, matrix.Entry{}, matrix.ErrShapeMismatch},

		{"div ss", div, s6, s3, s2, nil},
		{"div sv", div, s6, v12, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
		{"div vs", div, v12, s2, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
		{"div vv", div, v12, v34, matrix.Entry{}, matrix.ErrEntryTypeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.op(tc.a, tc.b)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestEntry_String(t *testing.T) {
	assert.Equal(t, "-2.5", matrix.ScalarEntry(-2.5).String())
	assert.Equal(t, "(1, 0)", matrix.VectorEntry(matrix.VectorOf(1, 0)).String())
}
