// SPDX-License-Identifier: MIT

// Package matrix provides converters between *Matrix and gonum's mat types so
// callers can hand results to LU/QR/eigen routines this package does not own.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense (row-major, rows × cols).
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//   - ErrBadShape for a matrix with zero rows or columns (gonum forbids them).
//
// Complexity: O(r*c).
func ToGonum(m *Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.empty() {
		return nil, fmt.Errorf("%s%v: %w", opToGonum, m.Shape(), ErrBadShape)
	}
	data := make([]float64, 0, len(m.rows)*m.cols)
	for _, r := range m.rows {
		data = append(data, r.data...)
	}

	return mat.NewDense(len(m.rows), m.cols, data), nil
}

// FromGonum copies any gonum matrix into a *Matrix.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	rows := make([]Vector, r)
	for i := 0; i < r; i++ {
		buf := make([]float64, c)
		for j := 0; j < c; j++ {
			buf[j] = a.At(i, j)
		}
		rows[i] = Vector{data: buf}
	}

	return &Matrix{rows: rows, cols: c}, nil
}
