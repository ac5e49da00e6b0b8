// SPDX-License-Identifier: MIT
// Package matrix - product and transform kernels: Transpose, Multiply, Kronecker.
//
// Notes:
//   - All kernels allocate a fresh result; operands are never mutated.
//   - Overflow and NaN are not checked; they propagate through IEEE-754 semantics,
//     so no kernel skips zero factors (0·NaN must stay NaN).

package matrix

import "fmt"

// Operation tags for product/transform kernels.
const (
	opMultiply  = "Multiply"
	opKronecker = "Kronecker"
)

// Transpose returns the matrix with T[x][y] = m[y][x]; a (C, R) shape becomes (R, C).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Transpose() *Matrix {
	rows := make([]Vector, m.cols)
	for x := range rows {
		rows[x] = m.col(x)
	}

	return &Matrix{rows: rows, cols: len(m.rows)}
}

// Multiply returns the matrix product m × other.
//
// Implementation:
//   - Stage 1: validate m.Cols == other.Rows.
//   - Stage 2: i→k→j accumulation into a fresh row buffer, summing over the shared dimension.
//
// Returns:
//   - *Matrix with Shape {Cols: other.Cols, Rows: m.Rows}.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	var (
		i, k, j int
		a       float64
	)
	rows := make([]Vector, len(m.rows))
	for i = 0; i < len(m.rows); i++ {
		acc := make([]float64, other.cols)
		for k = 0; k < m.cols; k++ {
			a = m.rows[i].data[k]
			bk := other.rows[k].data
			for j = 0; j < other.cols; j++ {
				acc[j] += a * bk[j]
			}
		}
		rows[i] = Vector{data: acc}
	}

	return &Matrix{rows: rows, cols: other.cols}, nil
}

// Kronecker returns the Kronecker product m ⊗ other.
//
// Implementation:
//   - The result has Shape {Cols: c1*c2, Rows: r1*r2}.
//   - out[y][x] = m[y / r2][x / c2] · other[y % r2][x % c2].
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//
// Complexity:
//   - Time O(r1*r2*c1*c2), Space O(r1*r2*c1*c2).
func (m *Matrix) Kronecker(other *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(opKronecker, fmt.Errorf("other: %w", err))
	}

	r2, c2 := len(other.rows), other.cols
	outRows, outCols := len(m.rows)*r2, m.cols*c2
	rows := make([]Vector, outRows)
	for y := 0; y < outRows; y++ {
		ra := m.rows[y/r2].data
		rb := other.rows[y%r2].data
		buf := make([]float64, outCols)
		for x := 0; x < outCols; x++ {
			buf[x] = ra[x/c2] * rb[x%c2]
		}
		rows[y] = Vector{data: buf}
	}

	return &Matrix{rows: rows, cols: outCols}, nil
}
