// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels over matrices of identical shape, expressed row by row
//     through Vector.Combine / Vector.Map so the shape rules live in one place.
//
// Determinism & Performance:
//   - Fixed row order; one fresh row Vector per row; operands are never mutated.
//   - NaN/Inf are not checked and propagate through IEEE-754 semantics.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for elementwise facades.
const (
	opCombine  = "Combine"
	opAdd      = "Add"
	opSubtract = "Subtract"
	opHadamard = "Hadamard"
	opDivide   = "Divide"
)

// Combine returns the matrix with out[y][x] = f(m[y][x], other[y][x]).
//
// Errors:
//   - ErrNilMatrix for a nil operand.
//   - ErrShapeMismatch when the shapes differ.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Combine(other *Matrix, f func(a, b float64) float64) (*Matrix, error) {
	return m.combine(opCombine, other, f)
}

func (m *Matrix) combine(tag string, other *Matrix, f func(a, b float64) float64) (*Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	rows := make([]Vector, len(m.rows))
	for y := range m.rows {
		r, err := m.rows[y].Combine(other.rows[y], f)
		if err != nil {
			return nil, matrixErrorf(tag, fmt.Errorf("row %d: %w", y, err))
		}
		rows[y] = r
	}

	return &Matrix{rows: rows, cols: m.cols}, nil
}

// Map returns the matrix with f applied to every element.
func (m *Matrix) Map(f func(float64) float64) *Matrix {
	rows := make([]Vector, len(m.rows))
	for y, r := range m.rows {
		rows[y] = r.Map(f)
	}

	return &Matrix{rows: rows, cols: m.cols}
}

// Add returns m + other elementwise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.combine(opAdd, other, func(a, b float64) float64 { return a + b })
}

// Subtract returns m - other elementwise.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	return m.combine(opSubtract, other, func(a, b float64) float64 { return a - b })
}

// Hadamard returns the elementwise product m ⊙ other.
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	return m.combine(opHadamard, other, func(a, b float64) float64 { return a * b })
}

// Divide returns m / other elementwise. Division by zero yields ±Inf or NaN.
func (m *Matrix) Divide(other *Matrix) (*Matrix, error) {
	return m.combine(opDivide, other, func(a, b float64) float64 { return a / b })
}

// Scale returns k*m.
func (m *Matrix) Scale(k float64) *Matrix {
	rows := make([]Vector, len(m.rows))
	for y, r := range m.rows {
		rows[y] = r.Scale(k)
	}

	return &Matrix{rows: rows, cols: m.cols}
}

// Exp returns e^x for every element.
func (m *Matrix) Exp() *Matrix { return m.Map(math.Exp) }
