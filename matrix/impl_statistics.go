// SPDX-License-Identifier: MIT
// Package matrix - reductions and range rescaling.
//
// Purpose:
//   - Row/column sums, global Min/Max, and RestrictRange (affine rescale of the
//     current [min, max] onto a target [low, high]).
//
// Policy:
//   - Reductions over zero elements fail with ErrEmptyVector rather than returning
//     a sentinel extreme.
//   - RestrictRange rejects low >= high (ErrInvalidRange) and a zero-spread matrix
//     (ErrDegenerateRange) before dividing.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for reductions.
const (
	opMin           = "Matrix.Min"
	opMax           = "Matrix.Max"
	opRestrictRange = "RestrictRange"
)

// Sum returns the per-row sums (len Rows) and per-column sums (len Cols).
// Complexity: O(r*c).
func (m *Matrix) Sum() (rowSums, colSums []float64) {
	rowSums = make([]float64, len(m.rows))
	colSums = make([]float64, m.cols)
	for y, r := range m.rows {
		rowSums[y] = r.Sum()
		floats.Add(colSums, r.data)
	}

	return rowSums, colSums
}

// Min returns the smallest element.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrEmptyVector when the matrix holds no elements.
func (m *Matrix) Min() (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMin, err)
	}
	if m.empty() {
		return 0, matrixErrorf(opMin, ErrEmptyVector)
	}
	best := floats.Min(m.rows[0].data)
	for _, r := range m.rows[1:] {
		if v := floats.Min(r.data); v < best {
			best = v
		}
	}

	return best, nil
}

// Max returns the largest element.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrEmptyVector when the matrix holds no elements.
func (m *Matrix) Max() (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMax, err)
	}
	if m.empty() {
		return 0, matrixErrorf(opMax, ErrEmptyVector)
	}
	best := floats.Max(m.rows[0].data)
	for _, r := range m.rows[1:] {
		if v := floats.Max(r.data); v > best {
			best = v
		}
	}

	return best, nil
}

// empty reports whether the matrix holds zero elements.
func (m *Matrix) empty() bool { return len(m.rows) == 0 || m.cols == 0 }

// RestrictRange rescales every element so that the current minimum maps to low
// and the current maximum maps to high: x → s·x − c with s = (high−low)/(max−min)
// and c = max·s − high.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrInvalidRange when low >= high.
//   - ErrEmptyVector for an empty matrix.
//   - ErrDegenerateRange when max == min.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) RestrictRange(low, high float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRestrictRange, err)
	}
	if !(low < high) {
		return nil, fmt.Errorf("%s(%g,%g): %w", opRestrictRange, low, high, ErrInvalidRange)
	}
	lo, err := m.Min()
	if err != nil {
		return nil, matrixErrorf(opRestrictRange, err)
	}
	hi, err := m.Max()
	if err != nil {
		return nil, matrixErrorf(opRestrictRange, err)
	}
	if hi == lo {
		return nil, fmt.Errorf("%s: min == max == %g: %w", opRestrictRange, lo, ErrDegenerateRange)
	}

	s := (high - low) / (hi - lo)
	c := hi*s - high

	return m.Map(func(x float64) float64 { return s*x - c }), nil
}
