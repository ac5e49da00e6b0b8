// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (ordered row Vectors) & safe accessors.
//
// Purpose:
//   - Hold R row Vectors of identical length C; Shape is reported as {Cols: C, Rows: R}.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep every operation value-returning: a *Matrix is never mutated after construction.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; Get: O(1); Row: O(1); Col: O(r); Slice: O(to-from).

package matrix

import (
	"fmt"
	"strings"
)

// Operation tags used by constructors and accessors.
const (
	opNew         = "New"
	opFromRows    = "FromRows"
	opFromSlices  = "FromSlices"
	opFromColumns = "FromColumns"
	opIdentity    = "Identity"
	opGet         = "Get"
	opRow         = "Row"
	opCol         = "Col"
	opSlice       = "Slice"
)

// ---------- Formatting literals ----------
const (
	_fmtMatOpen   = "Matrix[\n    "
	_fmtMatRowSep = "\n    "
	_fmtMatClose  = "\n]"
)

// Shape describes a matrix as {Cols, Rows}: Cols is the length of every row
// Vector and Rows is the number of row Vectors.
type Shape struct {
	Cols int // row length (x extent)
	Rows int // number of rows (y extent)
}

// String renders the shape as "(cols, rows)".
func (s Shape) String() string { return fmt.Sprintf("(%d, %d)", s.Cols, s.Rows) }

// Square reports whether Cols == Rows.
func (s Shape) Square() bool { return s.Cols == s.Rows }

// Matrix is an immutable, row-major collection of equal-length row Vectors.
//   - rows holds the row Vectors (each exactly cols long).
//   - cols is stored explicitly so a matrix with zero rows keeps its width.
type Matrix struct {
	rows []Vector
	cols int
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns an all-zero matrix of the given shape.
//
// Errors:
//   - ErrBadShape when a dimension is negative.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(shape Shape) (*Matrix, error) {
	if shape.Cols < 0 || shape.Rows < 0 {
		return nil, fmt.Errorf("%s%v: %w", opNew, shape, ErrBadShape)
	}
	rows := make([]Vector, shape.Rows)
	for y := range rows {
		rows[y] = NewVector(shape.Cols)
	}

	return &Matrix{rows: rows, cols: shape.Cols}, nil
}

// FromRows builds a matrix from equal-length row vectors. Rows are shared, not
// copied: Vectors are immutable.
//
// Errors:
//   - ErrShapeMismatch when any row differs in length from the first.
func FromRows(rows []Vector) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	width := rows[0].Len()
	out := make([]Vector, len(rows))
	for y, r := range rows {
		if r.Len() != width {
			return nil, fmt.Errorf("%s: row %d has length %d, want %d: %w", opFromRows, y, r.Len(), width, ErrShapeMismatch)
		}
		out[y] = r
	}

	return &Matrix{rows: out, cols: width}, nil
}

// FromSlices builds a matrix whose rows are copies of the given slices.
//
// Errors:
//   - ErrShapeMismatch on ragged input.
func FromSlices(values [][]float64) (*Matrix, error) {
	rows := make([]Vector, len(values))
	for y, r := range values {
		rows[y] = FromValues(r)
	}
	m, err := FromRows(rows)
	if err != nil {
		return nil, matrixErrorf(opFromSlices, err)
	}

	return m, nil
}

// FromColumns builds a matrix where each input slice is one column.
// It is the column-major counterpart of FromSlices.
//
// Errors:
//   - ErrShapeMismatch on ragged input.
func FromColumns(columns [][]float64) (*Matrix, error) {
	m, err := FromSlices(columns)
	if err != nil {
		return nil, matrixErrorf(opFromColumns, err)
	}

	return m.Transpose(), nil
}

// Identity returns the n×n identity matrix.
//
// Errors:
//   - ErrBadShape when n < 0.
func Identity(n int) (*Matrix, error) {
	m, err := New(Shape{Cols: n, Rows: n})
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.rows[i].data[i] = 1 // freshly allocated rows, not yet shared
	}

	return m, nil
}

// Shape returns {Cols, Rows}.
func (m *Matrix) Shape() Shape { return Shape{Cols: m.cols, Rows: len(m.rows)} }

// Rows returns the number of row vectors.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the length of every row vector.
func (m *Matrix) Cols() int { return m.cols }

// Get returns the element in column x of row y.
//
// Errors:
//   - ErrIndexOutOfRange when (x, y) lies outside the shape.
func (m *Matrix) Get(x, y int) (float64, error) {
	if x < 0 || x >= m.cols || y < 0 || y >= len(m.rows) {
		return 0, fmt.Errorf("%s(%d,%d): %w", opGet, x, y, ErrIndexOutOfRange)
	}

	return m.rows[y].data[x], nil
}

// Row returns row y.
//
// Errors:
//   - ErrIndexOutOfRange when y is outside [0, Rows).
func (m *Matrix) Row(y int) (Vector, error) {
	if y < 0 || y >= len(m.rows) {
		return Vector{}, fmt.Errorf("%s(%d): %w", opRow, y, ErrIndexOutOfRange)
	}

	return m.rows[y], nil
}

// Col materializes column x as a Vector.
//
// Errors:
//   - ErrIndexOutOfRange when x is outside [0, Cols).
func (m *Matrix) Col(x int) (Vector, error) {
	if x < 0 || x >= m.cols {
		return Vector{}, fmt.Errorf("%s(%d): %w", opCol, x, ErrIndexOutOfRange)
	}

	return m.col(x), nil
}

// col is the unchecked column materializer.
func (m *Matrix) col(x int) Vector {
	out := make([]float64, len(m.rows))
	for y, r := range m.rows {
		out[y] = r.data[x]
	}

	return Vector{data: out}
}

// RowVectors returns the row vectors in order.
func (m *Matrix) RowVectors() []Vector {
	out := make([]Vector, len(m.rows))
	copy(out, m.rows)

	return out
}

// Values returns a deep copy of the elements as row slices.
func (m *Matrix) Values() [][]float64 {
	out := make([][]float64, len(m.rows))
	for y, r := range m.rows {
		out[y] = r.Values()
	}

	return out
}

// Slice returns rows [from, to) as a new matrix of the same width.
//
// Errors:
//   - ErrInvalidRange when from >= to.
//   - ErrIndexOutOfRange when the range exceeds the row count.
func (m *Matrix) Slice(from, to int) (*Matrix, error) {
	if from >= to {
		return nil, fmt.Errorf("%s(%d,%d): %w", opSlice, from, to, ErrInvalidRange)
	}
	if from < 0 || to > len(m.rows) {
		return nil, fmt.Errorf("%s(%d,%d): %w", opSlice, from, to, ErrIndexOutOfRange)
	}
	rows := make([]Vector, to-from)
	copy(rows, m.rows[from:to])

	return &Matrix{rows: rows, cols: m.cols}, nil
}

// Equal reports structural equality: identical shape and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Shape() != other.Shape() {
		return false
	}
	for y := range m.rows {
		if !m.rows[y].Equal(other.rows[y]) {
			return false
		}
	}

	return true
}

// EqualApprox reports identical shape and elementwise |a-b| <= tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Shape() != other.Shape() {
		return false
	}
	for y := range m.rows {
		if !m.rows[y].EqualApprox(other.rows[y], tol) {
			return false
		}
	}

	return true
}

// String renders the matrix one row vector per line:
//
//	Matrix[
//	    (1, 2)
//	    (3, 4)
//	]
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString(_fmtMatOpen)
	for y, r := range m.rows {
		if y > 0 {
			b.WriteString(_fmtMatRowSep)
		}
		b.WriteString(r.String())
	}
	b.WriteString(_fmtMatClose)

	return b.String()
}
