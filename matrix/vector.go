// SPDX-License-Identifier: MIT

// Package matrix - Vector: fixed-length ordered sequence of float64 values.
//
// Purpose:
//   - Provide the value type every Matrix row and every vector-valued Entry is built from.
//   - Keep operations pure: every method returns a fresh Vector and never mutates the receiver.
//   - Delegate tight reductions (Sum, Dot, Min, Max, Norm) to gonum/floats.
//
// Complexity quicksheet:
//   - Combine/Map/Add/Sub/Scale/Dot/Sum/Min/Max: O(n); OuterProduct: O(n*m).

package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Operation tags used when wrapping Vector errors.
const (
	opVecAt       = "Vector.At"
	opVecCombine  = "Vector.Combine"
	opVecDot      = "Vector.Dot"
	opVecMin      = "Vector.Min"
	opVecMax      = "Vector.Max"
	opVecDistance = "Vector.Distance"
	opBasis       = "Basis"
)

// ---------- Formatting literals ----------
const (
	_fmtVecOpen  = "("
	_fmtVecClose = ")"
	_fmtSep      = ", "
)

// Vector is an immutable, fixed-length sequence of float64 values.
// The zero value is the empty vector (length 0).
type Vector struct {
	data []float64 // exclusively owned; never handed out without a copy
}

// NewVector returns a zero-filled vector of the given length.
// It panics if length < 0, exactly like make.
// Complexity: O(n).
func NewVector(length int) Vector {
	return Vector{data: make([]float64, length)}
}

// FromValues returns a vector holding exactly values, in order.
// The input slice is copied; later writes to it do not affect the Vector.
// Complexity: O(n).
func FromValues(values []float64) Vector {
	cp := make([]float64, len(values))
	copy(cp, values)

	return Vector{data: cp}
}

// VectorOf is the variadic form of FromValues.
func VectorOf(values ...float64) Vector { return FromValues(values) }

// Basis returns the i-th standard basis vector of length n (a single 1 at i).
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, n).
func Basis(n, i int) (Vector, error) {
	if i < 0 || i >= n {
		return Vector{}, fmt.Errorf("%s(%d,%d): %w", opBasis, n, i, ErrIndexOutOfRange)
	}
	e := NewVector(n)
	e.data[i] = 1

	return e, nil
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.data) }

// At returns element i or ErrIndexOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opVecAt, i, ErrIndexOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the elements.
func (v Vector) Values() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Combine returns a new vector with result[i] = f(v[i], other[i]).
//
// Errors:
//   - ErrShapeMismatch when the lengths differ.
//
// Complexity:
//   - Time O(n), Space O(n).
func (v Vector) Combine(other Vector, f func(a, b float64) float64) (Vector, error) {
	if len(v.data) != len(other.data) {
		return Vector{}, fmt.Errorf("%s: len %d vs %d: %w", opVecCombine, len(v.data), len(other.data), ErrShapeMismatch)
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = f(v.data[i], other.data[i])
	}

	return Vector{data: out}, nil
}

// Map returns a new vector with f applied to every element.
func (v Vector) Map(f func(float64) float64) Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = f(x)
	}

	return Vector{data: out}
}

// Add returns v + other elementwise.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.Combine(other, func(a, b float64) float64 { return a + b })
}

// Sub returns v - other elementwise.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.Combine(other, func(a, b float64) float64 { return a - b })
}

// Scale returns k*v.
func (v Vector) Scale(k float64) Vector {
	out := v.Values()
	floats.Scale(k, out)

	return Vector{data: out}
}

// Dot returns the sum of elementwise products.
//
// Errors:
//   - ErrShapeMismatch when the lengths differ.
func (v Vector) Dot(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, fmt.Errorf("%s: len %d vs %d: %w", opVecDot, len(v.data), len(other.data), ErrShapeMismatch)
	}

	return floats.Dot(v.data, other.data), nil
}

// OuterProduct returns the matrix with len(v) rows and len(other) columns
// where row i, column j holds v[i]*other[j]. Its Shape is
// {Cols: len(other), Rows: len(v)}.
// Complexity: O(n*m).
func (v Vector) OuterProduct(other Vector) *Matrix {
	rows := make([]Vector, len(v.data))
	for i, a := range v.data {
		rows[i] = other.Scale(a)
	}

	return &Matrix{rows: rows, cols: len(other.data)}
}

// Sum returns the sum of all elements (0 for the empty vector).
func (v Vector) Sum() float64 { return floats.Sum(v.data) }

// Min returns the smallest element.
//
// Errors:
//   - ErrEmptyVector on a zero-length vector.
func (v Vector) Min() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecMin, ErrEmptyVector)
	}

	return floats.Min(v.data), nil
}

// Max returns the largest element.
//
// Errors:
//   - ErrEmptyVector on a zero-length vector.
func (v Vector) Max() (float64, error) {
	if len(v.data) == 0 {
		return 0, matrixErrorf(opVecMax, ErrEmptyVector)
	}

	return floats.Max(v.data), nil
}

// Norm returns the Euclidean (L2) length of v.
func (v Vector) Norm() float64 { return floats.Norm(v.data, 2) }

// Distance returns the Euclidean distance between v and other.
//
// Errors:
//   - ErrShapeMismatch when the lengths differ.
func (v Vector) Distance(other Vector) (float64, error) {
	if len(v.data) != len(other.data) {
		return 0, fmt.Errorf("%s: len %d vs %d: %w", opVecDistance, len(v.data), len(other.data), ErrShapeMismatch)
	}

	return floats.Distance(v.data, other.data, 2), nil
}

// CrossProduct returns v × other for three-dimensional vectors.
// See the package-level CrossProduct for the construction and errors.
func (v Vector) CrossProduct(other Vector) (Vector, error) {
	return CrossProduct(v, other)
}

// Equal reports exact elementwise equality including length.
func (v Vector) Equal(other Vector) bool { return floats.Equal(v.data, other.data) }

// EqualApprox reports elementwise equality within an absolute tolerance.
func (v Vector) EqualApprox(other Vector, tol float64) bool {
	return floats.EqualApprox(v.data, other.data, tol)
}

// String renders the vector as "(1, 2, 3)".
func (v Vector) String() string {
	return v.format(DefaultFormatVerb, DefaultFormatPrec)
}

func (v Vector) format(verb byte, prec int) string {
	var b strings.Builder
	b.WriteString(_fmtVecOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, verb, prec, 64))
	}
	b.WriteString(_fmtVecClose)

	return b.String()
}
