// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels wrapped with an operation tag and
// tests check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for nonsensical Option values.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// with matrixErrorf(tag, ErrX) at the detection site; callers still match with
// errors.Is.

var (
	// ErrShapeMismatch indicates operand shapes disagree for an elementwise or
	// product operation (e.g. Add of (2,3) and (3,2), Multiply with cols != rows).
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrNonSquareDeterminant signals a ragged or non-square entry grid passed
	// to a Determinant constructor.
	ErrNonSquareDeterminant = errors.New("matrix: determinant grid is not square")

	// ErrNonSquareMatrix signals that a square matrix was required but the input wasn't.
	ErrNonSquareMatrix = errors.New("matrix: matrix is not square")

	// ErrEntryTypeMismatch signals Entry arithmetic on an unsupported tag
	// combination (Scalar+Vector, any Vector division) or an unwrap to the wrong kind.
	ErrEntryTypeMismatch = errors.New("matrix: entry type mismatch")

	// ErrInvalidRange indicates an empty or inverted interval (low >= high, from >= to).
	ErrInvalidRange = errors.New("matrix: invalid range")

	// ErrDegenerateRange indicates a zero-width source interval (max == min) that
	// cannot be rescaled.
	ErrDegenerateRange = errors.New("matrix: degenerate range")

	// ErrIndexOutOfRange indicates that an index is outside the valid bounds.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyVector indicates a reduction (Min/Max) over zero elements.
	ErrEmptyVector = errors.New("matrix: empty vector")

	// ErrUnsupportedDimension indicates an operation defined only for specific
	// lengths, e.g. CrossProduct outside three dimensions.
	ErrUnsupportedDimension = errors.New("matrix: unsupported dimension")

	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports a shape mismatch together with both operand shapes.
func shapeErrorf(tag string, a, b Shape) error {
	return fmt.Errorf("%s: %v vs %v: %w", tag, a, b, ErrShapeMismatch)
}
