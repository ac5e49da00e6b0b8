// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/squareness checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap again with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate only on failure.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shapes.
// Assumes both are non-nil.
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.Shape() != b.Shape() {
		return shapeErrorf("ValidateSameShape", a.Shape(), b.Shape())
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for a product a × b.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return fmt.Errorf("ValidateMulCompatible: %v x %v: %w", a.Shape(), b.Shape(), ErrShapeMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
func ValidateSquare(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if !m.Shape().Square() {
		return fmt.Errorf("ValidateSquare: %v: %w", m.Shape(), ErrNonSquareMatrix)
	}

	return nil
}

// validateGrid ensures an entry grid is square: every row has len(grid) entries.
func validateGrid(grid [][]Entry) error {
	n := len(grid)
	for y, row := range grid {
		if len(row) != n {
			return fmt.Errorf("validateGrid: row %d has %d entries, want %d: %w", y, len(row), n, ErrNonSquareDeterminant)
		}
	}

	return nil
}
