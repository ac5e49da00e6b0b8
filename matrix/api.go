// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the methods.
//   - Each facade delegates to the canonical implementation.

package matrix

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New(m.Shape())
}

// IdentityLike returns the identity with dimension Rows(m); requires a square m.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity(m.Rows())
}

// Product is an alias for a.Multiply(b).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return a.Multiply(b)
}

// T is an alias for m.Transpose().
func T(m *Matrix) *Matrix { return m.Transpose() }

// Det is an alias for m.Determinant(opts...).
func Det(m *Matrix, opts ...Option) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opMatDeterminant, err)
	}

	return m.Determinant(opts...)
}

// Kron is an alias for a.Kronecker(b).
func Kron(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKronecker, err)
	}

	return a.Kronecker(b)
}
