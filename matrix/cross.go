// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// crossDim is the only dimension in which the classic cross product is defined.
const crossDim = 3

const opCrossProduct = "CrossProduct"

// CrossProduct returns u × v for two three-dimensional vectors by evaluating
//
//	| e1 e2 e3 |
//	| u1 u2 u3 |
//	| v1 v2 v3 |
//
// where row 0 holds the standard basis Vectors and rows 1-2 the scalar
// components. Entry arithmetic turns the expansion into a Vector.
//
// Errors:
//   - ErrShapeMismatch when len(u) != len(v).
//   - ErrUnsupportedDimension when the common length is not 3.
func CrossProduct(u, v Vector, opts ...Option) (Vector, error) {
	if u.Len() != v.Len() {
		return Vector{}, fmt.Errorf("%s: len %d vs %d: %w", opCrossProduct, u.Len(), v.Len(), ErrShapeMismatch)
	}
	if u.Len() != crossDim {
		return Vector{}, fmt.Errorf("%s: len %d, want %d: %w", opCrossProduct, u.Len(), crossDim, ErrUnsupportedDimension)
	}

	grid := [][]Entry{
		make([]Entry, crossDim),
		make([]Entry, crossDim),
		make([]Entry, crossDim),
	}
	for i := 0; i < crossDim; i++ {
		e, err := Basis(crossDim, i)
		if err != nil {
			return Vector{}, matrixErrorf(opCrossProduct, err)
		}
		grid[0][i] = VectorEntry(e)
		grid[1][i] = ScalarEntry(u.data[i])
		grid[2][i] = ScalarEntry(v.data[i])
	}

	d, err := NewDeterminant(grid, opts...)
	if err != nil {
		return Vector{}, matrixErrorf(opCrossProduct, err)
	}
	res, err := d.Evaluate()
	if err != nil {
		return Vector{}, matrixErrorf(opCrossProduct, err)
	}
	// A basis row of Vectors always yields a Vector; a scalar here is a broken invariant.
	out, err := res.Vector()
	if err != nil {
		return Vector{}, matrixErrorf(opCrossProduct, err)
	}

	return out, nil
}
