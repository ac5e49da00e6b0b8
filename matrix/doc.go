// Package matrix offers small dense linear-algebra value types and a generalized
// determinant engine.
//
// The matrix package provides:
//
//   - Vector: an immutable fixed-length sequence of float64 with elementwise
//     (Combine, Map), reduction (Sum, Min, Max, Dot) and OuterProduct operations.
//   - Matrix: equal-length row Vectors with Shape {Cols, Rows}; Transpose,
//     Multiply, Hadamard, Add/Subtract/Divide, Kronecker, activation maps
//     (Sigmoid, Relu, Tanh, Softmax) and RestrictRange.
//   - Entry: a tagged value that is either a scalar or a Vector, with arithmetic
//     defined across both kinds.
//   - Determinant: a square grid of Entry values evaluated by recursive cofactor
//     expansion. Because every step runs through Entry arithmetic, a grid whose
//     first row holds basis Vectors evaluates to a Vector: CrossProduct is built
//     exactly that way.
//
// Every operation returns a new value; nothing is mutated in place. Failures are
// reported as wrapped sentinel errors (ErrShapeMismatch, ErrNonSquareMatrix, ...)
// to be matched with errors.Is.
//
// Cofactor expansion costs O(N!) and is meant for small grids. For large
// systems, convert with ToGonum and use gonum's factorizations.
//
//	d, _ := matrix.DeterminantFromScalars([][]float64{{1, 2}, {3, 4}})
//	det, _ := d.Evaluate() // Scalar(-2)
//
//	u := matrix.VectorOf(1, 2, 3)
//	w, _ := u.CrossProduct(matrix.VectorOf(4, 5, 6)) // (-3, 6, -3)
package matrix
