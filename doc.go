// Package linalg is a small linear-algebra playground: vectors, matrices and a
// determinant engine whose cells may be scalars or vectors, plus the plumbing
// to feed CSV data through toy feed-forward layers.
//
// 🚀 What is linalg?
//
//	A pure-value library (nothing is mutated in place) that brings together:
//		• Vector & Matrix: elementwise ops, products, Kronecker, reductions
//		• Determinant: recursive cofactor expansion over scalar|vector entries
//		• CrossProduct: the classic | e1 e2 e3 ; u ; v | construction
//		• Activations: relu, sigmoid, tanh, softmax and their derivatives
//		• Layers: Dense + Network forward pass over a batch of samples
//		• Datasets: labelled CSV ingestion, slicing, range normalization
//		• Charts: activation curves and vectors via gonum/plot
//
// ✨ Why choose linalg?
//
//   - Small surface – every type reads like the math it implements
//   - Sentinel errors – match failures with errors.Is, never a panic on input
//   - Interop – hand matrices to gonum/mat for LU/QR/eigen work
//
// Packages:
//
//	matrix/     — Vector, Matrix, Entry, Determinant, CrossProduct, gonum interop
//	activation/ — scalar activation functions, derivatives and the Kind enum
//	layer/      — Dense layers and Networks (forward pass only)
//	dataset/    — CSV → labels + samples × features matrix
//	chart/      — gonum/plot renderings
//	cmd/linalg/ — command-line driver (cross, det, forward, plot)
//
// Quick example:
//
//	| e1 e2 e3 |
//	|  1  2  3 |  =  (-3, 6, -3)
//	|  4  5  6 |
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
