// Package activation provides the scalar activation functions used by toy
// feed-forward layers, together with their derivatives.
//
// Functions:
//   - Identity, ReLU, Sigmoid, Tanh and their *Prime derivatives.
//   - Kind names a function so layers can be configured by value and
//     Kind.Func / Kind.Prime resolve the callable.
//
// Softmax is not a scalar function: it normalizes a whole column and lives on
// matrix.Matrix.
//
//	y := activation.Sigmoid(0.5)
//	f, _ := activation.KindTanh.Func()
package activation
