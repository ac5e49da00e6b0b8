// Package layer assembles toy feed-forward networks from matrix values.
//
// A Dense layer computes act(W·x + b) where W has one row per output and one
// column per input, b is a single column, and x holds one sample per column.
// A Network chains Dense layers and checks at construction time that each
// layer's outputs match the next layer's inputs.
//
// Only the forward pass exists: there is no training and no autodiff.
//
//	l1, _ := layer.RandomDense(4, 8, activation.KindReLU, 1)
//	l2, _ := layer.RandomDense(8, 3, activation.KindSoftmax, 2)
//	net, _ := layer.NewNetwork(l1, l2)
//	probs, _ := net.Forward(x) // 3 × samples, columns sum to 1
package layer
