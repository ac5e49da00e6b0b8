// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags for Network.
const (
	opNewNetwork = "NewNetwork"
	opNetForward = "Network.Forward"
	opPredict    = "Network.Predict"
	opAccuracy   = "Accuracy"
)

// Network is an ordered, immutable chain of Dense layers.
type Network struct {
	layers []*Dense
}

// NewNetwork chains layers in order.
//
// Errors:
//   - ErrEmptyNetwork when no layer is given.
//   - ErrNilLayer for a nil layer.
//   - matrix.ErrShapeMismatch when a layer's Outputs differ from the next layer's Inputs.
func NewNetwork(layers ...*Dense) (*Network, error) {
	if len(layers) == 0 {
		return nil, layerErrorf(opNewNetwork, ErrEmptyNetwork)
	}
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("%s: layer %d: %w", opNewNetwork, i, ErrNilLayer)
		}
		if i > 0 && layers[i-1].Outputs() != l.Inputs() {
			return nil, fmt.Errorf("%s: layer %d outputs %d, layer %d inputs %d: %w",
				opNewNetwork, i-1, layers[i-1].Outputs(), i, l.Inputs(), matrix.ErrShapeMismatch)
		}
	}
	cp := make([]*Dense, len(layers))
	copy(cp, layers)

	return &Network{layers: cp}, nil
}

// Layers returns the layers in evaluation order.
func (n *Network) Layers() []*Dense {
	cp := make([]*Dense, len(n.layers))
	copy(cp, n.layers)

	return cp
}

// Inputs returns the feature count of the first layer.
func (n *Network) Inputs() int { return n.layers[0].Inputs() }

// Outputs returns the output count of the last layer.
func (n *Network) Outputs() int { return n.layers[len(n.layers)-1].Outputs() }

// Forward runs x (one sample per column) through every layer.
func (n *Network) Forward(x *matrix.Matrix) (*matrix.Matrix, error) {
	var err error
	for i, l := range n.layers {
		if x, err = l.Forward(x); err != nil {
			return nil, fmt.Errorf("%s: layer %d: %w", opNetForward, i, err)
		}
	}

	return x, nil
}

// Predict returns, for each sample column of x, the index of the largest output.
// Ties resolve to the lowest index.
//
// Errors:
//   - Any Forward error; matrix.ErrEmptyVector when the network has no outputs.
func (n *Network) Predict(x *matrix.Matrix) ([]int, error) {
	out, err := n.Forward(x)
	if err != nil {
		return nil, layerErrorf(opPredict, err)
	}
	if out.Rows() == 0 {
		return nil, layerErrorf(opPredict, matrix.ErrEmptyVector)
	}
	pred := make([]int, out.Cols())
	for s := range pred {
		col, err := out.Col(s)
		if err != nil {
			return nil, layerErrorf(opPredict, err)
		}
		pred[s] = floats.MaxIdx(col.Values())
	}

	return pred, nil
}

// Accuracy returns the fraction of positions where pred equals labels.
//
// Errors:
//   - matrix.ErrShapeMismatch when the lengths differ.
//   - matrix.ErrEmptyVector when both are empty.
func Accuracy(pred, labels []int) (float64, error) {
	if len(pred) != len(labels) {
		return 0, fmt.Errorf("%s: %d predictions, %d labels: %w", opAccuracy, len(pred), len(labels), matrix.ErrShapeMismatch)
	}
	if len(pred) == 0 {
		return 0, layerErrorf(opAccuracy, matrix.ErrEmptyVector)
	}
	hits := 0
	for i := range pred {
		if pred[i] == labels[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(pred)), nil
}
