// SPDX-License-Identifier: MIT

package layer

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linalg/activation"
	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags for Dense.
const (
	opNewDense    = "NewDense"
	opRandomDense = "RandomDense"
	opForward     = "Dense.Forward"
)

// Dense is an immutable fully connected layer.
type Dense struct {
	weights *matrix.Matrix // Rows = outputs, Cols = inputs
	bias    matrix.Vector  // len = outputs
	act     activation.Kind
}

// NewDense builds a layer from explicit weights and bias.
//
// Errors:
//   - matrix.ErrNilMatrix when weights is nil.
//   - matrix.ErrShapeMismatch when bias.Len() != weights.Rows().
//   - activation.ErrUnknownKind for an unknown activation.
func NewDense(weights *matrix.Matrix, bias matrix.Vector, act activation.Kind) (*Dense, error) {
	if err := matrix.ValidateNotNil(weights); err != nil {
		return nil, layerErrorf(opNewDense, err)
	}
	if bias.Len() != weights.Rows() {
		return nil, fmt.Errorf("%s: bias len %d, want %d: %w", opNewDense, bias.Len(), weights.Rows(), matrix.ErrShapeMismatch)
	}
	if act != activation.KindSoftmax {
		if _, err := act.Func(); err != nil {
			return nil, layerErrorf(opNewDense, err)
		}
	}

	return &Dense{weights: weights, bias: bias, act: act}, nil
}

// RandomDense builds an inputs → outputs layer with weights drawn from
// U(-1/√inputs, 1/√inputs) and a zero bias. The same seed yields the same layer.
//
// Errors:
//   - matrix.ErrBadShape when inputs or outputs is not positive.
func RandomDense(inputs, outputs int, act activation.Kind, seed uint64) (*Dense, error) {
	if inputs <= 0 || outputs <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opRandomDense, inputs, outputs, matrix.ErrBadShape)
	}
	limit := 1 / math.Sqrt(float64(inputs))
	dist := distuv.Uniform{Min: -limit, Max: limit, Src: rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)}

	rows := make([][]float64, outputs)
	for y := range rows {
		rows[y] = make([]float64, inputs)
		for x := range rows[y] {
			rows[y][x] = dist.Rand()
		}
	}
	w, err := matrix.FromSlices(rows)
	if err != nil {
		return nil, layerErrorf(opRandomDense, err)
	}

	return NewDense(w, matrix.NewVector(outputs), act)
}

// Inputs returns the number of features the layer consumes.
func (d *Dense) Inputs() int { return d.weights.Cols() }

// Outputs returns the number of values the layer produces per sample.
func (d *Dense) Outputs() int { return d.weights.Rows() }

// Activation returns the activation kind.
func (d *Dense) Activation() activation.Kind { return d.act }

// Weights returns the weight matrix.
func (d *Dense) Weights() *matrix.Matrix { return d.weights }

// Bias returns the bias vector.
func (d *Dense) Bias() matrix.Vector { return d.bias }

// Forward computes act(W·x + b) for a batch x of shape (samples, Inputs):
// one sample per column. The bias is broadcast across every column.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrShapeMismatch.
//
// Complexity:
//   - Time O(outputs*inputs*samples).
func (d *Dense) Forward(x *matrix.Matrix) (*matrix.Matrix, error) {
	z, err := d.weights.Multiply(x)
	if err != nil {
		return nil, layerErrorf(opForward, err)
	}
	// b ⊗ 1ᵀ replicates the bias column once per sample.
	ones := matrix.NewVector(z.Cols()).Map(func(float64) float64 { return 1 })
	if z, err = z.Add(d.bias.OuterProduct(ones)); err != nil {
		return nil, layerErrorf(opForward, err)
	}
	out, err := z.Activate(d.act)
	if err != nil {
		return nil, layerErrorf(opForward, err)
	}

	return out, nil
}

// String summarizes the layer as "Dense(in → out, act)".
func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d → %d, %v)", d.Inputs(), d.Outputs(), d.act)
}
