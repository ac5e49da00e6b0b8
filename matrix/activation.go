// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/activation"
)

const opActivate = "Activate"

// Sigmoid applies activation.Sigmoid to every element.
func (m *Matrix) Sigmoid() *Matrix { return m.Map(activation.Sigmoid) }

// SigmoidPrime applies the sigmoid derivative to every element.
func (m *Matrix) SigmoidPrime() *Matrix { return m.Map(activation.SigmoidPrime) }

// Relu applies activation.ReLU to every element.
func (m *Matrix) Relu() *Matrix { return m.Map(activation.ReLU) }

// ReluPrime applies the ReLU derivative to every element.
func (m *Matrix) ReluPrime() *Matrix { return m.Map(activation.ReLUPrime) }

// Tanh applies the hyperbolic tangent to every element.
func (m *Matrix) Tanh() *Matrix { return m.Map(activation.Tanh) }

// TanhPrime applies the tanh derivative to every element.
func (m *Matrix) TanhPrime() *Matrix { return m.Map(activation.TanhPrime) }

// Softmax exponentiates every element and divides it by the exponentiated sum
// of its column. Columns are the probability axis: each column of the result
// sums to 1. Each column is shifted by its maximum before exponentiating, so
// large logits do not overflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Softmax() *Matrix {
	if len(m.rows) == 0 {
		return &Matrix{cols: m.cols}
	}
	peaks := make([]float64, m.cols)
	for x := range peaks {
		peaks[x] = floats.Max(m.col(x).data)
	}
	rows := make([]Vector, len(m.rows))
	for y, r := range m.rows {
		buf := make([]float64, m.cols)
		for x, v := range r.data {
			buf[x] = math.Exp(v - peaks[x])
		}
		rows[y] = Vector{data: buf}
	}
	out := &Matrix{rows: rows, cols: m.cols}
	_, colSums := out.Sum()
	for _, r := range rows {
		floats.Div(r.data, colSums)
	}

	return out
}

// Activate applies the activation named by k.
//
// Errors:
//   - activation.ErrUnknownKind for an unknown kind.
func (m *Matrix) Activate(k activation.Kind) (*Matrix, error) {
	if k == activation.KindSoftmax {
		return m.Softmax(), nil
	}
	f, err := k.Func()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opActivate, err)
	}

	return m.Map(f), nil
}
