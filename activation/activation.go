// SPDX-License-Identifier: MIT

package activation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownKind is returned when a Kind has no scalar function.
var ErrUnknownKind = errors.New("activation: unknown kind")

// Identity returns x unchanged.
func Identity(x float64) float64 { return x }

// IdentityPrime is the derivative of Identity.
func IdentityPrime(float64) float64 { return 1 }

// ReLU returns max(x, 0).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}

	return 0
}

// ReLUPrime is 1 for x > 0 and 0 otherwise.
func ReLUPrime(x float64) float64 {
	if x > 0 {
		return 1
	}

	return 0
}

// Sigmoid returns 1 / (1 + e^-x).
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// SigmoidPrime returns σ(x)·(1 − σ(x)).
func SigmoidPrime(x float64) float64 {
	s := Sigmoid(x)

	return s * (1 - s)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// TanhPrime returns 1 − tanh²(x).
func TanhPrime(x float64) float64 {
	t := math.Tanh(x)

	return 1 - t*t
}

// Kind names an activation function.
type Kind uint8

const (
	// KindIdentity leaves pre-activations unchanged.
	KindIdentity Kind = iota
	// KindReLU applies ReLU.
	KindReLU
	// KindSigmoid applies Sigmoid.
	KindSigmoid
	// KindTanh applies Tanh.
	KindTanh
	// KindSoftmax normalizes each column; it has no scalar form.
	KindSoftmax
)

var kindNames = [...]string{
	KindIdentity: "identity",
	KindReLU:     "relu",
	KindSigmoid:  "sigmoid",
	KindTanh:     "tanh",
	KindSoftmax:  "softmax",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind maps a name produced by Kind.String back to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// Func returns the scalar function for k.
//
// Errors:
//   - ErrUnknownKind for KindSoftmax and out-of-range values.
func (k Kind) Func() (func(float64) float64, error) {
	switch k {
	case KindIdentity:
		return Identity, nil
	case KindReLU:
		return ReLU, nil
	case KindSigmoid:
		return Sigmoid, nil
	case KindTanh:
		return Tanh, nil
	default:
		return nil, fmt.Errorf("%v.Func: %w", k, ErrUnknownKind)
	}
}

// Prime returns the derivative of the scalar function for k.
//
// Errors:
//   - ErrUnknownKind for KindSoftmax and out-of-range values.
func (k Kind) Prime() (func(float64) float64, error) {
	switch k {
	case KindIdentity:
		return IdentityPrime, nil
	case KindReLU:
		return ReLUPrime, nil
	case KindSigmoid:
		return SigmoidPrime, nil
	case KindTanh:
		return TanhPrime, nil
	default:
		return nil, fmt.Errorf("%v.Prime: %w", k, ErrUnknownKind)
	}
}
