// SPDX-License-Identifier: MIT

// Package matrix - Entry: a determinant cell that is either a scalar or a Vector.
//
// Arithmetic is defined only for the tag combinations the cofactor expansion needs:
//
//	op   | Scalar,Scalar | Vector,Vector        | Scalar,Vector / Vector,Scalar
//	-----+---------------+----------------------+------------------------------
//	Add  | Scalar        | Vector (equal len)   | ErrEntryTypeMismatch
//	Sub  | Scalar        | Vector (equal len)   | ErrEntryTypeMismatch
//	Mul  | Scalar        | Scalar (dot product) | Vector (scaled)
//	Div  | Scalar        | ErrEntryTypeMismatch | ErrEntryTypeMismatch
//
// Every operator switches exhaustively over the pair of kinds.

package matrix

import (
	"fmt"
	"strconv"
)

// Operation tags used when wrapping Entry errors.
const (
	opEntryAdd    = "Entry.Add"
	opEntrySub    = "Entry.Sub"
	opEntryMul    = "Entry.Mul"
	opEntryDiv    = "Entry.Div"
	opEntryScalar = "Entry.Scalar"
	opEntryVector = "Entry.Vector"
)

// EntryKind tags the active member of an Entry.
type EntryKind uint8

const (
	// KindScalar marks an Entry holding a float64.
	KindScalar EntryKind = iota
	// KindVector marks an Entry holding a Vector.
	KindVector
)

// String returns "scalar" or "vector".
func (k EntryKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	default:
		return "EntryKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Entry is a closed sum type over {Scalar(float64), Vector}.
// The zero value is Scalar(0).
type Entry struct {
	kind   EntryKind
	scalar float64
	vec    Vector
}

// ScalarEntry wraps a float64.
func ScalarEntry(x float64) Entry { return Entry{kind: KindScalar, scalar: x} }

// VectorEntry wraps a Vector.
func VectorEntry(v Vector) Entry { return Entry{kind: KindVector, vec: v} }

// Kind reports which member is active.
func (e Entry) Kind() EntryKind { return e.kind }

// IsScalar reports whether the entry holds a float64.
func (e Entry) IsScalar() bool { return e.kind == KindScalar }

// IsVector reports whether the entry holds a Vector.
func (e Entry) IsVector() bool { return e.kind == KindVector }

// Scalar unwraps the float64 member.
//
// Errors:
//   - ErrEntryTypeMismatch when the entry holds a Vector.
func (e Entry) Scalar() (float64, error) {
	if e.kind != KindScalar {
		return 0, fmt.Errorf("%s: have %v: %w", opEntryScalar, e.kind, ErrEntryTypeMismatch)
	}

	return e.scalar, nil
}

// Vector unwraps the Vector member.
//
// Errors:
//   - ErrEntryTypeMismatch when the entry holds a scalar.
func (e Entry) Vector() (Vector, error) {
	if e.kind != KindVector {
		return Vector{}, fmt.Errorf("%s: have %v: %w", opEntryVector, e.kind, ErrEntryTypeMismatch)
	}

	return e.vec, nil
}

// Equal reports identical kind and identical value.
func (e Entry) Equal(other Entry) bool {
	if e.kind != other.kind {
		return false
	}
	if e.kind == KindScalar {
		return e.scalar == other.scalar
	}

	return e.vec.Equal(other.vec)
}

// kinds packs the pair of operand tags for exhaustive switching.
type kinds struct{ a, b EntryKind }

var (
	ss = kinds{KindScalar, KindScalar}
	vv = kinds{KindVector, KindVector}
	sv = kinds{KindScalar, KindVector}
	vs = kinds{KindVector, KindScalar}
)

// mismatch reports an unsupported tag combination for op.
func mismatch(op string, a, b Entry) error {
	return fmt.Errorf("%s(%v, %v): %w", op, a.kind, b.kind, ErrEntryTypeMismatch)
}

// Add returns e + other.
//
// Errors:
//   - ErrEntryTypeMismatch for mixed kinds.
//   - ErrShapeMismatch for vectors of different lengths.
func (e Entry) Add(other Entry) (Entry, error) {
	switch (kinds{e.kind, other.kind}) {
	case ss:
		return ScalarEntry(e.scalar + other.scalar), nil
	case vv:
		v, err := e.vec.Add(other.vec)
		if err != nil {
			return Entry{}, matrixErrorf(opEntryAdd, err)
		}
		return VectorEntry(v), nil
	default:
		return Entry{}, mismatch(opEntryAdd, e, other)
	}
}

// Sub returns e - other.
//
// Errors:
//   - ErrEntryTypeMismatch for mixed kinds.
//   - ErrShapeMismatch for vectors of different lengths.
func (e Entry) Sub(other Entry) (Entry, error) {
	switch (kinds{e.kind, other.kind}) {
	case ss:
		return ScalarEntry(e.scalar - other.scalar), nil
	case vv:
		v, err := e.vec.Sub(other.vec)
		if err != nil {
			return Entry{}, matrixErrorf(opEntrySub, err)
		}
		return VectorEntry(v), nil
	default:
		return Entry{}, mismatch(opEntrySub, e, other)
	}
}

// Mul returns e * other: scalar product, dot product of two vectors, or a
// vector scaled by a scalar (either side).
//
// Errors:
//   - ErrShapeMismatch for a dot product of vectors of different lengths.
func (e Entry) Mul(other Entry) (Entry, error) {
	switch (kinds{e.kind, other.kind}) {
	case ss:
		return ScalarEntry(e.scalar * other.scalar), nil
	case vv:
		d, err := e.vec.Dot(other.vec)
		if err != nil {
			return Entry{}, matrixErrorf(opEntryMul, err)
		}
		return ScalarEntry(d), nil
	case sv:
		return VectorEntry(other.vec.Scale(e.scalar)), nil
	case vs:
		return VectorEntry(e.vec.Scale(other.scalar)), nil
	default:
		return Entry{}, mismatch(opEntryMul, e, other)
	}
}

// Div returns e / other for two scalars. Division by zero follows IEEE-754.
//
// Errors:
//   - ErrEntryTypeMismatch when either operand is a vector.
func (e Entry) Div(other Entry) (Entry, error) {
	switch (kinds{e.kind, other.kind}) {
	case ss:
		return ScalarEntry(e.scalar / other.scalar), nil
	default:
		return Entry{}, mismatch(opEntryDiv, e, other)
	}
}

// String renders a scalar with %g semantics and a vector as "(a, b, c)".
func (e Entry) String() string { return e.format(DefaultFormatVerb, DefaultFormatPrec) }

func (e Entry) format(verb byte, prec int) string {
	if e.kind == KindVector {
		return e.vec.format(verb, prec)
	}

	return strconv.FormatFloat(e.scalar, verb, prec, 64)
}
