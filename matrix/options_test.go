// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/matrix"
)

// TestDefaultOptions_Documented verifies that an empty option list resolves to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	if o.Parallel != matrix.DefaultParallelMinors {
		t.Fatalf("parallel default mismatch: got %d, want %d", o.Parallel, matrix.DefaultParallelMinors)
	}
	if o.FormatVerb != matrix.DefaultFormatVerb {
		t.Fatalf("verb default mismatch: got %q, want %q", o.FormatVerb, matrix.DefaultFormatVerb)
	}
	if o.FormatPrec != matrix.DefaultFormatPrec {
		t.Fatalf("prec default mismatch: got %d, want %d", o.FormatPrec, matrix.DefaultFormatPrec)
	}
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its own field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithParallelMinors(4),
		nil,
		matrix.WithFormat('f', 2),
		matrix.WithParallelMinors(0),
	)
	if o.Parallel != 0 || o.FormatVerb != 'f' || o.FormatPrec != 2 {
		t.Fatalf("unexpected snapshot: %+v", o)
	}
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.PanicsWithValue(t, matrix.PanicParallelInvalid_TestOnly, func() { matrix.WithParallelMinors(-1) })
	assert.PanicsWithValue(t, matrix.PanicFormatVerb_TestOnly, func() { matrix.WithFormat('x', 2) })
	assert.PanicsWithValue(t, matrix.PanicFormatPrec_TestOnly, func() { matrix.WithFormat('g', -2) })
}
