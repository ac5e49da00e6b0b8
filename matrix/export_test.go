// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (white-box) for the cofactor engine and options snapshot.
//
// Compiled only into the test binary (file name ends in _test.go), so the
// production API stays unchanged.

// EvaluateLaplace_TestOnly evaluates d by pure cofactor expansion, recursing
// all the way down to 1×1 minors instead of using the 2×2 closed form.
func EvaluateLaplace_TestOnly(d *Determinant) (Entry, error) {
	switch d.n {
	case 0:
		return ScalarEntry(0), nil
	case 1:
		return d.cells[0], nil
	}
	cols := make([]int, d.n)
	for i := range cols {
		cols[i] = i
	}

	return d.expand(0, cols, false)
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Parallel   int
	FormatVerb byte
	FormatPrec int
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Parallel: o.parallel, FormatVerb: o.formatVerb, FormatPrec: o.formatPrec}
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicParallelInvalid_TestOnly = panicParallelInvalid
	PanicFormatVerb_TestOnly      = panicFormatVerb
	PanicFormatPrec_TestOnly      = panicFormatPrec
)
