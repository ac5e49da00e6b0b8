// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for determinant evaluation and
// rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state; parallel evaluation folds results
//     in the same order as the sequential path.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelMinors is the number of goroutines used for the top-level
	// minors of a cofactor expansion. 0 means fully sequential evaluation.
	DefaultParallelMinors = 0

	// DefaultFormatVerb is the strconv format verb used when rendering numbers.
	// 'g' with precision -1 prints the shortest exact representation.
	DefaultFormatVerb byte = 'g'

	// DefaultFormatPrec is the strconv precision used when rendering numbers.
	DefaultFormatPrec = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicParallelInvalid = "matrix: WithParallelMinors: limit must be >= 0"
	panicFormatVerb      = "matrix: WithFormat: verb must be one of 'e','E','f','g','G'"
	panicFormatPrec      = "matrix: WithFormat: precision must be >= -1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	parallel   int  // goroutine budget for top-level minors; 0 = sequential
	formatVerb byte // strconv verb for String()
	formatPrec int  // strconv precision for String()
}

// WithParallelMinors evaluates the top-level minors of a cofactor expansion
// concurrently, with at most limit goroutines in flight.
//
// Behavior highlights:
//   - limit == 0 restores sequential evaluation.
//   - Partial results are folded in column order, so the outcome is identical
//     to the sequential path.
//
// Errors:
//   - Panics when limit < 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithParallelMinors(limit int) Option {
	if limit < 0 {
		panic(panicParallelInvalid)
	}

	return func(o *Options) { o.parallel = limit }
}

// WithFormat sets the strconv verb and precision used by Determinant.String.
//
// Errors:
//   - Panics on an unknown verb or precision < -1.
func WithFormat(verb byte, prec int) Option {
	switch verb {
	case 'e', 'E', 'f', 'g', 'G':
	default:
		panic(panicFormatVerb)
	}
	if prec < -1 {
		panic(panicFormatPrec)
	}

	return func(o *Options) {
		o.formatVerb = verb
		o.formatPrec = prec
	}
}

// gatherOptions applies user options over the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		parallel:   DefaultParallelMinors,
		formatVerb: DefaultFormatVerb,
		formatPrec: DefaultFormatPrec,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
