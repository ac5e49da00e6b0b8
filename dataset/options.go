// SPDX-License-Identifier: MIT

package dataset

import "unicode/utf8"

// Defaults.
const (
	DefaultComma       = ','
	DefaultHeader      = true
	DefaultLabelColumn = 0
)

const (
	panicCommaInvalid  = "dataset: WithComma: separator must be a valid rune other than '\"', '\\r' or '\\n'"
	panicLabelNegative = "dataset: WithLabelColumn: column must be >= 0"
)

// Option configures Read and Load.
type Option func(*options)

type options struct {
	comma       rune
	header      bool
	labelColumn int
}

// WithComma sets the field separator. Panics on a rune encoding/csv rejects.
func WithComma(r rune) Option {
	if r == '"' || r == '\r' || r == '\n' || !utf8.ValidRune(r) || r == utf8.RuneError {
		panic(panicCommaInvalid)
	}

	return func(o *options) { o.comma = r }
}

// WithHeader declares whether the first record is a header.
func WithHeader(has bool) Option {
	return func(o *options) { o.header = has }
}

// WithLabelColumn selects the zero-based column holding the integer label.
// Panics when col < 0.
func WithLabelColumn(col int) Option {
	if col < 0 {
		panic(panicLabelNegative)
	}

	return func(o *options) { o.labelColumn = col }
}

func gatherOptions(user ...Option) options {
	o := options{comma: DefaultComma, header: DefaultHeader, labelColumn: DefaultLabelColumn}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
