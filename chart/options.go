// SPDX-License-Identifier: MIT

package chart

import "gonum.org/v1/plot/vg"

// Defaults.
const (
	DefaultWidth   = 6 * vg.Inch
	DefaultHeight  = 4 * vg.Inch
	DefaultLow     = -5.0
	DefaultHigh    = 5.0
	DefaultSamples = 200
)

const (
	panicSizeInvalid    = "chart: WithSize: width and height must be > 0"
	panicRangeInvalid   = "chart: WithRange: low must be < high"
	panicSamplesInvalid = "chart: WithSamples: need at least 2 samples"
)

// Option configures a Chart.
type Option func(*options)

type options struct {
	width, height vg.Length
	low, high     float64
	samples       int
	title         string
	derivatives   bool
}

// WithSize sets the rendered canvas size. Panics unless both are positive.
func WithSize(w, h vg.Length) Option {
	if !(w > 0 && h > 0) {
		panic(panicSizeInvalid)
	}

	return func(o *options) { o.width, o.height = w, h }
}

// WithRange sets the x interval sampled by Activations. Panics unless low < high.
func WithRange(low, high float64) Option {
	if !(low < high) {
		panic(panicRangeInvalid)
	}

	return func(o *options) { o.low, o.high = low, high }
}

// WithSamples sets how many points each curve is sampled at. Panics when n < 2.
func WithSamples(n int) Option {
	if n < 2 {
		panic(panicSamplesInvalid)
	}

	return func(o *options) { o.samples = n }
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithDerivatives adds a dashed derivative curve, drawn in the colour of its
// activation, next to every activation.
func WithDerivatives() Option {
	return func(o *options) { o.derivatives = true }
}

func gatherOptions(user ...Option) options {
	o := options{
		width:   DefaultWidth,
		height:  DefaultHeight,
		low:     DefaultLow,
		high:    DefaultHigh,
		samples: DefaultSamples,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
