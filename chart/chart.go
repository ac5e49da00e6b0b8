// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpg, tif
	_ "gonum.org/v1/plot/vg/vgpdf" // pdf
	_ "gonum.org/v1/plot/vg/vgsvg" // svg

	"github.com/katalvlaran/linalg/activation"
	"github.com/katalvlaran/linalg/matrix"
)

// ErrNoSeries indicates a chart request with nothing to draw.
var ErrNoSeries = errors.New("chart: no series")

// derivativeDashes is the on/off pattern of derivative curves.
var derivativeDashes = []vg.Length{vg.Points(6), vg.Points(3)}

// Operation tags.
const (
	opActivations = "Activations"
	opVectors     = "Vectors"
	opWriteTo     = "Chart.WriteTo"
	opSave        = "Chart.Save"
)

// yPad is the fraction of the y extent added above and below the data.
const yPad = 0.05

// Series is one named vector to draw.
type Series struct {
	Name   string
	Values matrix.Vector
}

// Chart is a ready-to-encode plot.
type Chart struct {
	p      *plot.Plot
	opts   options
	curves []*plotter.Function
}

// Activations plots every kind over the configured x range.
//
// Errors:
//   - ErrNoSeries when kinds is empty.
//   - activation.ErrUnknownKind for kinds without a scalar form (softmax).
func Activations(kinds []activation.Kind, opts ...Option) (*Chart, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%s: %w", opActivations, ErrNoSeries)
	}
	o := gatherOptions(opts...)

	var (
		args     []any
		curves   []*plotter.Function
		pairs    [][2]*plotter.Function
		ylo, yhi = math.Inf(1), math.Inf(-1)
		xs       = grid(o.low, o.high, o.samples)
		ys       = make([]float64, len(xs))
	)
	addCurve := func(name string, f func(float64) float64) *plotter.Function {
		for i, x := range xs {
			ys[i] = f(x)
		}
		ylo = math.Min(ylo, floats.Min(ys))
		yhi = math.Max(yhi, floats.Max(ys))

		fn := plotter.NewFunction(f)
		fn.XMin, fn.XMax = o.low, o.high
		fn.Samples = o.samples
		args = append(args, name, fn)
		curves = append(curves, fn)

		return fn
	}

	for _, k := range kinds {
		f, err := k.Func()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opActivations, err)
		}
		fn := addCurve(k.String(), f)
		if o.derivatives {
			df, err := k.Prime()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opActivations, err)
			}
			pairs = append(pairs, [2]*plotter.Function{fn, addCurve(k.String()+"'", df)})
		}
	}

	p := newPlot(o, "x", "f(x)")
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", opActivations, err)
	}
	// A derivative shares its curve's colour and is the only dashed line.
	for _, pair := range pairs {
		pair[0].Dashes = nil
		pair[1].Color = pair[0].Color
		pair[1].Dashes = derivativeDashes
	}
	p.X.Min, p.X.Max = o.low, o.high
	p.Y.Min, p.Y.Max = padded(ylo, yhi)

	return &Chart{p: p, opts: o, curves: curves}, nil
}

// Vectors plots each series as (index, value) points joined by lines.
//
// Errors:
//   - ErrNoSeries when series is empty or every vector is empty.
//   - A gonum/plot error for NaN or infinite values.
func Vectors(series []Series, opts ...Option) (*Chart, error) {
	o := gatherOptions(opts...)

	var args []any
	for _, s := range series {
		if s.Values.Len() == 0 {
			continue
		}
		vals := s.Values.Values()
		pts := make(plotter.XYs, len(vals))
		for i, v := range vals {
			pts[i] = plotter.XY{X: float64(i), Y: v}
		}
		args = append(args, s.Name, pts)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: %w", opVectors, ErrNoSeries)
	}

	p := newPlot(o, "index", "value")
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", opVectors, err)
	}

	return &Chart{p: p, opts: o}, nil
}

// WriteTo encodes the chart in format ("png", "svg", "pdf", ...) to w.
func (c *Chart) WriteTo(w io.Writer, format string) (int64, error) {
	wt, err := c.p.WriterTo(c.opts.width, c.opts.height, format)
	if err != nil {
		return 0, fmt.Errorf("%s(%q): %w", opWriteTo, format, err)
	}
	n, err := wt.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("%s: %w", opWriteTo, err)
	}

	return n, nil
}

// Save writes the chart to path; the extension selects the format.
func (c *Chart) Save(path string) error {
	if err := c.p.Save(c.opts.width, c.opts.height, path); err != nil {
		return fmt.Errorf("%s %s: %w", opSave, path, err)
	}

	return nil
}

// Plot exposes the underlying gonum plot for further styling.
func (c *Chart) Plot() *plot.Plot { return c.p }

func newPlot(o options, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	return p
}

// grid returns n evenly spaced points from low to high inclusive.
func grid(low, high float64, n int) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, low, high)

	return xs
}

// padded widens [lo, hi] by yPad on both sides; a flat range becomes lo±1.
func padded(lo, hi float64) (float64, float64) {
	if hi == lo {
		return lo - 1, hi + 1
	}
	d := (hi - lo) * yPad

	return lo - d, hi + d
}
