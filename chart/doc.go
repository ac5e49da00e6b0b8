// Package chart renders activation curves and vectors with gonum/plot.
//
// Activations samples each scalar activation over a closed x range and draws
// one line per function (optionally with its derivative). Vectors draws each
// series as a polyline of (index, value) points. Both return a *Chart that can
// be encoded to any format gonum/plot supports (png, svg, pdf, ...).
//
//	c, _ := chart.Activations([]activation.Kind{activation.KindSigmoid, activation.KindTanh},
//		chart.WithRange(-4, 4), chart.WithDerivatives())
//	_ = c.Save("activations.png")
package chart
