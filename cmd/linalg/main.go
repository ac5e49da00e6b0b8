// SPDX-License-Identifier: MIT

// linalg - determinant, cross product and toy network driver
//
// Usage:
//
//	linalg cross -u 1,2,3 -v 4,5,6                 Print u × v
//	linalg det [-parallel N] [-verb g -prec -1] "1,2;3,4"
//	                                               Print the grid and its determinant
//	linalg forward -data train.csv [-hidden 8] [-act relu] [-seed 1] [-normalize]
//	                                               Run a random network over a CSV dataset
//	linalg plot -out act.png [-kinds sigmoid,tanh] [-derivatives] [-lo -5 -hi 5]
//	                                               Render activation curves
//
// Results go to stdout; diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/activation"
	"github.com/katalvlaran/linalg/chart"
	"github.com/katalvlaran/linalg/dataset"
	"github.com/katalvlaran/linalg/layer"
	"github.com/katalvlaran/linalg/matrix"
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("linalg: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run dispatches one subcommand; it never exits the process.
func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "cross":
		return cmdCross(rest, stdout)
	case "det":
		return cmdDet(rest, stdout)
	case "forward":
		return cmdForward(rest, stdout)
	case "plot":
		return cmdPlot(rest, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `linalg - determinant, cross product and toy network driver

Usage:
  linalg cross -u 1,2,3 -v 4,5,6
  linalg det [-parallel N] [-verb g] [-prec -1] "1,2;3,4"
  linalg forward -data train.csv [-hidden 8] [-act relu] [-seed 1] [-normalize]
  linalg plot -out act.png [-kinds sigmoid,tanh] [-derivatives] [-lo -5] [-hi 5]
`)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func cmdCross(args []string, stdout io.Writer) error {
	fs := newFlagSet("cross")
	u := fs.String("u", "", "first vector, comma separated")
	v := fs.String("v", "", "second vector, comma separated")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("cross: %w: %w", errUsage, err)
	}

	a, err := parseVector(*u)
	if err != nil {
		return fmt.Errorf("cross: -u: %w", err)
	}
	b, err := parseVector(*v)
	if err != nil {
		return fmt.Errorf("cross: -v: %w", err)
	}
	w, err := a.CrossProduct(b)
	if err != nil {
		return fmt.Errorf("cross: %w", err)
	}
	fmt.Fprintln(stdout, w)

	return nil
}

func cmdDet(args []string, stdout io.Writer) error {
	fs := newFlagSet("det")
	parallel := fs.Int("parallel", matrix.DefaultParallelMinors, "goroutines for top-level minors (0 = sequential)")
	verb := fs.String("verb", string(matrix.DefaultFormatVerb), "number format verb: e, E, f, g or G")
	prec := fs.Int("prec", matrix.DefaultFormatPrec, "number format precision (-1 = shortest)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("det: %w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("det: want one grid argument: %w", errUsage)
	}
	if len(*verb) != 1 || !strings.Contains("eEfgG", *verb) || *prec < -1 || *parallel < 0 {
		return fmt.Errorf("det: bad -verb, -prec or -parallel: %w", errUsage)
	}

	rows, err := parseGrid(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("det: %w", err)
	}
	d, err := matrix.DeterminantFromScalars(rows,
		matrix.WithParallelMinors(*parallel),
		matrix.WithFormat((*verb)[0], *prec),
	)
	if err != nil {
		return fmt.Errorf("det: %w", err)
	}
	res, err := d.Evaluate()
	if err != nil {
		return fmt.Errorf("det: %w", err)
	}
	x, err := res.Scalar()
	if err != nil {
		return fmt.Errorf("det: %w", err)
	}
	fmt.Fprintln(stdout, d)
	fmt.Fprintf(stdout, "= %s\n", strconv.FormatFloat(x, (*verb)[0], *prec, 64))

	return nil
}

func cmdForward(args []string, stdout io.Writer) error {
	fs := newFlagSet("forward")
	path := fs.String("data", "", "CSV file: label column then features, with header")
	hidden := fs.Int("hidden", 8, "hidden layer width")
	act := fs.String("act", activation.KindReLU.String(), "hidden activation: identity, relu, sigmoid or tanh")
	seed := fs.Uint64("seed", 1, "weight initialization seed")
	normalize := fs.Bool("normalize", false, "rescale features onto [0, 1] first")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("forward: %w: %w", errUsage, err)
	}
	if *path == "" {
		return fmt.Errorf("forward: -data is required: %w", errUsage)
	}
	kind, err := activation.ParseKind(*act)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}

	ds, err := dataset.Load(*path)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	if *normalize {
		if ds, err = ds.Normalize(0, 1); err != nil {
			return fmt.Errorf("forward: %w", err)
		}
	}

	classes := max(ds.Classes(), 1)
	l1, err := layer.RandomDense(ds.Features().Cols(), *hidden, kind, *seed)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	l2, err := layer.RandomDense(*hidden, classes, activation.KindSoftmax, *seed+1)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	net, err := layer.NewNetwork(l1, l2)
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}

	pred, err := net.Predict(ds.Batch())
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	acc, err := layer.Accuracy(pred, ds.Labels())
	if err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	fmt.Fprintf(stdout, "network: %v → %v\n", l1, l2)
	fmt.Fprintf(stdout, "samples=%d classes=%d accuracy=%.4f\n", ds.Len(), classes, acc)

	return nil
}

func cmdPlot(args []string, stdout io.Writer) error {
	fs := newFlagSet("plot")
	out := fs.String("out", "", "output file; the extension selects png, svg or pdf")
	kinds := fs.String("kinds", "sigmoid,tanh,relu", "comma separated activations")
	deriv := fs.Bool("derivatives", false, "also draw derivatives")
	lo := fs.Float64("lo", chart.DefaultLow, "x range start")
	hi := fs.Float64("hi", chart.DefaultHigh, "x range end")
	title := fs.String("title", "", "chart title")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("plot: %w: %w", errUsage, err)
	}
	if *out == "" || !(*lo < *hi) {
		return fmt.Errorf("plot: need -out and -lo < -hi: %w", errUsage)
	}

	var ks []activation.Kind
	for _, name := range strings.Split(*kinds, ",") {
		k, err := activation.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		ks = append(ks, k)
	}
	opts := []chart.Option{chart.WithRange(*lo, *hi), chart.WithTitle(*title)}
	if *deriv {
		opts = append(opts, chart.WithDerivatives())
	}
	c, err := chart.Activations(ks, opts...)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err = c.Save(*out); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	fmt.Fprintln(stdout, "wrote", *out)

	return nil
}

// parseVector parses "1, 2, 3" into a Vector.
func parseVector(s string) (matrix.Vector, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return matrix.Vector{}, err
	}

	return matrix.FromValues(vals), nil
}

// parseGrid parses "1,2;3,4" into row slices.
func parseGrid(s string) ([][]float64, error) {
	var rows [][]float64
	for i, r := range strings.Split(s, ";") {
		vals, err := parseFloats(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, vals)
	}

	return rows, nil
}

func parseFloats(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
