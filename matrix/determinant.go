// SPDX-License-Identifier: MIT

// Package matrix - Determinant: square grid of Entry values + cofactor evaluator.
//
// Purpose:
//   - Evaluate determinants by recursive Laplace (cofactor) expansion along the first row.
//   - Run every intermediate sum and product through Entry arithmetic so a grid whose
//     first row holds Vectors evaluates to a Vector (the cross product construction).
//
// Implementation:
//   - The N×N grid is stored once as a flat row-major buffer. A minor is addressed by its
//     first row index and the ordered list of surviving columns; no entries are copied.
//   - Terms for even columns go to an "add" bucket, odd columns to a "sub" bucket; each
//     bucket folds left-to-right from its first element; result = sum(add) - sum(sub).
//
// Complexity:
//   - Time O(N!) by construction (no memoization, no elimination fallback). The engine
//     targets small N; use it for N up to about 10.
//   - Space O(N²) for the grid plus O(N²) column lists along the recursion path.

package matrix

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Operation tags used when wrapping Determinant errors.
const (
	opNewDeterminant = "NewDeterminant"
	opDetFromScalars = "DeterminantFromScalars"
	opDetFromMatrix  = "DeterminantFromMatrix"
	opDetAt          = "Determinant.At"
	opDetReplace     = "Determinant.Replace"
	opDetEvaluate    = "Determinant.Evaluate"
	opMatDeterminant = "Matrix.Determinant"
)

// ---------- Formatting literals ----------
const (
	_fmtDetOpen   = "| "
	_fmtDetClose  = " |"
	_fmtDetSep    = " "
	_fmtDetRowSep = "\n"
	_fmtDetEmpty  = "| |"
)

// Determinant is an immutable N×N grid of Entry values.
type Determinant struct {
	n     int     // order of the grid
	cells []Entry // row-major, len == n*n
	opts  Options // evaluation and rendering policy
}

var _ fmt.Stringer = (*Determinant)(nil)

// NewDeterminant builds a determinant from an explicit grid of entries.
// The grid is copied.
//
// Errors:
//   - ErrNonSquareDeterminant when the grid is ragged or not N×N.
func NewDeterminant(grid [][]Entry, opts ...Option) (*Determinant, error) {
	if err := validateGrid(grid); err != nil {
		return nil, matrixErrorf(opNewDeterminant, err)
	}
	n := len(grid)
	cells := make([]Entry, 0, n*n)
	for _, row := range grid {
		cells = append(cells, row...)
	}

	return &Determinant{n: n, cells: cells, opts: gatherOptions(opts...)}, nil
}

// DeterminantFromScalars builds a determinant whose entries are all scalars.
//
// Errors:
//   - ErrNonSquareDeterminant when values is ragged or not N×N.
func DeterminantFromScalars(values [][]float64, opts ...Option) (*Determinant, error) {
	grid := make([][]Entry, len(values))
	for y, row := range values {
		grid[y] = make([]Entry, len(row))
		for x, v := range row {
			grid[y][x] = ScalarEntry(v)
		}
	}
	d, err := NewDeterminant(grid, opts...)
	if err != nil {
		return nil, matrixErrorf(opDetFromScalars, err)
	}

	return d, nil
}

// DeterminantFromMatrix builds a scalar determinant from a square matrix.
//
// Errors:
//   - ErrNilMatrix for a nil matrix.
//   - ErrNonSquareDeterminant when the matrix is not square.
func DeterminantFromMatrix(m *Matrix, opts ...Option) (*Determinant, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDetFromMatrix, err)
	}
	if !m.Shape().Square() {
		return nil, fmt.Errorf("%s: %v: %w", opDetFromMatrix, m.Shape(), ErrNonSquareDeterminant)
	}
	d, err := DeterminantFromScalars(m.Values(), opts...)
	if err != nil {
		return nil, matrixErrorf(opDetFromMatrix, err)
	}

	return d, nil
}

// Size returns the order N of the grid.
func (d *Determinant) Size() int { return d.n }

// At returns the entry at (row, col).
//
// Errors:
//   - ErrIndexOutOfRange when the coordinates lie outside the grid.
func (d *Determinant) At(row, col int) (Entry, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return Entry{}, fmt.Errorf("%s(%d,%d): %w", opDetAt, row, col, ErrIndexOutOfRange)
	}

	return d.at(row, col), nil
}

// at is the unchecked accessor used by the evaluator.
func (d *Determinant) at(row, col int) Entry { return d.cells[row*d.n+col] }

// Replace returns a copy of d with the entry at (row, col) set to e.
//
// Errors:
//   - ErrIndexOutOfRange when the coordinates lie outside the grid.
func (d *Determinant) Replace(row, col int, e Entry) (*Determinant, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return nil, fmt.Errorf("%s(%d,%d): %w", opDetReplace, row, col, ErrIndexOutOfRange)
	}
	cells := make([]Entry, len(d.cells))
	copy(cells, d.cells)
	cells[row*d.n+col] = e

	return &Determinant{n: d.n, cells: cells, opts: d.opts}, nil
}

// Evaluate computes the determinant by cofactor expansion along the first row.
//
// Behavior highlights:
//   - N=0 → Scalar(0); N=1 → the lone entry unchanged; N=2 → a·d − b·c.
//   - N>2 recurses into the N minors of row 0 (concurrently under WithParallelMinors).
//
// Errors:
//   - ErrEntryTypeMismatch when the grid mixes kinds in a way Entry arithmetic rejects.
//   - ErrShapeMismatch when vector entries have different lengths.
func (d *Determinant) Evaluate() (Entry, error) {
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

	var (
		res Entry
		err error
	)
	if d.opts.parallel > 0 && d.n > 2 {
		res, err = d.expandParallel(cols)
	} else {
		res, err = d.expand(0, cols, true)
	}
	if err != nil {
		return Entry{}, matrixErrorf(opDetEvaluate, err)
	}

	return res, nil
}

// expand evaluates the minor formed by rows [row, n) and the given columns.
// closed enables the a·d − b·c shortcut for 2×2 minors; without it the
// recursion bottoms out at 1×1.
func (d *Determinant) expand(row int, cols []int, closed bool) (Entry, error) {
	switch {
	case len(cols) == 1:
		return d.at(row, cols[0]), nil
	case len(cols) == 2 && closed:
		return d.closedForm(row, cols[0], cols[1])
	}

	terms := make([]Entry, len(cols))
	for i := range cols {
		t, err := d.cofactorTerm(row, cols, i, closed)
		if err != nil {
			return Entry{}, err
		}
		terms[i] = t
	}

	return foldSigned(terms)
}

// expandParallel evaluates the top-level terms concurrently and folds them in
// column order, matching the sequential result exactly.
func (d *Determinant) expandParallel(cols []int) (Entry, error) {
	terms := make([]Entry, len(cols))

	var g errgroup.Group
	g.SetLimit(d.opts.parallel)
	for i := range cols {
		g.Go(func() error {
			t, err := d.cofactorTerm(0, cols, i, true)
			if err != nil {
				return err
			}
			terms[i] = t // distinct index per goroutine

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Entry{}, err
	}

	return foldSigned(terms)
}

// cofactorTerm returns entry(row, cols[i]) · det(minor without row and cols[i]).
func (d *Determinant) cofactorTerm(row int, cols []int, i int, closed bool) (Entry, error) {
	minor, err := d.expand(row+1, without(cols, i), closed)
	if err != nil {
		return Entry{}, err
	}
	t, err := d.at(row, cols[i]).Mul(minor)
	if err != nil {
		return Entry{}, fmt.Errorf("cofactor(%d,%d): %w", row, cols[i], err)
	}

	return t, nil
}

// closedForm returns a·d − b·c for the 2×2 minor at rows row, row+1.
func (d *Determinant) closedForm(row, c0, c1 int) (Entry, error) {
	ad, err := d.at(row, c0).Mul(d.at(row+1, c1))
	if err != nil {
		return Entry{}, err
	}
	bc, err := d.at(row, c1).Mul(d.at(row+1, c0))
	if err != nil {
		return Entry{}, err
	}

	return ad.Sub(bc)
}

// foldSigned returns sum(terms at even positions) − sum(terms at odd positions).
// Requires len(terms) >= 2.
func foldSigned(terms []Entry) (Entry, error) {
	add, err := foldEvery(terms, 0)
	if err != nil {
		return Entry{}, err
	}
	sub, err := foldEvery(terms, 1)
	if err != nil {
		return Entry{}, err
	}

	return add.Sub(sub)
}

// foldEvery sums terms[start], terms[start+2], ... left to right.
func foldEvery(terms []Entry, start int) (Entry, error) {
	acc := terms[start]
	var err error
	for k := start + 2; k < len(terms); k += 2 {
		if acc, err = acc.Add(terms[k]); err != nil {
			return Entry{}, err
		}
	}

	return acc, nil
}

// without returns a copy of cols with position i removed.
func without(cols []int, i int) []int {
	out := make([]int, 0, len(cols)-1)
	out = append(out, cols[:i]...)

	return append(out, cols[i+1:]...)
}

// String renders the grid as a bracketed table, each column right-aligned to
// its widest entry:
//
//	| 1 -20 |
//	| 3   4 |
//
// The empty determinant renders as "| |".
func (d *Determinant) String() string {
	if d.n == 0 {
		return _fmtDetEmpty
	}

	words := make([]string, len(d.cells))
	widths := make([]int, d.n)
	for idx, e := range d.cells {
		words[idx] = e.format(d.opts.formatVerb, d.opts.formatPrec)
		if col := idx % d.n; len(words[idx]) > widths[col] {
			widths[col] = len(words[idx])
		}
	}

	var b strings.Builder
	for row := 0; row < d.n; row++ {
		if row > 0 {
			b.WriteString(_fmtDetRowSep)
		}
		b.WriteString(_fmtDetOpen)
		for col := 0; col < d.n; col++ {
			if col > 0 {
				b.WriteString(_fmtDetSep)
			}
			w := words[row*d.n+col]
			b.WriteString(strings.Repeat(" ", widths[col]-len(w)))
			b.WriteString(w)
		}
		b.WriteString(_fmtDetClose)
	}

	return b.String()
}

// Determinant returns det(m) for a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquareMatrix.
func (m *Matrix) Determinant(opts ...Option) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMatDeterminant, err)
	}
	d, err := DeterminantFromMatrix(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opMatDeterminant, err)
	}
	res, err := d.Evaluate()
	if err != nil {
		return 0, matrixErrorf(opMatDeterminant, err)
	}
	x, err := res.Scalar()
	if err != nil {
		return 0, matrixErrorf(opMatDeterminant, err)
	}

	return x, nil
}
