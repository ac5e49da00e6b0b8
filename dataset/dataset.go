// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

// Operation tags.
const (
	opRead      = "Read"
	opLoad      = "Load"
	opNew       = "New"
	opSlice     = "Dataset.Slice"
	opNormalize = "Dataset.Normalize"
)

// Dataset is an immutable set of labelled samples.
type Dataset struct {
	names    []string       // feature names; nil without a header
	labels   []int          // one per sample
	features *matrix.Matrix // Rows = samples, Cols = features
}

// New wraps labels and a samples × features matrix. names may be nil.
//
// Errors:
//   - matrix.ErrNilMatrix for nil features.
//   - ErrEmptyDataset when there are no samples.
//   - ErrMalformedRecord when len(labels) != features.Rows() or names has the wrong length.
func New(labels []int, features *matrix.Matrix, names []string) (*Dataset, error) {
	if err := matrix.ValidateNotNil(features); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if features.Rows() == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyDataset)
	}
	if len(labels) != features.Rows() {
		return nil, fmt.Errorf("%s: %d labels for %d samples: %w", opNew, len(labels), features.Rows(), ErrMalformedRecord)
	}
	if names != nil && len(names) != features.Cols() {
		return nil, fmt.Errorf("%s: %d names for %d features: %w", opNew, len(names), features.Cols(), ErrMalformedRecord)
	}

	return &Dataset{names: clone(names), labels: clone(labels), features: features}, nil
}

// Load opens path and reads it with Read.
func Load(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	defer f.Close()

	ds, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoad, path, err)
	}

	return ds, nil
}

// Read parses CSV records from r.
//
// Behavior highlights:
//   - Every record must have the field count of the first one.
//   - Feature values accept anything strconv.ParseFloat does; surrounding blanks are trimmed.
//
// Errors:
//   - ErrEmptyDataset when no data record follows the optional header.
//   - ErrMalformedRecord for CSV syntax errors, ragged records, a missing label
//     column, a record without features, or unparsable numbers (the strconv or
//     csv error stays in the chain).
func Read(r io.Reader, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts...)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true

	var (
		names   []string
		labels  []int
		columns [][]float64 // one slice per feature column
	)
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", opRead, ErrMalformedRecord, err)
		}
		if o.labelColumn >= len(rec) {
			return nil, fmt.Errorf("%s: record %d: label column %d of %d fields: %w", opRead, n, o.labelColumn, len(rec), ErrMalformedRecord)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s: record %d: no feature columns: %w", opRead, n, ErrMalformedRecord)
		}
		if o.header && n == 1 {
			names = dropColumn(rec, o.labelColumn)
			continue
		}
		if columns == nil {
			columns = make([][]float64, len(rec)-1)
		}

		label, err := strconv.Atoi(strings.TrimSpace(rec[o.labelColumn]))
		if err != nil {
			return nil, fmt.Errorf("%s: record %d: label: %w: %w", opRead, n, ErrMalformedRecord, err)
		}
		labels = append(labels, label)
		for i, field := range dropColumn(rec, o.labelColumn) {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s: record %d: feature %d: %w: %w", opRead, n, i, ErrMalformedRecord, err)
			}
			columns[i] = append(columns[i], v)
		}
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%s: %w", opRead, ErrEmptyDataset)
	}

	features, err := matrix.FromColumns(columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opRead, ErrMalformedRecord, err)
	}

	return &Dataset{names: names, labels: labels, features: features}, nil
}

// dropColumn returns rec without position col.
func dropColumn(rec []string, col int) []string {
	out := make([]string, 0, len(rec)-1)
	out = append(out, rec[:col]...)

	return append(out, rec[col+1:]...)
}

func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.labels) }

// Names returns the feature names from the header, or nil.
func (d *Dataset) Names() []string { return clone(d.names) }

// Labels returns the sample labels in order.
func (d *Dataset) Labels() []int { return clone(d.labels) }

// Features returns the samples × features matrix.
func (d *Dataset) Features() *matrix.Matrix { return d.features }

// Batch returns the features × samples matrix: one sample per column.
func (d *Dataset) Batch() *matrix.Matrix { return d.features.Transpose() }

// Classes returns one more than the largest label (0 when every label is negative).
func (d *Dataset) Classes() int {
	n := 0
	for _, l := range d.labels {
		if l+1 > n {
			n = l + 1
		}
	}

	return n
}

// Slice returns samples [from, to).
//
// Errors:
//   - ErrBadRange when from >= to or the range exceeds Len.
func (d *Dataset) Slice(from, to int) (*Dataset, error) {
	f, err := d.features.Slice(from, to)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w: %w", opSlice, from, to, ErrBadRange, err)
	}

	return &Dataset{names: d.names, labels: clone(d.labels[from:to]), features: f}, nil
}

// Normalize rescales every feature value onto [low, high] with
// matrix.RestrictRange; labels are untouched.
func (d *Dataset) Normalize(low, high float64) (*Dataset, error) {
	f, err := d.features.RestrictRange(low, high)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNormalize, err)
	}

	return &Dataset{names: d.names, labels: d.labels, features: f}, nil
}

// String renders the labels followed by the feature matrix.
func (d *Dataset) String() string {
	return fmt.Sprintf("label: %v\n%v", d.labels, d.features)
}
