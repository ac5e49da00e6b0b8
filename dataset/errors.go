// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyDataset indicates input without a single data record.
	ErrEmptyDataset = errors.New("dataset: empty dataset")

	// ErrMalformedRecord indicates a record that cannot be parsed: wrong field
	// count, a non-integer label or a non-numeric feature.
	ErrMalformedRecord = errors.New("dataset: malformed record")

	// ErrBadRange indicates an empty, inverted or out-of-bounds sample range.
	ErrBadRange = errors.New("dataset: bad range")
)
