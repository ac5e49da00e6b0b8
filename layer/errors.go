// SPDX-License-Identifier: MIT

package layer

import (
	"errors"
	"fmt"
)

var (
	// ErrNilLayer indicates a nil *Dense handed to a Network.
	ErrNilLayer = errors.New("layer: nil layer")

	// ErrEmptyNetwork indicates a Network built from zero layers.
	ErrEmptyNetwork = errors.New("layer: empty network")
)

// layerErrorf wraps err with an operation tag, preserving the sentinel via %w.
func layerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
