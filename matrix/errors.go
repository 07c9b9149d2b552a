// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaN signals a NaN value passed to Set or Fill.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrGraphNil indicates that a nil graph was passed to an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")
)

// matrixErrorf wraps err with the operation name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
