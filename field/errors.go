// SPDX-License-Identifier: MIT

package field

import "errors"

// Every message is prefixed with "field: " for grep-ability. Callers match
// with errors.Is; context is added with fmt.Errorf("...: %w", ErrX).
var (
	// ErrInvalidDimensions indicates non-positive width or height.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")

	// ErrNonRectangular indicates rows of differing lengths in FromRows.
	ErrNonRectangular = errors.New("field: all rows must have the same length")

	// ErrOutOfRange indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfRange = errors.New("field: coordinate out of range")

	// ErrNaN indicates an attempt to store NaN.
	ErrNaN = errors.New("field: NaN is not a valid distance")

	// ErrDimensionMismatch indicates two fields of different shapes were compared.
	ErrDimensionMismatch = errors.New("field: dimension mismatch")
)
