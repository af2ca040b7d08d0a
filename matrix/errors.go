// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; methods wrap with call-site context via denseErrorf.
package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0, c<=0
	// or ragged input rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN is returned when a NaN value is written into a matrix.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNonSquare is returned by helpers that require an n×n matrix.
	ErrNonSquare = errors.New("matrix: matrix is not square")
)
