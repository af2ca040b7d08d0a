// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major flat buffer with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Row exposes a no-copy view for hot loops (reduction, branching).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRow  = "Row"
	ctxFrom = "FromRows"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Returns ErrBadShape when rows<=0 or cols<=0.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFilled creates an r×c matrix with every entry set to v.
// NaN is rejected; ±Inf is allowed (use math.Inf(1) for "no edge").
//
// Complexity: O(r*c).
func NewFilled(rows, cols int, v float64) (*Dense, error) {
	if math.IsNaN(v) {
		return nil, ErrNaN
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.Fill(v)

	return m, nil
}

// FromRows copies a [][]float64 into a new Dense.
// All rows must have the same positive length; NaN is rejected.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	var (
		r = len(rows)
		c = len(rows[0])
		i int
		j int
	)
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, denseErrorf(ctxFrom, i, 0, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if math.IsNaN(rows[i][j]) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaN)
			}
			m.data[i*c+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows()==Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). NaN is rejected with ErrNaN.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice view into the backing buffer.
// Writes through the view mutate the matrix; callers that need an
// independent copy must Clone first. Returns ErrOutOfRange for a bad index.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Fill sets every entry to v. NaN is ignored to keep the numeric policy intact.
func (m *Dense) Fill(v float64) {
	if math.IsNaN(v) {
		return
	}
	var k int
	for k = range m.data {
		m.data[k] = v
	}
}

// Clone returns a deep copy as a Matrix.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense returns a deep copy with the concrete type preserved.
//
// Complexity: O(r*c).
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether both matrices have the same shape and identical
// entries (+Inf equals +Inf).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	var k int
	for k = range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line; +Inf prints as "inf".
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
		x    float64
	)
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			x = m.data[i*m.c+j]
			if math.IsInf(x, 1) {
				sb.WriteString("inf")
			} else {
				fmt.Fprintf(&sb, "%g", x)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// AsDense returns m itself when it is already a *Dense, otherwise a dense
// copy read through At. NaN entries are rejected.
//
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrBadShape
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		x    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, err
			}
			if math.IsNaN(x) {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaN)
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}
