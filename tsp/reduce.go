// Package tsp - cost matrix reduction.
//
// Reduce subtracts from each row its smallest finite entry, then does the
// same for each column of the row-reduced matrix. Rows or columns whose
// minimum is 0 or +Inf are left as they are. The sum of all subtracted
// minima is a lower bound on any tour using the remaining edges, because
// every tour leaves each row once and enters each column once.

package tsp

import (
	"math"

	"github.com/katalvlaran/tourbound/matrix"
)

// Reduce returns a reduced copy of m and the bound increment it represents.
// m is never modified, so a parent matrix may be shared by sibling branches
// before each takes its own copy. A nil or non-square m reduces to itself
// with increment 0.
//
// After reduction every row and every column either contains a 0 or is
// entirely +Inf.
//
// Complexity: O(n²) time, O(n²) space for the copy.
func Reduce(m *matrix.Dense) (*matrix.Dense, float64) {
	if m == nil {
		return nil, 0
	}
	out := m.CloneDense()
	if !out.IsSquare() {
		return out, 0
	}

	return out, reduceInPlace(out)
}

// reduceInPlace performs the reduction on m itself and returns the increment.
// Used on matrices the caller already owns (fresh children).
func reduceInPlace(m *matrix.Dense) float64 {
	var (
		n     = m.Rows()
		total float64
		row   []float64
		mn    float64
		v     float64
		i, j  int
	)

	// Rows.
	for i = 0; i < n; i++ {
		row, _ = m.Row(i)
		mn = math.Inf(1)
		for _, v = range row {
			if v < mn {
				mn = v
			}
		}
		if math.IsInf(mn, 1) || mn <= 0 {
			continue
		}
		total += mn
		for j = range row {
			row[j] -= mn // +Inf stays +Inf
		}
	}

	// Columns, on the row-reduced matrix.
	for j = 0; j < n; j++ {
		mn = math.Inf(1)
		for i = 0; i < n; i++ {
			v, _ = m.At(i, j)
			if v < mn {
				mn = v
			}
		}
		if math.IsInf(mn, 1) || mn <= 0 {
			continue
		}
		total += mn
		for i = 0; i < n; i++ {
			row, _ = m.Row(i)
			row[j] -= mn
		}
	}

	return total
}
