// SPDX-License-Identifier: MIT

// Package matrix provides the dense cost-matrix storage used by the tour
// solvers in package tsp.
//
// A cost matrix is an n×n table where entry (i, j) is the cost of travelling
// directly from city i to city j. +Inf marks a forbidden edge, so unlike a
// general numeric matrix, Dense admits +Inf values. NaN is always rejected by
// Set because it breaks every ordering the solvers rely on.
//
// Value semantics: Clone and CloneDense return deep copies. Search states in
// package tsp own their matrices exclusively and rely on this to avoid
// aliasing between sibling branches.
//
// Complexity quicksheet:
//   - NewDense / NewFilled / FromRows: O(r*c).
//   - At / Set: O(1), bounds-checked, never panic.
//   - Row: O(1), returns a view into the backing buffer.
//   - Clone: O(r*c).
package matrix
