// Package tsp - tour utilities.
//
// A tour here is an open permutation of 0..n-1; the return to the first
// city is implicit. All helpers are O(n) and allocation-conscious.

package tsp

import (
	"fmt"
	"strings"
)

// ValidateTour checks that tour is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)
	var v int
	for _, v = range tour {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// RotateToStart returns a copy of tour rotated so that it begins at start.
// If start is absent the copy is returned unrotated.
func RotateToStart(tour []int, start int) []int {
	out := make([]int, len(tour))
	var i, pivot int
	for i = range tour {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	for i = range tour {
		out[i] = tour[(pivot+i)%len(tour)]
	}

	return out
}

// equalTours reports element-wise equality.
func equalTours(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// FormatTour renders a tour as "0 → 3 → 1 → 0" for logs and CLI output.
func FormatTour(tour []int) string {
	if len(tour) == 0 {
		return "∅"
	}
	var sb strings.Builder
	var v int
	for _, v = range tour {
		fmt.Fprintf(&sb, "%d → ", v)
	}
	fmt.Fprintf(&sb, "%d", tour[0])

	return sb.String()
}

// trivialTour returns the only tour of an instance with n<=1 cities.
func trivialTour(n int) []int {
	if n == 0 {
		return []int{}
	}

	return []int{0}
}
