// Package tsp - cost utilities shared by every engine.
//
// Tours are open permutations; the closing edge last→first is implied.

package tsp

import (
	"math"

	"github.com/katalvlaran/tourbound/matrix"
)

// cycleCost sums w[t[i]][t[i+1]] around the cycle, short-circuiting to +Inf
// on the first forbidden edge. Tours shorter than 2 cost 0.
//
// Complexity: O(len(tour)).
func cycleCost(w *matrix.Dense, tour []int) float64 {
	if len(tour) < 2 {
		return 0
	}
	var (
		sum float64
		i   int
		c   float64
		err error
		n   = len(tour)
	)
	for i = 0; i < n; i++ {
		c, err = w.At(tour[i], tour[(i+1)%n])
		if err != nil || math.IsInf(c, 1) {
			return math.Inf(1)
		}
		sum += c
	}

	return sum
}

// TourCost returns the cyclic cost of tour over an arbitrary cost matrix.
// It validates that tour is a permutation of 0..n-1 first.
func TourCost(costs matrix.Matrix, tour []int) (float64, error) {
	if costs == nil || costs.Rows() != costs.Cols() {
		return 0, ErrNonSquare
	}
	if err := ValidateTour(tour, costs.Rows()); err != nil {
		return 0, err
	}
	d, err := matrix.AsDense(costs)
	if err != nil {
		return 0, err
	}

	return cycleCost(d, tour), nil
}
