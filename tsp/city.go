// Package tsp - the City boundary and the materialized Instance.
//
// The engines consume only a list of cities and a pairwise cost function.
// Instance is the single validation point: it checks city identities and
// every pairwise cost once, then keeps the n×n cost table so that greedy
// construction, branching and tabu evaluation never re-enter user code.

package tsp

import (
	"math"
	"slices"

	"github.com/katalvlaran/tourbound/matrix"
)

// City is an opaque point with a stable index and a cost to any other city.
// CostTo must return a value in [0,+Inf]; +Inf marks a forbidden edge.
type City interface {
	Index() int
	CostTo(other City) float64
}

// Instance is an immutable, validated TSP instance.
type Instance struct {
	cities []City
	costs  *matrix.Dense // n×n; nil when n==0; diagonal is +Inf
}

// NewInstance validates cities and materializes their cost table.
//
// Contract:
//   - indices are exactly {0..n-1} (any order; a sorted copy is kept),
//   - CostTo(self) is ignored; self-loops are always +Inf,
//   - every other cost is in [0,+Inf]; NaN or negative ⇒ *CostError.
//
// Complexity: O(n²) CostTo calls, O(n²) memory.
func NewInstance(cities []City) (*Instance, error) {
	sorted := slices.Clone(cities)
	slices.SortFunc(sorted, func(a, b City) int { return a.Index() - b.Index() })

	var (
		n = len(sorted)
		i int
		j int
	)
	for i = 0; i < n; i++ {
		if sorted[i] == nil || sorted[i].Index() != i {
			return nil, ErrCityIndex
		}
	}
	in := &Instance{cities: sorted}
	if n == 0 {
		return in, nil
	}

	costs, err := matrix.NewFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	var (
		row []float64
		c   float64
	)
	for i = 0; i < n; i++ {
		row, _ = costs.Row(i)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			c = sorted[i].CostTo(sorted[j])
			if math.IsNaN(c) || c < 0 {
				return nil, &CostError{From: i, To: j, Cost: c}
			}
			row[j] = c
		}
	}
	in.costs = costs

	return in, nil
}

// NewInstanceFromMatrix builds an instance whose cities are the rows of m.
// The diagonal is ignored (forced to +Inf); other entries follow the same
// contract as City.CostTo.
func NewInstanceFromMatrix(m matrix.Matrix) (*Instance, error) {
	if m == nil || m.Rows() != m.Cols() {
		return nil, ErrNonSquare
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	d = d.CloneDense() // the instance owns its table
	cities := make([]City, d.Rows())
	var i int
	for i = range cities {
		cities[i] = matrixCity{idx: i, costs: d}
	}

	return NewInstance(cities)
}

// matrixCity is a City backed by a row of an explicit cost table.
type matrixCity struct {
	idx   int
	costs *matrix.Dense
}

func (c matrixCity) Index() int { return c.idx }

func (c matrixCity) CostTo(other City) float64 {
	v, err := c.costs.At(c.idx, other.Index())
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// Len returns the number of cities.
func (in *Instance) Len() int { return len(in.cities) }

// City returns the city with index i.
func (in *Instance) City(i int) City { return in.cities[i] }

// Cities returns the cities in index order. The slice is a copy.
func (in *Instance) Cities() []City { return slices.Clone(in.cities) }

// Cost returns the direct edge cost i→j (+Inf for i==j or a forbidden edge).
func (in *Instance) Cost(i, j int) float64 {
	v, err := in.costs.At(i, j)
	if err != nil {
		return math.Inf(1)
	}

	return v
}

// CostMatrix returns a fresh, unreduced copy of the cost table.
// Returns nil for an empty instance.
func (in *Instance) CostMatrix() *matrix.Dense {
	if in.costs == nil {
		return nil
	}

	return in.costs.CloneDense()
}

// TourCost returns the cyclic cost of tour (last city connects back to the
// first). Any forbidden edge yields +Inf. Tours of length 0 or 1 cost 0.
//
// Complexity: O(len(tour)).
func (in *Instance) TourCost(tour []int) float64 {
	return cycleCost(in.costs, tour)
}
