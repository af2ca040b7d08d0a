package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
	"github.com/katalvlaran/tourbound/tsp"
)

type costCity struct {
	idx  int
	cost float64
}

func (c costCity) Index() int                    { return c.idx }
func (c costCity) CostTo(other tsp.City) float64 { return c.cost }

func TestNewInstance_SortsByIndex(t *testing.T) {
	cs := fiveCities()
	shuffled := []tsp.City{cs[3], cs[0], cs[4], cs[2], cs[1]}

	in := mustInstance(t, shuffled)
	require.Equal(t, 5, in.Len())
	var i int
	for i = 0; i < in.Len(); i++ {
		assert.Equal(t, i, in.City(i).Index())
	}
	assert.Equal(t, float64(2237), in.Cost(0, 1))
}

func TestNewInstance_DiagonalIsForbidden(t *testing.T) {
	in := mustInstance(t, fiveCities())
	var i int
	for i = 0; i < in.Len(); i++ {
		assert.True(t, math.IsInf(in.Cost(i, i), 1))
	}
}

func TestNewInstance_BadIndices(t *testing.T) {
	cases := map[string][]tsp.City{
		"gap":       {costCity{idx: 0}, costCity{idx: 2}},
		"duplicate": {costCity{idx: 0}, costCity{idx: 0}},
		"negative":  {costCity{idx: -1}, costCity{idx: 0}},
		"nil":       {nil},
	}
	for name, cs := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tsp.NewInstance(cs)
			require.ErrorIs(t, err, tsp.ErrCityIndex)
		})
	}
}

func TestNewInstance_RejectsBadCosts(t *testing.T) {
	for _, bad := range []float64{-1, math.NaN()} {
		_, err := tsp.NewInstance([]tsp.City{costCity{idx: 0, cost: 1}, costCity{idx: 1, cost: bad}})
		require.ErrorIs(t, err, tsp.ErrNegativeCost)

		var ce *tsp.CostError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, 1, ce.From)
		assert.Equal(t, 0, ce.To)
	}
}

func TestNewInstance_AllowsForbiddenEdges(t *testing.T) {
	in := mustInstance(t, fiveCities([2]int{4, 0}))
	assert.True(t, math.IsInf(in.Cost(4, 0), 1))
	assert.False(t, math.IsInf(in.Cost(0, 4), 1))
}

func TestNewInstance_Empty(t *testing.T) {
	in, err := tsp.NewInstance(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, in.Len())
	assert.Nil(t, in.CostMatrix())
	assert.Zero(t, in.TourCost(nil))
}

func TestNewInstanceFromMatrix(t *testing.T) {
	in := mustMatrixInstance(t, [][]float64{
		{0, 1, 2},
		{3, 0, 4},
		{5, 6, 0},
	})
	assert.True(t, math.IsInf(in.Cost(1, 1), 1), "diagonal is forced to +Inf")
	assert.Equal(t, float64(4), in.Cost(1, 2))

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsp.NewInstanceFromMatrix(rect)
	require.ErrorIs(t, err, tsp.ErrNonSquare)

	neg, err := matrix.FromRows([][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	_, err = tsp.NewInstanceFromMatrix(neg)
	require.ErrorIs(t, err, tsp.ErrNegativeCost)
}

func TestInstance_CostMatrixIsACopy(t *testing.T) {
	in := mustInstance(t, fiveCities())
	m := in.CostMatrix()
	require.NoError(t, m.Set(0, 1, 1))
	assert.Equal(t, float64(2237), in.Cost(0, 1))
}

func TestInstance_TourCost(t *testing.T) {
	in := mustInstance(t, fiveCities())
	assert.Equal(t, float64(14515), in.TourCost([]int{0, 1, 2, 3, 4}))
	assert.Equal(t, float64(17304), in.TourCost([]int{0, 1, 2, 4, 3}))
	assert.Zero(t, in.TourCost([]int{2}))

	blocked := mustInstance(t, fiveCities([2]int{4, 0}))
	assert.True(t, math.IsInf(blocked.TourCost([]int{0, 1, 2, 3, 4}), 1))
}

func TestTourCost_Validates(t *testing.T) {
	m, err := matrix.FromRows(ringMatrix())
	require.NoError(t, err)

	c, err := tsp.TourCost(m, []int{0, 5, 4, 1, 2, 3, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, float64(8), c)

	_, err = tsp.TourCost(m, []int{0, 5, 4})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.TourCost(m, []int{0, 5, 4, 1, 2, 3, 6, 6})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestTourHelpers(t *testing.T) {
	assert.Equal(t, []int{2, 3, 0, 1}, tsp.RotateToStart([]int{0, 1, 2, 3}, 2))
	assert.Equal(t, []int{0, 1}, tsp.RotateToStart([]int{0, 1}, 7))
	assert.Equal(t, "0 → 2 → 1 → 0", tsp.FormatTour([]int{0, 2, 1}))
	assert.Equal(t, "∅", tsp.FormatTour(nil))
	assert.NoError(t, tsp.ValidateTour([]int{}, 0))
	assert.ErrorIs(t, tsp.ValidateTour([]int{0, 3}, 2), tsp.ErrInvalidTour)
}
