package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/tsp"
)

var allAlgorithms = []tsp.Algorithm{
	tsp.AlgoBranchAndBound,
	tsp.AlgoGreedy,
	tsp.AlgoTabu,
	tsp.AlgoRandom,
	tsp.AlgoHeldKarp,
}

func TestSolve_Dispatch(t *testing.T) {
	in := mustInstance(t, fiveCities())
	for _, a := range allAlgorithms {
		t.Run(a.String(), func(t *testing.T) {
			res, err := tsp.Solve(context.Background(), in, unlimited(a))
			require.NoError(t, err)
			require.True(t, res.Found())
			assert.NoError(t, tsp.ValidateTour(res.Tour, in.Len()))
			assert.Equal(t, 0, res.Tour[0])
			assert.GreaterOrEqual(t, res.Cost, float64(14515))
		})
	}
}

func TestSolve_TrivialInstances(t *testing.T) {
	one := mustMatrixInstance(t, [][]float64{{0}})
	empty := mustInstance(t, nil)
	for _, a := range allAlgorithms {
		res, err := tsp.Solve(context.Background(), one, unlimited(a))
		require.NoError(t, err, a.String())
		assert.Equal(t, []int{0}, res.Tour)
		assert.Zero(t, res.Cost)
		assert.True(t, res.Found())

		res, err = tsp.Solve(context.Background(), empty, unlimited(a))
		require.NoError(t, err, a.String())
		assert.Empty(t, res.Tour)
		assert.Zero(t, res.Cost)
	}
}

func TestSolve_UnsupportedAlgorithm(t *testing.T) {
	in := mustInstance(t, fiveCities())
	opts := unlimited(tsp.Algorithm(99))
	_, err := tsp.Solve(context.Background(), in, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algorithm(99)", tsp.Algorithm(99).String())
}

func TestSolve_InvalidOptions(t *testing.T) {
	in := mustInstance(t, fiveCities())
	cases := map[string]struct {
		mut  func(*tsp.Options)
		want error
	}{
		"negative time limit": {func(o *tsp.Options) { o.TimeLimit = -time.Second }, tsp.ErrInvalidOption},
		"negative tenure":     {func(o *tsp.Options) { o.TabuTenure = -1 }, tsp.ErrInvalidOption},
		"narrow window":       {func(o *tsp.Options) { o.TabuNeighborhood = 1 }, tsp.ErrInvalidOption},
		"start too large":     {func(o *tsp.Options) { o.StartVertex = 5 }, tsp.ErrStartOutOfRange},
		"start negative":      {func(o *tsp.Options) { o.StartVertex = -1 }, tsp.ErrStartOutOfRange},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for _, a := range allAlgorithms {
				opts := unlimited(a)
				tc.mut(&opts)
				_, err := tsp.Solve(context.Background(), in, opts)
				assert.ErrorIs(t, err, tc.want, a.String())
			}
		})
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range allAlgorithms {
		got, err := tsp.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	got, err := tsp.ParseAlgorithm("bb")
	require.NoError(t, err)
	assert.Equal(t, tsp.AlgoBranchAndBound, got)

	_, err = tsp.ParseAlgorithm("simulated-annealing")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestDefaultOptions(t *testing.T) {
	o := tsp.DefaultOptions()
	assert.Equal(t, tsp.AlgoBranchAndBound, o.Algo)
	assert.Equal(t, 60*time.Second, o.TimeLimit)
	assert.Equal(t, 500, o.TabuTenure)
	assert.Equal(t, 3, o.TabuNeighborhood)
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, tsp.DeriveSeed(7, 1), tsp.DeriveSeed(7, 1))
	assert.NotEqual(t, tsp.DeriveSeed(7, 1), tsp.DeriveSeed(7, 2))
	assert.NotEqual(t, tsp.DeriveSeed(7, 1), tsp.DeriveSeed(8, 1))
}
