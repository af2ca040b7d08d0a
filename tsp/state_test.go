package tsp_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
	"github.com/katalvlaran/tourbound/tsp"
)

const fiveRootBound = 13923

func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func TestInitState_FiveCities(t *testing.T) {
	in := mustInstance(t, fiveCities())
	root, err := tsp.InitState(in, 0)
	require.NoError(t, err)

	assert.Equal(t, float64(fiveRootBound), root.Bound)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, []int{0}, root.Path)

	want, err := matrix.FromRows([][]float64{
		{inf, 0, 926, 1110, 592},
		{0, inf, 0, 2086, 2763},
		{926, 0, inf, 592, 2863},
		{518, 1494, 0, inf, 0},
		{0, 2171, 2271, 0, inf},
	})
	require.NoError(t, err)
	assert.True(t, root.Matrix.Equal(want), "got\n%s", root.Matrix)
}

func TestInitState_StartOutOfRange(t *testing.T) {
	in := mustInstance(t, fiveCities())
	_, err := tsp.InitState(in, 5)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
	_, err = tsp.InitState(in, -1)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestInitState_KeepsForbiddenEdges(t *testing.T) {
	in := mustInstance(t, fiveCities([2]int{4, 0}))
	root, err := tsp.InitState(in, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(at(t, root.Matrix, 4, 0), 1))
}

func TestNextStates_Root(t *testing.T) {
	in := mustInstance(t, fiveCities())
	root, err := tsp.InitState(in, 0)
	require.NoError(t, err)
	snapshot := root.Matrix.CloneDense()

	kids := tsp.NextStates(root)
	require.Len(t, kids, 4)
	assert.True(t, root.Matrix.Equal(snapshot), "parent matrix must not change")

	var (
		k    *tsp.State
		i, c int
	)
	for i, k = range kids {
		c = i + 1
		assert.Equal(t, 1, k.Depth)
		assert.Equal(t, []int{0, c}, k.Path)
		for _, j := range []int{0, 1, 2, 3, 4} {
			assert.True(t, math.IsInf(at(t, k.Matrix, 0, j), 1), "row 0 of child %d", c)
			assert.True(t, math.IsInf(at(t, k.Matrix, j, c), 1), "column %d of child %d", c, c)
		}
		assert.True(t, math.IsInf(at(t, k.Matrix, c, 0), 1), "back-edge of child %d", c)
	}

	assert.Equal(t, float64(fiveRootBound+592), kids[0].Bound)
	assert.Equal(t, float64(fiveRootBound+926), kids[1].Bound)

	// Children own their matrices.
	require.NoError(t, kids[0].Matrix.Set(1, 2, 42))
	assert.NotEqual(t, float64(42), at(t, kids[1].Matrix, 1, 2))
	assert.NotEqual(t, float64(42), at(t, root.Matrix, 1, 2))
}

func TestNextStates_Chain(t *testing.T) {
	in := mustInstance(t, fiveCities())
	root, err := tsp.InitState(in, 0)
	require.NoError(t, err)

	s := tsp.NextStates(root)[1] // 0 → 2
	next := tsp.NextStates(s)
	require.Len(t, next, 3)

	s = next[0] // 0 → 2 → 1
	assert.Equal(t, 2, s.Depth)
	assert.Equal(t, []int{0, 2, 1}, s.Path)
	assert.Equal(t, float64(fiveRootBound+926+2086), s.Bound)
	assert.True(t, math.IsInf(at(t, s.Matrix, 2, 0), 1))
	assert.True(t, math.IsInf(at(t, s.Matrix, 1, 0), 1))
	assert.True(t, math.IsInf(at(t, s.Matrix, 1, 2), 1))

	next = tsp.NextStates(s)
	require.Len(t, next, 2)

	next = tsp.NextStates(next[0])
	require.Len(t, next, 1)
	last := next[0]
	assert.Equal(t, float64(fiveRootBound+926+2086), last.Bound)
	assert.Equal(t, 4, last.Depth)
	assert.Equal(t, []int{0, 2, 1, 3, 4}, last.Path)
	assert.True(t, last.Terminal(in.Len()))
	assert.Equal(t, 4, last.Last())

	var i, j int
	for i = 0; i < in.Len(); i++ {
		for j = 0; j < in.Len(); j++ {
			assert.True(t, math.IsInf(at(t, last.Matrix, i, j), 1))
		}
	}
	assert.Empty(t, tsp.NextStates(last))
}

// Every state on every branch keeps a monotone bound and a simple path,
// and no terminal bound exceeds the cost of its tour.
func TestNextStates_InvariantsOnRandomInstances(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	var round int
	for round = 0; round < 20; round++ {
		n := 3 + r.Intn(4)
		in := mustMatrixInstance(t, randomRows(r, n, 0.2))
		root, err := tsp.InitState(in, 0)
		require.NoError(t, err)

		var walk func(s *tsp.State)
		walk = func(s *tsp.State) {
			require.Len(t, s.Path, s.Depth+1)
			sorted := slices.Clone(s.Path)
			slices.Sort(sorted)
			require.Len(t, slices.Compact(sorted), len(s.Path), "path %v revisits a city", s.Path)
			if s.Terminal(n) {
				assert.LessOrEqual(t, s.Bound, in.TourCost(s.Path))
				return
			}
			var k *tsp.State
			for _, k = range tsp.NextStates(s) {
				require.GreaterOrEqual(t, k.Bound, s.Bound)
				walk(k)
			}
		}
		walk(root)
	}
}
