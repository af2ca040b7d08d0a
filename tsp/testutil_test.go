package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbound/matrix"
	"github.com/katalvlaran/tourbound/tsp"
)

var inf = math.Inf(1)

// ptCity is a planar city with cost ceil(dist·1000) and optional
// one-way forbidden edges.
type ptCity struct {
	idx     int
	x, y    float64
	blocked map[int]bool
}

func (c ptCity) Index() int { return c.idx }

func (c ptCity) CostTo(other tsp.City) float64 {
	o := other.(ptCity)
	if c.blocked[o.idx] {
		return inf
	}

	return math.Ceil(math.Hypot(o.x-c.x, o.y-c.y) * 1000)
}

// fiveCities returns the five-point layout used across the core tests.
// Each pair in blocked forbids the edge from→to.
func fiveCities(blocked ...[2]int) []tsp.City {
	pts := [][2]float64{{0, 2}, {2, 3}, {3, 1}, {1, -2}, {-2, 0}}
	out := make([]tsp.City, len(pts))
	var i int
	for i = range pts {
		c := ptCity{idx: i, x: pts[i][0], y: pts[i][1], blocked: map[int]bool{}}
		for _, b := range blocked {
			if b[0] == i {
				c.blocked[b[1]] = true
			}
		}
		out[i] = c
	}

	return out
}

func mustInstance(t testing.TB, cities []tsp.City) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(cities)
	require.NoError(t, err)

	return in
}

func mustMatrixInstance(t testing.TB, rows [][]float64) *tsp.Instance {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	in, err := tsp.NewInstanceFromMatrix(m)
	require.NoError(t, err)

	return in
}

// ringMatrix is an 8-city sparse graph whose optimal tour from 0 is
// [0 5 4 1 2 3 6 7] with cost 8.
func ringMatrix() [][]float64 {
	return [][]float64{
		{inf, 2, inf, inf, inf, 1, inf, 1},
		{2, inf, 1, inf, 1, inf, inf, inf},
		{inf, 1, inf, 1, inf, inf, inf, 5},
		{inf, inf, 1, inf, 2, inf, 1, inf},
		{inf, 1, inf, 2, inf, 1, inf, inf},
		{1, inf, inf, inf, 1, inf, 2, inf},
		{inf, inf, inf, 1, inf, 2, inf, 1},
		{1, inf, 5, inf, inf, inf, 1, inf},
	}
}

// ringMatrixSkewed makes 0→1 cheap and 0→5 dear, flipping the optimum to
// [0 7 6 3 2 1 4 5].
func ringMatrixSkewed() [][]float64 {
	m := ringMatrix()
	m[0][1] = 1
	m[0][5] = 2

	return m
}

// randomRows builds an n×n asymmetric integer cost table where roughly
// forbid of the off-diagonal edges are +Inf.
func randomRows(r *rand.Rand, n int, forbid float64) [][]float64 {
	rows := make([][]float64, n)
	var i, j int
	for i = range rows {
		rows[i] = make([]float64, n)
		for j = range rows[i] {
			switch {
			case i == j, r.Float64() < forbid:
				rows[i][j] = inf
			default:
				rows[i][j] = float64(r.Intn(21))
			}
		}
	}

	return rows
}

// bruteForce returns the optimal cyclic cost with city 0 fixed first.
func bruteForce(in *tsp.Instance) float64 {
	n := in.Len()
	if n <= 1 {
		return 0
	}
	best := inf
	path := []int{0}
	used := make([]bool, n)
	used[0] = true
	var rec func()
	rec = func() {
		if len(path) == n {
			if c := in.TourCost(path); c < best {
				best = c
			}
			return
		}
		var c int
		for c = 1; c < n; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			path = append(path, c)
			rec()
			path = path[:len(path)-1]
			used[c] = false
		}
	}
	rec()

	return best
}

// unlimited returns default options for algo without a time limit.
func unlimited(algo tsp.Algorithm) tsp.Options {
	o := tsp.DefaultOptions()
	o.Algo = algo
	o.TimeLimit = 0

	return o
}

// circleCities places n cities on a circle; the optimum is the ring order.
func circleCities(n int) []tsp.City {
	out := make([]tsp.City, n)
	var i int
	for i = range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = ptCity{idx: i, x: 10 * math.Cos(a), y: 10 * math.Sin(a)}
	}

	return out
}
