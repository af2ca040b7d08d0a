// Package tsp - branch-and-bound search states.
//
// A State is never modified after it is built: every child gets its own
// matrix and its own path slice, so states may sit on the frontier while
// their siblings are expanded.

package tsp

import (
	"math"
	"slices"

	"github.com/katalvlaran/tourbound/matrix"
)

// State is one node of the search tree.
type State struct {
	// Matrix is the reduced cost matrix owned by this state.
	Matrix *matrix.Dense
	// Bound is a lower bound on every completion of Path into a tour.
	Bound float64
	// Depth counts committed edges; len(Path) == Depth+1.
	Depth int
	// Path lists visited cities in order, starting at the start vertex.
	Path []int
}

// Last returns the most recently visited city.
func (s *State) Last() int { return s.Path[len(s.Path)-1] }

// Terminal reports whether the path covers all n cities.
func (s *State) Terminal(n int) bool { return len(s.Path) == n }

// visited reports whether city c is already on the path.
func (s *State) visited(c int) bool { return slices.Contains(s.Path, c) }

// InitState reduces the instance's full cost matrix and returns the root
// state: path [start], depth 0, bound equal to the reduction increment.
//
// Errors: ErrStartOutOfRange when start is not a city index.
func InitState(in *Instance, start int) (*State, error) {
	if start < 0 || start >= in.Len() {
		return nil, ErrStartOutOfRange
	}
	m := in.CostMatrix()
	bound := reduceInPlace(m)

	return &State{Matrix: m, Bound: bound, Depth: 0, Path: []int{start}}, nil
}

// NextStates expands s into one child per unvisited city, in ascending city
// index order. For child c, reached from last city u:
//
//	edge   = s.Matrix[u][c] (reduced cost)
//	row u, column c and every back-edge c→visited are set to +Inf
//	bound  = s.Bound + edge + reduction increment of the new matrix
//
// A child reached over a forbidden edge carries Bound=+Inf. Children are
// not sorted by cost; the frontier does the ordering.
//
// Complexity: O(n) children, each O(n²) to copy and reduce.
func NextStates(s *State) []*State {
	var (
		n        = s.Matrix.Rows()
		u        = s.Last()
		out      = make([]*State, 0, n-len(s.Path))
		c, i     int
		edge     float64
		m        *matrix.Dense
		row      []float64
		inc      float64
		childPth []int
		p        int
	)
	for c = 0; c < n; c++ {
		if s.visited(c) {
			continue
		}
		m = s.Matrix.CloneDense()
		edge, _ = m.At(u, c)

		row, _ = m.Row(u)
		for i = range row {
			row[i] = math.Inf(1)
		}
		for i = 0; i < n; i++ {
			_ = m.Set(i, c, math.Inf(1))
		}
		for _, p = range s.Path {
			_ = m.Set(c, p, math.Inf(1))
		}

		inc = reduceInPlace(m)

		childPth = make([]int, len(s.Path)+1)
		copy(childPth, s.Path)
		childPth[len(s.Path)] = c

		out = append(out, &State{
			Matrix: m,
			Bound:  s.Bound + edge + inc,
			Depth:  s.Depth + 1,
			Path:   childPth,
		})
	}

	return out
}
