// Package tsp - greedy constructor.
//
// Depth-first nearest neighbour with full backtracking: from the last city,
// try unvisited cities in ascending direct cost (index order on ties),
// skipping forbidden edges, and recurse into the first one that completes.
// A full path is accepted only if its closing edge back to the start is
// finite. Worst case is exponential, but on mostly complete graphs the
// first descent almost always succeeds.

package tsp

import (
	"context"
	"math"
	"slices"
)

// greedyRun carries the mutable search buffers for one descent.
type greedyRun struct {
	in  *Instance
	b   *budget
	ins Instrumenter
	n   int

	path    []int
	seen    []bool
	aborted bool
}

// dfs extends g.path in place. It returns true once g.path is a full tour
// with a finite closing edge; on false g.path is restored.
func (g *greedyRun) dfs() bool {
	if g.b.expired() {
		g.aborted = true
		return false
	}
	last := g.path[len(g.path)-1]
	if len(g.path) == g.n {
		return !math.IsInf(g.in.Cost(last, g.path[0]), 1)
	}

	cands := make([]int, 0, g.n-len(g.path))
	var c int
	for c = 0; c < g.n; c++ {
		if !g.seen[c] {
			cands = append(cands, c)
		}
	}
	slices.SortStableFunc(cands, func(a, b int) int {
		ca, cb := g.in.Cost(last, a), g.in.Cost(last, b)
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		default:
			return 0
		}
	})

	for _, c = range cands {
		if math.IsInf(g.in.Cost(last, c), 1) {
			break // sorted: everything after is forbidden too
		}
		g.ins.AddCreated(1)
		g.path = append(g.path, c)
		g.seen[c] = true
		g.ins.RecordFrontier(len(g.path) - 1)
		if g.dfs() {
			return true
		}
		g.seen[c] = false
		g.path = g.path[:len(g.path)-1]
		if g.aborted {
			return false
		}
		g.ins.AddPruned(1)
	}

	return false
}

// greedyFrom completes s into a terminal state or returns nil.
// The terminal state's Bound is the exact cyclic cost of its path and its
// Matrix is s.Matrix (greedy never touches it).
func greedyFrom(b *budget, in *Instance, s *State, ins Instrumenter) *State {
	n := in.Len()
	if n <= 1 {
		return &State{Matrix: s.Matrix, Bound: 0, Depth: 0, Path: trivialTour(n)}
	}
	g := &greedyRun{
		in:   in,
		b:    b,
		ins:  ins,
		n:    n,
		path: make([]int, 0, n),
		seen: make([]bool, n),
	}
	var c int
	for _, c = range s.Path {
		g.path = append(g.path, c)
		g.seen[c] = true
	}
	if !g.dfs() {
		return nil
	}

	return &State{
		Matrix: s.Matrix,
		Bound:  in.TourCost(g.path),
		Depth:  n - 1,
		Path:   g.path,
	}
}

// GreedyFrom runs the greedy constructor from s without a time limit
// (only ctx cancellation stops it). It returns nil when no completion of
// s.Path into a tour exists.
func GreedyFrom(ctx context.Context, in *Instance, s *State) *State {
	return greedyFrom(newBudget(ctx, 0), in, s, &Counters{})
}

// Greedy builds one tour from opts.StartVertex.
//
// Result.Search reports the descent: states created are edges tried,
// states pruned are edges backtracked over, max frontier is the deepest
// path reached. Solutions is 1 on success.
func Greedy(ctx context.Context, in *Instance, opts Options) (Result, error) {
	if err := validateOptions(in, opts); err != nil {
		return Result{}, err
	}
	b := newBudget(ctx, opts.TimeLimit)
	ins := newTee(opts.Instrumenter)
	if in.Len() <= 1 {
		return trivialResult(in.Len(), b, ins, true), nil
	}

	root, err := InitState(in, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	ins.AddCreated(1)
	ins.RecordFrontier(1)

	final := greedyFrom(b, in, root, ins)
	if final == nil {
		logDebug(opts.Logger, "greedy found no tour", "start", opts.StartVertex, "aborted", b.expired())
		return noSolution(b.elapsed(), ins.own.Solutions, ins.own.Stats()), nil
	}
	ins.AddSolutions(1)

	return Result{
		Tour:      final.Path,
		Cost:      final.Bound,
		Elapsed:   b.elapsed(),
		Solutions: ins.own.Solutions,
		Search:    ins.own.Stats(),
	}, nil
}
