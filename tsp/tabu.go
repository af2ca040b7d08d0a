// Package tsp - tabu search over a trailing swap window.
//
// The current tour is split into a fixed prefix and a window of its last k
// positions. One pass tries every pairwise swap inside the window and keeps
// the cheapest candidate that is strictly better than the pass's best so
// far and not tabu. Every candidate, accepted or not, is appended to the
// tabu list.
//
// After a pass, an unchanged tour widens the window (k+1); any change
// resets k to the base width. The search stops once k reaches n or the
// budget expires.
//
// All state (tabu list, cost buffer) is local to a call.

package tsp

import (
	"context"
	"slices"

	"github.com/katalvlaran/tourbound/matrix"
)

type tabuEngine struct {
	w    *matrix.Dense
	n    int
	base int
	b    *budget
	ins  Instrumenter
	opts Options
	list *tabuList
}

// pass explores the window of width k around cur and returns the best
// acceptable tour (cur itself when nothing qualifies).
func (e *tabuEngine) pass(cur []int, curCost float64, k int) ([]int, float64) {
	var (
		off       = e.n - k
		best      = cur
		bestCost  = curCost
		cand      []int
		c         float64
		key       string
		i, j      int
		evaluated int
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			if e.b.expired() {
				e.ins.AddCreated(evaluated)
				return best, bestCost
			}
			cand = slices.Clone(cur)
			cand[off+i], cand[off+j] = cand[off+j], cand[off+i]
			c = cycleCost(e.w, cand)
			key = tourKey(cand)
			if c < bestCost && !e.list.contains(key) {
				best, bestCost = cand, c
			}
			e.list.push(key)
			evaluated++
		}
	}
	e.ins.AddCreated(evaluated)

	return best, bestCost
}

func (e *tabuEngine) run(start []int) ([]int, float64, int) {
	var (
		cur      = slices.Clone(start)
		curCost  = cycleCost(e.w, cur)
		k        = e.base
		next     []int
		nextCost float64
		improved int
	)
	for !e.b.expired() {
		if k >= e.n {
			break
		}
		next, nextCost = e.pass(cur, curCost, k)
		if equalTours(next, cur) {
			k++
			logDebug(e.opts.Logger, "tabu window widened", "k", k)
			continue
		}
		cur, curCost = next, nextCost
		k = e.base
		improved++
		e.ins.AddSolutions(1)
	}

	return cur, curCost, improved
}

// TabuSearch improves start over the materialized cost matrix costs.
//
// start must be a permutation of 0..n-1 where n is the matrix order. The
// returned tour has the same length; its cost is never above the cost of
// start, but the position of the start city may move when the window grows
// to cover it.
//
// Options used: TimeLimit, TabuTenure, TabuNeighborhood, Instrumenter
// (states created = candidates evaluated, solutions = accepted passes),
// Logger.
func TabuSearch(ctx context.Context, costs matrix.Matrix, start []int, opts Options) ([]int, float64, error) {
	if costs == nil || costs.Rows() != costs.Cols() {
		return nil, 0, ErrNonSquare
	}
	if err := validateTabuOptions(opts); err != nil {
		return nil, 0, err
	}
	if err := ValidateTour(start, costs.Rows()); err != nil {
		return nil, 0, err
	}
	w, err := matrix.AsDense(costs)
	if err != nil {
		return nil, 0, err
	}
	var sink Instrumenter = &Counters{}
	if opts.Instrumenter != nil {
		sink = opts.Instrumenter
	}
	tour, cost, _ := newTabuEngine(w, newBudget(ctx, opts.TimeLimit), sink, opts).run(start)

	return tour, cost, nil
}

func newTabuEngine(w *matrix.Dense, b *budget, ins Instrumenter, opts Options) *tabuEngine {
	return &tabuEngine{
		w:    w,
		n:    w.Rows(),
		base: opts.TabuNeighborhood,
		b:    b,
		ins:  ins,
		opts: opts,
		list: newTabuList(opts.TabuTenure),
	}
}

// Tabu builds a greedy tour from opts.StartVertex and improves it with
// tabu search for the rest of the budget. The result is rotated to begin at
// the start vertex. Result.Search is nil; Solutions counts accepted passes.
func Tabu(ctx context.Context, in *Instance, opts Options) (Result, error) {
	if err := validateOptions(in, opts); err != nil {
		return Result{}, err
	}
	b := newBudget(ctx, opts.TimeLimit)
	ins := newTee(opts.Instrumenter)
	if in.Len() <= 1 {
		return trivialResult(in.Len(), b, ins, false), nil
	}

	root, err := InitState(in, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	g := greedyFrom(b, in, root, &Counters{})
	if g == nil {
		logDebug(opts.Logger, "tabu has no greedy start", "start", opts.StartVertex)
		return noSolution(b.elapsed(), 0, nil), nil
	}

	e := newTabuEngine(in.costs, b, ins, opts)
	tour, cost, improved := e.run(g.Path)
	logDebug(opts.Logger, "tabu finished", "start_cost", g.Bound, "cost", cost, "improved", improved)

	return Result{
		Tour:      RotateToStart(tour, opts.StartVertex),
		Cost:      cost,
		Elapsed:   b.elapsed(),
		Solutions: improved,
	}, nil
}
