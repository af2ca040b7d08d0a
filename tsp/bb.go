// Package tsp - branch-and-bound over reduced cost matrices.
//
// BranchAndBound runs a best-first search over State nodes with a
// depth-biased priority (see score). The greedy constructor supplies the
// first incumbent; every child whose lower bound exceeds the incumbent is
// pruned on creation.
//
// Loop, while the budget holds and the frontier is non-empty:
//  1. Sample the frontier size.
//  2. Pop the lowest score.
//  3. Terminal: compare its exact cyclic cost with the incumbent.
//  4. Otherwise expand with NextStates; prune or push each child.
//
// On exit the states left on the frontier are counted as pruned, so
// StatesPruned also tells how much of the space was never explored when the
// budget ran out.
//
// Complexity: exponential in n in the worst case; O(n³) per expansion.

package tsp

import (
	"context"
	"math"
)

// bbEngine holds the search data of one BranchAndBound call.
type bbEngine struct {
	in   *Instance
	n    int
	b    *budget
	ins  *tee
	opts Options

	open frontier

	bestTour []int
	bestCost float64
}

// seed installs the greedy incumbent. It reports false when none exists.
func (e *bbEngine) seed(root *State) bool {
	g := greedyFrom(e.b, e.in, root, &Counters{})
	if g == nil || math.IsInf(g.Bound, 1) {
		logDebug(e.opts.Logger, "greedy incumbent not found; no tour", "n", e.n)
		return false
	}
	e.bestTour = g.Path
	e.bestCost = g.Bound
	logDebug(e.opts.Logger, "initial incumbent", "cost", e.bestCost)

	return true
}

// record replaces the incumbent when st closes into a strictly cheaper tour.
func (e *bbEngine) record(st *State) {
	c := e.in.TourCost(st.Path)
	if c >= e.bestCost {
		return
	}
	e.bestTour = st.Path
	e.bestCost = c
	e.ins.AddSolutions(1)
	logDebug(e.opts.Logger, "new incumbent", "cost", c, "frontier", e.open.Len())
}

// expand pushes every child of st that can still beat the incumbent.
func (e *bbEngine) expand(st *State) {
	var ch *State
	for _, ch = range NextStates(st) {
		e.ins.AddCreated(1)
		if ch.Bound > e.bestCost {
			e.ins.AddPruned(1)
			continue
		}
		e.open.push(ch, score(ch, e.n, e.bestCost))
	}
}

func (e *bbEngine) run(root *State) {
	e.open.push(root, root.Bound)
	e.ins.AddCreated(1)
	e.ins.RecordFrontier(1)

	var st *State
	for !e.b.expired() && e.open.Len() > 0 {
		e.ins.RecordFrontier(e.open.Len())
		st = e.open.pop()
		if st.Terminal(e.n) {
			e.record(st)
			continue
		}
		e.expand(st)
	}
	if e.open.Len() > 0 {
		logDebug(e.opts.Logger, "search stopped with open states", "open", e.open.Len())
	}
	e.ins.AddPruned(e.open.Len())
}

// BranchAndBound searches for a minimum-cost tour from opts.StartVertex.
//
// Run to exhaustion it returns an optimal tour. When the budget expires or
// ctx is cancelled it returns the best incumbent so far. If the greedy
// constructor cannot build any tour, the instance has no Hamiltonian cycle
// and the "no solution" result is returned.
//
// Result.Solutions counts incumbent improvements after the greedy seed.
func BranchAndBound(ctx context.Context, in *Instance, opts Options) (Result, error) {
	if err := validateOptions(in, opts); err != nil {
		return Result{}, err
	}
	e := &bbEngine{
		in:   in,
		n:    in.Len(),
		b:    newBudget(ctx, opts.TimeLimit),
		ins:  newTee(opts.Instrumenter),
		opts: opts,
	}
	if e.n <= 1 {
		return trivialResult(e.n, e.b, e.ins, true), nil
	}

	root, err := InitState(in, opts.StartVertex)
	if err != nil {
		return Result{}, err
	}
	if !e.seed(root) {
		e.ins.AddCreated(1)
		e.ins.RecordFrontier(1)
		return noSolution(e.b.elapsed(), 0, e.ins.own.Stats()), nil
	}
	e.run(root)

	return Result{
		Tour:      e.bestTour,
		Cost:      e.bestCost,
		Elapsed:   e.b.elapsed(),
		Solutions: e.ins.own.Solutions,
		Search:    e.ins.own.Stats(),
	}, nil
}
