// Package tsp - random tour baseline.

package tsp

import (
	"context"
	"math"
)

// maxRandomDraws caps RandomTour when no time limit is set, so an instance
// without any feasible tour still terminates.
const maxRandomDraws = 1 << 20

// RandomTour draws seeded random permutations until one has a finite cyclic
// cost or the budget expires. Result.Solutions counts permutations tried;
// Result.Search is nil. The tour is rotated to begin at opts.StartVertex.
func RandomTour(ctx context.Context, in *Instance, opts Options) (Result, error) {
	if err := validateOptions(in, opts); err != nil {
		return Result{}, err
	}
	b := newBudget(ctx, opts.TimeLimit)
	ins := newTee(opts.Instrumenter)
	n := in.Len()
	if n <= 1 {
		return trivialResult(n, b, ins, false), nil
	}

	var (
		r     = rngFromSeed(opts.Seed)
		perm  = make([]int, n)
		tries int
		c     float64
		i     int
	)
	for i = range perm {
		perm[i] = i
	}
	for tries < maxRandomDraws && !b.expired() {
		shuffleInts(perm, r)
		tries++
		ins.AddCreated(1)
		c = in.TourCost(perm)
		if math.IsInf(c, 1) {
			continue
		}
		ins.AddSolutions(1)
		return Result{
			Tour:      RotateToStart(perm, opts.StartVertex),
			Cost:      c,
			Elapsed:   b.elapsed(),
			Solutions: tries,
		}, nil
	}
	logDebug(opts.Logger, "random tour gave up", "tries", tries)

	return noSolution(b.elapsed(), tries, nil), nil
}
