// Package tsp - dispatcher.

package tsp

import (
	"context"
	"fmt"
)

// Engine is the common signature of every solver.
type Engine func(ctx context.Context, in *Instance, opts Options) (Result, error)

// EngineFor returns the solver implementing a.
func EngineFor(a Algorithm) (Engine, error) {
	switch a {
	case AlgoBranchAndBound:
		return BranchAndBound, nil
	case AlgoGreedy:
		return Greedy, nil
	case AlgoTabu:
		return Tabu, nil
	case AlgoRandom:
		return RandomTour, nil
	case AlgoHeldKarp:
		return HeldKarp, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
	}
}

// Solve runs the engine selected by opts.Algo.
//
// Errors: ErrUnsupportedAlgorithm, ErrInvalidOption, ErrStartOutOfRange.
// An infeasible instance is not an error; check Result.Found.
func Solve(ctx context.Context, in *Instance, opts Options) (Result, error) {
	run, err := EngineFor(opts.Algo)
	if err != nil {
		return Result{}, err
	}

	return run(ctx, in, opts)
}

// trivialResult is the zero-cost tour of an instance with at most one city.
// withStats selects whether the engine reports frontier statistics.
func trivialResult(n int, b *budget, ins *tee, withStats bool) Result {
	ins.AddCreated(1)
	ins.RecordFrontier(1)
	ins.AddSolutions(1)
	res := Result{
		Tour:      trivialTour(n),
		Cost:      0,
		Elapsed:   b.elapsed(),
		Solutions: 1,
	}
	if withStats {
		res.Search = ins.own.Stats()
	}

	return res
}
