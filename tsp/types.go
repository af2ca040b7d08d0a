// Package tsp - shared types: sentinels, algorithms, options, results.
//
// Error policy:
//   - Errors are reserved for malformed input at the boundary (instance
//     construction, options). They are sentinels matched with errors.Is.
//   - "No feasible tour" and "time budget exhausted" are NOT errors. They are
//     reported as data on Result (Tour==nil, Cost==+Inf) so callers branch on
//     the result shape.

package tsp

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// ErrCityIndex is returned when city indices are not exactly 0..n-1.
	ErrCityIndex = errors.New("tsp: city indices must be unique and cover 0..n-1")

	// ErrNegativeCost is returned (wrapped in *CostError) for negative or NaN costs.
	ErrNegativeCost = errors.New("tsp: cost must be non-negative or +Inf")

	// ErrNonSquare is returned when a cost matrix is not n×n.
	ErrNonSquare = errors.New("tsp: cost matrix is not square")

	// ErrStartOutOfRange is returned when Options.StartVertex is not a valid index.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidTour is returned when a tour is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("tsp: tour is not a permutation of the cities")

	// ErrInvalidOption is returned when an Options field is outside its domain.
	ErrInvalidOption = errors.New("tsp: invalid option")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// CostError reports the offending edge when a cost function returns a value
// outside [0,+Inf]. It unwraps to ErrNegativeCost.
type CostError struct {
	From, To int
	Cost     float64
}

func (e *CostError) Error() string {
	return fmt.Sprintf("tsp: invalid cost %g on edge %d→%d", e.Cost, e.From, e.To)
}

func (e *CostError) Unwrap() error { return ErrNegativeCost }

// Algorithm selects the engine used by Solve.
type Algorithm int

const (
	// AlgoBranchAndBound runs the reduced-matrix branch-and-bound search.
	AlgoBranchAndBound Algorithm = iota
	// AlgoGreedy runs the nearest-neighbor constructor with backtracking.
	AlgoGreedy
	// AlgoTabu improves a greedy tour with windowed tabu search.
	AlgoTabu
	// AlgoRandom draws random permutations until one is feasible.
	AlgoRandom
	// AlgoHeldKarp runs the exact dynamic program (small instances only).
	AlgoHeldKarp
)

var algoNames = [...]string{"branch-and-bound", "greedy", "tabu", "random", "held-karp"}

// String returns the canonical lowercase name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// ParseAlgorithm maps a canonical name (or one of the short aliases "bb",
// "bnb", "exact", "hk") back to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bb", "bnb":
		return AlgoBranchAndBound, nil
	case "exact", "hk":
		return AlgoHeldKarp, nil
	}
	var i int
	for i = range algoNames {
		if algoNames[i] == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Defaults shared by DefaultOptions and validation.
const (
	// DefaultTimeLimit mirrors the interactive default budget of one minute.
	DefaultTimeLimit = 60 * time.Second

	// DefaultTabuTenure is the capacity of the tabu list.
	DefaultTabuTenure = 500

	// DefaultTabuNeighborhood is the base width k of the trailing swap window.
	DefaultTabuNeighborhood = 3
)

// Options configures every engine. Zero values are not all meaningful; start
// from DefaultOptions and override.
type Options struct {
	// Algo selects the engine for Solve.
	Algo Algorithm

	// StartVertex is the city every tour starts from.
	StartVertex int

	// TimeLimit is the soft wall-clock budget. 0 means unlimited.
	// The deadline is polled at loop boundaries, never preemptively.
	TimeLimit time.Duration

	// Seed drives AlgoRandom. 0 selects a fixed default seed.
	Seed int64

	// TabuTenure is the tabu list capacity (oldest entry evicted first).
	TabuTenure int

	// TabuNeighborhood is the base width of the trailing swap window.
	TabuNeighborhood int

	// Instrumenter, when set, receives every counter update in addition to
	// the engine's own Counters.
	Instrumenter Instrumenter

	// Logger receives debug events (new incumbents, window widening).
	// Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the options used by the interactive solver.
func DefaultOptions() Options {
	return Options{
		Algo:             AlgoBranchAndBound,
		StartVertex:      0,
		TimeLimit:        DefaultTimeLimit,
		TabuTenure:       DefaultTabuTenure,
		TabuNeighborhood: DefaultTabuNeighborhood,
	}
}

// SearchStats carries frontier-based instrumentation. It is nil on results
// of engines that keep no frontier (tabu, random).
type SearchStats struct {
	MaxFrontier   int
	StatesCreated int
	StatesPruned  int
}

// Result is the outcome of one engine run.
type Result struct {
	// Tour is the visiting order, implicitly cyclic (no repeated start).
	// Nil when no feasible tour was found.
	Tour []int

	// Cost is the total cyclic cost of Tour, or +Inf when Tour is nil.
	Cost float64

	// Elapsed is the wall-clock time spent in the engine.
	Elapsed time.Duration

	// Solutions counts solutions found during the search. For
	// branch-and-bound it excludes the initial greedy incumbent; for the
	// random engine it counts permutations tried.
	Solutions int

	// Search holds frontier statistics; nil when the engine has none.
	Search *SearchStats
}

// Found reports whether the result carries a feasible tour.
func (r Result) Found() bool { return r.Tour != nil && !math.IsInf(r.Cost, 1) }

// noSolution builds the "no feasible tour" sentinel result.
func noSolution(elapsed time.Duration, solutions int, st *SearchStats) Result {
	return Result{Cost: math.Inf(1), Elapsed: elapsed, Solutions: solutions, Search: st}
}
