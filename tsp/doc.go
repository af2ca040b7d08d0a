// Package tsp solves the Travelling Salesman Problem over asymmetric costs
// that may contain forbidden (+Inf) edges.
//
// Inputs are cities (an index plus a cost to every other city), validated
// once by NewInstance into an n×n cost table. Engines:
//
//   - Greedy         nearest neighbour, depth-first with full backtracking.
//   - BranchAndBound best-first search over reduced cost matrices, seeded
//     with the greedy tour. Exact when it runs to exhaustion.
//   - Tabu           greedy start improved by pairwise swaps in a trailing
//     window, with a bounded FIFO of recently seen tours.
//   - RandomTour     seeded random permutations until one is feasible.
//
// Every engine honours a soft wall-clock limit and ctx cancellation, both
// polled at loop boundaries; on expiry the best tour so far is returned.
// A missing tour is reported as data (Result.Tour==nil, Cost==+Inf), never
// as an error.
//
// Building blocks are exported for inspection and tests: Reduce, InitState,
// NextStates, GreedyFrom, TabuSearch.
package tsp
