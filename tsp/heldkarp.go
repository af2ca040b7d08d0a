// Package tsp - Held–Karp exact reference solver.
//
// HeldKarp fills dp[mask][j] = cheapest path that starts at the start
// vertex, visits exactly the cities in mask and ends at j, then closes the
// cycle back to the start. It is exact and deterministic but needs
// O(n·2ⁿ) memory, so it is capped at MaxHeldKarpCities and serves as the
// optimality reference for benchmarks and tests.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.

package tsp

import (
	"context"
	"fmt"
	"math"
)

// MaxHeldKarpCities is the largest instance HeldKarp accepts.
const MaxHeldKarpCities = 16

// HeldKarp returns an optimal tour from opts.StartVertex.
//
// The budget is polled once per subset mask; on expiry the "no solution"
// result is returned since the table is incomplete. Result.Search is nil.
//
// Errors: ErrInvalidOption when in.Len() > MaxHeldKarpCities, plus the
// usual option errors.
func HeldKarp(ctx context.Context, in *Instance, opts Options) (Result, error) {
	if err := validateOptions(in, opts); err != nil {
		return Result{}, err
	}
	n := in.Len()
	if n > MaxHeldKarpCities {
		return Result{}, fmt.Errorf("%w: %d cities exceed the exact limit of %d",
			ErrInvalidOption, n, MaxHeldKarpCities)
	}
	b := newBudget(ctx, opts.TimeLimit)
	ins := newTee(opts.Instrumenter)
	if n <= 1 {
		return trivialResult(n, b, ins, false), nil
	}

	var (
		s       = opts.StartVertex
		full    = 1<<n - 1
		sBit    = 1 << s
		dp      = make([]float64, (full+1)*n) // dp[mask*n+j]
		parent  = make([]int8, (full+1)*n)
		mask    int
		prev    int
		j, k    int
		c, cand float64
	)
	for j = range dp {
		dp[j] = math.Inf(1)
		parent[j] = -1
	}
	dp[sBit*n+s] = 0

	for mask = 0; mask <= full; mask++ {
		if mask&sBit == 0 {
			continue
		}
		if b.expired() {
			logDebug(opts.Logger, "held-karp stopped before completing its table", "n", n)
			return noSolution(b.elapsed(), 0, nil), nil
		}
		for j = 0; j < n; j++ {
			if j == s || mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				c = in.Cost(k, j)
				if math.IsInf(c, 1) {
					continue
				}
				cand = dp[prev*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int8(k)
				}
			}
		}
	}

	// Close the cycle.
	best, last := math.Inf(1), -1
	for j = 0; j < n; j++ {
		if j == s {
			continue
		}
		cand = dp[full*n+j] + in.Cost(j, s)
		if cand < best {
			best, last = cand, j
		}
	}
	if last < 0 {
		return noSolution(b.elapsed(), 0, nil), nil
	}

	tour := make([]int, n)
	tour[0] = s
	mask, j = full, last
	for k = n - 1; k >= 1; k-- {
		tour[k] = j
		prev = int(parent[mask*n+j])
		mask ^= 1 << j
		j = prev
	}
	ins.AddSolutions(1)

	return Result{Tour: tour, Cost: best, Elapsed: b.elapsed(), Solutions: 1}, nil
}
