// Package tourbound is a toolkit for the asymmetric travelling salesman
// problem on maps where some roads are missing: it builds scenarios, solves
// them exactly or heuristically under a wall-clock budget, and benchmarks the
// engines against each other.
//
// What is inside?
//
//	• Cost matrices: dense n×n tables where +Inf marks a forbidden edge
//	• Scenarios: random cities on a map, one-way road closures, elevation
//	• Exact search: reduced-matrix branch-and-bound seeded by greedy
//	• Heuristics: greedy depth-first, tabu search over adjacent swaps, random
//	• Reference optimum: Held–Karp dynamic programming for small instances
//	• Instrumentation: search counters, Prometheus metrics, JSON reports
//
// Layout:
//
//	matrix/       dense cost-matrix storage with +Inf support
//	tsp/          reduction, search states and every engine
//	scenario/     map generation, difficulty rules, TOML scenario files
//	metrics/      Prometheus collector fed by tsp.Instrumenter
//	internal/cli/ the solve and bench commands
//	cmd/tourbound the binary
//
// Quick example:
//
//	sc, _ := scenario.Generate(15, scenario.Normal, 1)
//	in, _ := sc.Instance()
//	res, _ := tsp.BranchAndBound(ctx, in, tsp.DefaultOptions())
//	fmt.Println(tsp.FormatTour(res.Tour), res.Cost)
//
//	go install github.com/katalvlaran/tourbound/cmd/tourbound@latest
package tourbound
