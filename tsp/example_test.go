package tsp_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/tourbound/matrix"
	"github.com/katalvlaran/tourbound/tsp"
)

func ExampleBranchAndBound() {
	inf := math.Inf(1)
	m, _ := matrix.FromRows([][]float64{
		{inf, 2, inf, inf, inf, 1, inf, 1},
		{2, inf, 1, inf, 1, inf, inf, inf},
		{inf, 1, inf, 1, inf, inf, inf, 5},
		{inf, inf, 1, inf, 2, inf, 1, inf},
		{inf, 1, inf, 2, inf, 1, inf, inf},
		{1, inf, inf, inf, 1, inf, 2, inf},
		{inf, inf, inf, 1, inf, 2, inf, 1},
		{1, inf, 5, inf, inf, inf, 1, inf},
	})
	in, _ := tsp.NewInstanceFromMatrix(m)

	opts := tsp.DefaultOptions()
	opts.TimeLimit = 0
	res, _ := tsp.BranchAndBound(context.Background(), in, opts)

	fmt.Println(res.Tour, res.Cost)
	fmt.Println(tsp.FormatTour(res.Tour))
	// Output:
	// [0 5 4 1 2 3 6 7] 8
	// 0 → 5 → 4 → 1 → 2 → 3 → 6 → 7 → 0
}

func ExampleReduce() {
	inf := math.Inf(1)
	m, _ := matrix.FromRows([][]float64{
		{inf, 7, 3, 12},
		{3, inf, 6, 14},
		{5, 8, inf, 6},
		{9, 3, 5, inf},
	})
	reduced, bound := tsp.Reduce(m)

	fmt.Println(bound)
	fmt.Print(reduced)
	// Output:
	// 15
	// [inf, 4, 0, 8]
	// [0, inf, 3, 10]
	// [0, 3, inf, 0]
	// [6, 0, 2, inf]
}

func ExampleGreedy() {
	m, _ := matrix.FromRows([][]float64{
		{0, 1, 9, 9, 1},
		{1, 0, 1, 9, 9},
		{9, 1, 0, 1, 9},
		{9, 9, 1, 0, 1},
		{1, 9, 9, 1, 0},
	})
	in, _ := tsp.NewInstanceFromMatrix(m)

	res, _ := tsp.Greedy(context.Background(), in, tsp.DefaultOptions())
	fmt.Println(res.Tour, res.Cost, res.Found())
	// Output: [0 1 2 3 4] 5 true
}
