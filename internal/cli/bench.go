package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbound/metrics"
	"github.com/katalvlaran/tourbound/scenario"
	"github.com/katalvlaran/tourbound/tsp"
)

func (c *CLI) benchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare engines over generated scenarios",
		Long: `Run every selected engine on --rounds scenarios per city count and
average the results. Without --cities the sweep is 10 to 50 in steps of 5.

Every engine of a round sees the same scenario. Up to 16 cities the exact
Held-Karp optimum is computed as well and reported as an optimality gap.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc, err := c.loadConfig(cmd, "bench")
			if err != nil {
				return err
			}
			return c.bench(cmd.Context(), fc.Bench)
		},
	}

	f := cmd.Flags()
	f.Int("rounds", 1, "scenarios per city count")
	f.IntSlice("cities", nil, "city counts to run (default 10,15,...,50)")
	f.StringSlice("algos", []string{
		tsp.AlgoGreedy.String(),
		tsp.AlgoBranchAndBound.String(),
		tsp.AlgoTabu.String(),
		tsp.AlgoRandom.String(),
	}, "engines to compare")
	f.String("difficulty", scenario.Normal.String(), "scenario difficulty: easy, normal, hard")
	f.Int64("seed", 1, "base seed; each round derives its own")
	f.Duration("time-limit", tsp.DefaultTimeLimit, "wall-clock budget per run (0 = unlimited)")
	f.Int("workers", 1, "runs executed in parallel")
	f.String("report", "", "write a JSON report to this file")
	f.String("metrics-out", "", "write Prometheus metrics to this file when done")
	f.String("format", "text", "output format: text or json")

	return cmd
}

// bench runs the benchmark and renders or stores its report.
func (c *CLI) bench(ctx context.Context, cfg BenchConfig) error {
	logger := loggerFromContext(ctx)
	collector := metrics.New(appName, false)

	prog := newProgress(logger)
	report, err := runBench(ctx, cfg, collector)
	if err != nil {
		return err
	}
	prog.done("Benchmark finished")

	if cfg.Format == "json" {
		if err := report.encode(c.out); err != nil {
			return err
		}
	} else {
		printBench(c.out, report)
	}
	if cfg.Report != "" {
		if err := report.writeFile(cfg.Report); err != nil {
			return err
		}
		printFile(c.out, cfg.Report)
	}
	if cfg.MetricsOut != "" {
		if err := collector.WriteFile(cfg.MetricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		printFile(c.out, cfg.MetricsOut)
	}

	return ctx.Err()
}

// benchCase is one generated scenario shared by every engine of a round.
type benchCase struct {
	cities int
	round  int
	seed   int64
	in     *tsp.Instance

	// optimum is computed at most once, by whichever run asks first.
	optimum func() (tsp.Result, error)
}

func newBenchCase(ctx context.Context, n, round int, seed int64, d scenario.Difficulty) (*benchCase, error) {
	sc, err := scenario.Generate(n, d, seed)
	if err != nil {
		return nil, err
	}
	in, err := sc.Instance()
	if err != nil {
		return nil, err
	}
	bc := &benchCase{cities: n, round: round, seed: seed, in: in}
	bc.optimum = sync.OnceValues(func() (tsp.Result, error) {
		opts := tsp.DefaultOptions()
		opts.Algo = tsp.AlgoHeldKarp
		opts.TimeLimit = 0
		return tsp.HeldKarp(ctx, in, opts)
	})

	return bc, nil
}

// roundSeed derives the scenario seed of (cities, round) from the base seed.
func roundSeed(base int64, cities, round int) int64 {
	return tsp.DeriveSeed(base, uint64(cities)<<32|uint64(round))
}

// runBench executes every (city count, round, engine) run on a bounded
// pool and aggregates the results. Run errors are joined; runs cut short by
// ctx still contribute their incumbents.
func runBench(ctx context.Context, cfg BenchConfig, collector *metrics.Collector) (*Report, error) {
	logger := loggerFromContext(ctx)
	start := time.Now()

	diff, err := scenario.ParseDifficulty(cfg.Difficulty)
	if err != nil {
		return nil, err
	}
	algos := make([]tsp.Algorithm, 0, len(cfg.Algos))
	for _, name := range cfg.Algos {
		a, err := tsp.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(algos, a) {
			algos = append(algos, a)
		}
	}

	report := newReport(cfg)
	p := pool.NewWithResults[RoundResult]().
		WithContext(ctx).
		WithMaxGoroutines(cfg.Workers)

	for _, n := range cfg.cityCounts() {
		for round := range cfg.Rounds {
			bc, err := newBenchCase(ctx, n, round, roundSeed(cfg.Seed, n, round), diff)
			if err != nil {
				return nil, fmt.Errorf("scenario %d cities round %d: %w", n, round, err)
			}
			for _, algo := range algos {
				if algo == tsp.AlgoHeldKarp && n > tsp.MaxHeldKarpCities {
					logger.Debug("Skipping exact engine", "cities", n)
					continue
				}
				p.Go(func(ctx context.Context) (RoundResult, error) {
					return benchRun(ctx, bc, algo, cfg.TimeLimit, collector)
				})
			}
		}
	}

	runs, err := p.Wait()
	if err != nil {
		return nil, err
	}
	order := func(a tsp.Algorithm) int { return slices.Index(algos, a) }
	slices.SortFunc(runs, func(a, b RoundResult) int {
		if c := cmp.Compare(a.Cities, b.Cities); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Round, b.Round); c != 0 {
			return c
		}
		ia, _ := tsp.ParseAlgorithm(a.Algo)
		ib, _ := tsp.ParseAlgorithm(b.Algo)
		return cmp.Compare(order(ia), order(ib))
	})

	report.Runs = runs
	report.Summaries = summarize(runs, algos)
	for _, r := range runs {
		if !r.Found {
			report.Unsolved++
		}
	}
	report.Elapsed = time.Since(start).Round(time.Millisecond).String()

	return report, nil
}

// benchRun solves one case with one engine.
func benchRun(ctx context.Context, bc *benchCase, algo tsp.Algorithm, limit time.Duration, collector *metrics.Collector) (RoundResult, error) {
	engine := algo.String()
	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.TimeLimit = limit
	opts.Seed = bc.seed
	opts.Instrumenter = collector.Instrumenter(engine)

	res, err := tsp.Solve(ctx, bc.in, opts)
	if err != nil {
		return RoundResult{}, fmt.Errorf("%s on %d cities round %d: %w", engine, bc.cities, bc.round, err)
	}
	collector.ObserveResult(engine, res)

	rr := RoundResult{
		Algo:      engine,
		Cities:    bc.cities,
		Round:     bc.round,
		Seed:      bc.seed,
		Found:     res.Found(),
		Seconds:   res.Elapsed.Seconds(),
		Solutions: res.Solutions,
		Tour:      res.Tour,
	}
	if rr.Found {
		rr.Cost = res.Cost
	}
	if s := res.Search; s != nil {
		rr.Created = s.StatesCreated
		rr.Pruned = s.StatesPruned
		rr.Frontier = s.MaxFrontier
	}
	if rr.Found && bc.cities <= tsp.MaxHeldKarpCities {
		opt, err := bc.optimum()
		if err == nil && opt.Found() {
			v := opt.Cost
			rr.Optimum = &v
		}
	}

	return rr, nil
}

// gapPercent is how far cost lies above the optimum, in percent.
func gapPercent(cost, optimum float64) float64 {
	if optimum == 0 {
		return 0
	}
	return (cost - optimum) / optimum * 100
}

// summarize averages runs per (engine, city count) in engine order.
func summarize(runs []RoundResult, algos []tsp.Algorithm) []Summary {
	type key struct {
		algo   string
		cities int
	}
	acc := make(map[key]*Summary)
	var keys []key
	gaps := make(map[key]int)

	for _, r := range runs {
		k := key{r.Algo, r.Cities}
		s, ok := acc[k]
		if !ok {
			s = &Summary{Algo: r.Algo, Cities: r.Cities}
			acc[k] = s
			keys = append(keys, k)
		}
		s.Rounds++
		s.AvgSeconds += r.Seconds
		s.AvgCreated += float64(r.Created)
		s.AvgPruned += float64(r.Pruned)
		s.AvgFrontier += float64(r.Frontier)
		if !r.Found {
			continue
		}
		s.Feasible++
		s.AvgCost += r.Cost
		s.AvgSolutions += float64(r.Solutions)
		if r.Optimum != nil {
			s.AvgGapPercent += gapPercent(r.Cost, *r.Optimum)
			gaps[k]++
		}
	}

	out := make([]Summary, 0, len(keys))
	for _, k := range keys {
		s := acc[k]
		rounds := float64(s.Rounds)
		s.AvgSeconds /= rounds
		s.AvgCreated /= rounds
		s.AvgPruned /= rounds
		s.AvgFrontier /= rounds
		if s.Feasible > 0 {
			s.AvgCost /= float64(s.Feasible)
			s.AvgSolutions /= float64(s.Feasible)
		}
		if g := gaps[k]; g > 0 {
			s.AvgGapPercent /= float64(g)
			s.HasGap = true
		}
		out = append(out, *s)
	}
	order := func(name string) int {
		a, _ := tsp.ParseAlgorithm(name)
		return slices.Index(algos, a)
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := cmp.Compare(a.Cities, b.Cities); c != 0 {
			return c
		}
		return cmp.Compare(order(a.Algo), order(b.Algo))
	})

	return out
}

func avgCost(s Summary) string {
	if s.Feasible == 0 {
		return "none"
	}
	return formatFloat(s.AvgCost)
}

func printBench(w io.Writer, r *Report) {
	printInfo(w, "run %s on %s (%s)", r.RunID, r.System.Platform, r.System.CPU)
	headers := []string{"cities", "engine", "rounds", "feasible", "avg cost", "avg time", "solutions", "gap %"}
	rows := make([][]string, 0, len(r.Summaries))
	for _, s := range r.Summaries {
		gap := "-"
		if s.HasGap {
			gap = formatFloat(s.AvgGapPercent)
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Cities),
			s.Algo,
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.Feasible),
			avgCost(s),
			formatFloat(s.AvgSeconds) + "s",
			formatFloat(s.AvgSolutions),
			gap,
		})
	}
	fmt.Fprintln(w, renderTable(headers, rows))
	if r.Unsolved > 0 {
		printWarning(w, "%d runs found no tour", r.Unsolved)
	} else {
		printSuccess(w, "%s runs, all solved in %s", formatNumber(len(r.Runs)), r.Elapsed)
	}
}
