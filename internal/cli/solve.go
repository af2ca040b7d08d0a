package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbound/metrics"
	"github.com/katalvlaran/tourbound/scenario"
	"github.com/katalvlaran/tourbound/tsp"
)

// solveOutput is the JSON shape of a solve run. Cost is nil when no tour
// exists, since JSON has no infinity.
type solveOutput struct {
	Algo         string   `json:"algo"`
	Cities       int      `json:"cities"`
	Difficulty   string   `json:"difficulty"`
	Seed         int64    `json:"seed"`
	RemovedEdges int      `json:"removed_edges"`
	Found        bool     `json:"found"`
	Tour         []int    `json:"tour"`
	Cost         *float64 `json:"cost"`
	Seconds      float64  `json:"seconds"`
	Solutions    int      `json:"solutions"`

	Search *tsp.SearchStats `json:"search,omitempty"`
}

func (c *CLI) solveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate a scenario and solve it",
		Long: `Generate a random scenario of --cities cities and solve it with one engine.

Normal and hard scenarios remove a fifth of the roads; hard ones also charge
for climbing. The run stops at --time-limit and reports the best tour so far.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fc, err := c.loadConfig(cmd, "solve")
			if err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), fc.Solve)
		},
	}

	f := cmd.Flags()
	f.Int("cities", 10, "number of cities (0-500)")
	f.String("difficulty", scenario.Normal.String(), "scenario difficulty: easy, normal, hard")
	f.Int64("seed", 1, "scenario seed")
	f.String("algo", tsp.AlgoBranchAndBound.String(), "engine: branch-and-bound, greedy, tabu, random, held-karp")
	f.Int("start", 0, "start city")
	f.Duration("time-limit", tsp.DefaultTimeLimit, "wall-clock budget (0 = unlimited)")
	f.Int("tabu-tenure", tsp.DefaultTabuTenure, "tabu list capacity")
	f.Int("tabu-neighborhood", tsp.DefaultTabuNeighborhood, "base width of the tabu swap window")
	f.String("format", "text", "output format: text or json")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address while solving")
	f.String("scenario", "", "load the scenario from a TOML file instead of generating one")
	f.String("save", "", "write the scenario to a TOML file before solving")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, cfg SolveConfig) error {
	logger := loggerFromContext(ctx)

	opts, err := cfg.options()
	if err != nil {
		return err
	}
	sc, err := loadScenario(cfg)
	if err != nil {
		return err
	}
	if cfg.Save != "" {
		if err = saveScenario(sc, cfg.Save); err != nil {
			return err
		}
		if cfg.Format != "json" {
			printFile(c.out, cfg.Save)
		}
	}
	diff := sc.Difficulty()
	in, err := sc.Instance()
	if err != nil {
		return fmt.Errorf("build instance: %w", err)
	}

	collector := metrics.New(appName, cfg.MetricsAddr != "")
	if cfg.MetricsAddr != "" {
		stop := collector.Expose(cfg.MetricsAddr, logger)
		defer stop()
		logger.Info("Serving metrics", "addr", cfg.MetricsAddr)
	}
	engine := opts.Algo.String()
	opts.Instrumenter = collector.Instrumenter(engine)
	opts.Logger = logger

	logger.Info("Solving", "algo", engine, "cities", sc.Len(), "difficulty", diff, "removed", sc.RemovedEdges())
	prog := newProgress(logger)
	res, err := tsp.Solve(ctx, in, opts)
	if err != nil {
		return err
	}
	collector.ObserveResult(engine, res)
	prog.done("Search finished")

	out := solveOutput{
		Algo:         engine,
		Cities:       sc.Len(),
		Difficulty:   diff.String(),
		Seed:         sc.Seed(),
		RemovedEdges: sc.RemovedEdges(),
		Found:        res.Found(),
		Tour:         res.Tour,
		Seconds:      res.Elapsed.Seconds(),
		Solutions:    res.Solutions,
		Search:       res.Search,
	}
	if out.Found {
		cost := res.Cost
		out.Cost = &cost
	}

	if cfg.Format == "json" {
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
	} else {
		printSolve(c.out, out)
	}

	// An interrupted run still prints its incumbent before reporting.
	return ctx.Err()
}

// loadScenario reads --scenario when set and generates one otherwise.
func loadScenario(cfg SolveConfig) (*scenario.Scenario, error) {
	if cfg.Scenario == "" {
		diff, err := scenario.ParseDifficulty(cfg.Difficulty)
		if err != nil {
			return nil, err
		}
		sc, err := scenario.Generate(cfg.Cities, diff, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("generate scenario: %w", err)
		}
		return sc, nil
	}

	f, err := os.Open(cfg.Scenario)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	return scenario.Decode(f)
}

func saveScenario(sc *scenario.Scenario, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scenario: %w", err)
	}
	if err = sc.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSolve(w io.Writer, out solveOutput) {
	printTitle(w, "Tour")
	printKeyValue(w, "engine", out.Algo)
	printKeyValue(w, "cities", strconv.Itoa(out.Cities))
	printKeyValue(w, "difficulty", out.Difficulty)
	printKeyValue(w, "removed", strconv.Itoa(out.RemovedEdges))
	if !out.Found {
		printWarning(w, "no feasible tour found")
	} else {
		printKeyValue(w, "cost", formatCost(*out.Cost, true))
		printKeyValue(w, "tour", tsp.FormatTour(out.Tour))
	}
	printKeyValue(w, "elapsed", strconv.FormatFloat(out.Seconds, 'f', 3, 64)+"s")
	printKeyValue(w, "solutions", strconv.Itoa(out.Solutions))
	if s := out.Search; s != nil {
		printKeyValue(w, "created", strconv.Itoa(s.StatesCreated))
		printKeyValue(w, "pruned", strconv.Itoa(s.StatesPruned))
		printKeyValue(w, "max frontier", strconv.Itoa(s.MaxFrontier))
	}
}
