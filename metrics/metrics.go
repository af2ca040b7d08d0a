// Package metrics exports search counters through Prometheus.
//
// A Collector owns a private registry. Each engine run gets its own
// Instrumenter labelled with the engine name; counters accumulate across
// runs, while the frontier gauge keeps the largest size seen.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/tourbound/tsp"
)

// Collector groups the solver metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	mu       sync.Mutex
	frontier map[string]int // engine → largest frontier reported

	StatesCreated *prometheus.CounterVec
	StatesPruned  *prometheus.CounterVec
	Solutions     *prometheus.CounterVec
	MaxFrontier   *prometheus.GaugeVec
	Runs          *prometheus.CounterVec   // engine, outcome
	Duration      *prometheus.HistogramVec // engine
	TourCost      *prometheus.GaugeVec     // engine; last found tour
}

// New builds a Collector whose metric names start with namespace.
// withRuntime also registers the Go runtime and process collectors.
func New(namespace string, withRuntime bool) *Collector {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	c := &Collector{registry: reg, frontier: make(map[string]int)}

	c.StatesCreated = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "states_created_total",
		Help:      "Search states created.",
	}, []string{"engine"})
	c.StatesPruned = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "states_pruned_total",
		Help:      "Search states discarded without expansion.",
	}, []string{"engine"})
	c.Solutions = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "solutions_total",
		Help:      "Improving solutions found.",
	}, []string{"engine"})
	c.MaxFrontier = c.newGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "max_frontier",
		Help:      "Largest frontier observed.",
	}, []string{"engine"})
	c.Runs = c.newCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Engine runs by outcome (found, none).",
	}, []string{"engine", "outcome"})
	c.Duration = c.newHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock time per engine run.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
	}, []string{"engine"})
	c.TourCost = c.newGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tour_cost",
		Help:      "Cost of the last tour found.",
	}, []string{"engine"})

	return c
}

func (c *Collector) newCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	cv := prometheus.NewCounterVec(opts, labels)
	c.registry.MustRegister(cv)
	return cv
}

func (c *Collector) newGaugeVec(opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	gv := prometheus.NewGaugeVec(opts, labels)
	c.registry.MustRegister(gv)
	return gv
}

func (c *Collector) newHistogramVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	hv := prometheus.NewHistogramVec(opts, labels)
	c.registry.MustRegister(hv)
	return hv
}

// Registry exposes the underlying registry (for tests and custom gathering).
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Instrumenter returns a tsp.Instrumenter that feeds this collector.
// Instrumenters of concurrent runs may share an engine label.
func (c *Collector) Instrumenter(engine string) tsp.Instrumenter {
	return &sink{
		c:         c,
		engine:    engine,
		created:   c.StatesCreated.WithLabelValues(engine),
		pruned:    c.StatesPruned.WithLabelValues(engine),
		solutions: c.Solutions.WithLabelValues(engine),
		frontier:  c.MaxFrontier.WithLabelValues(engine),
	}
}

// raiseFrontier moves the engine's frontier gauge up to size if larger.
func (c *Collector) raiseFrontier(engine string, size int, g prometheus.Gauge) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if size <= c.frontier[engine] {
		return
	}
	c.frontier[engine] = size
	g.Set(float64(size))
}

// ObserveResult records the outcome of one run.
func (c *Collector) ObserveResult(engine string, res tsp.Result) {
	outcome := "none"
	if res.Found() {
		outcome = "found"
		c.TourCost.WithLabelValues(engine).Set(res.Cost)
	}
	c.Runs.WithLabelValues(engine, outcome).Inc()
	c.Duration.WithLabelValues(engine).Observe(res.Elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// WriteFile writes the current metrics to path in the text format.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

// Expose serves /metrics on addr in the background. The returned function
// shuts the server down.
func (c *Collector) Expose(addr string, logger *log.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "addr", addr, "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("metrics server shutdown", "err", err)
		}
	}
}

// sink adapts the per-engine children to tsp.Instrumenter. local skips the
// collector lock for sizes this run has already reported.
type sink struct {
	c         *Collector
	engine    string
	created   prometheus.Counter
	pruned    prometheus.Counter
	solutions prometheus.Counter
	frontier  prometheus.Gauge
	local     int
}

func (s *sink) RecordFrontier(size int) {
	if size <= s.local {
		return
	}
	s.local = size
	s.c.raiseFrontier(s.engine, size, s.frontier)
}

func (s *sink) AddCreated(n int)   { s.created.Add(float64(n)) }
func (s *sink) AddPruned(n int)    { s.pruned.Add(float64(n)) }
func (s *sink) AddSolutions(n int) { s.solutions.Add(float64(n)) }
