// Package tsp - search instrumentation.
//
// Every engine owns a private Counters for the Result it returns and, when
// Options.Instrumenter is set, forwards each update to it as well. Sinks are
// called from the engine goroutine only.

package tsp

// Instrumenter receives search counters as they change.
// Implementations must tolerate being called many times per millisecond.
type Instrumenter interface {
	// RecordFrontier samples the current frontier size; sinks keep the max.
	RecordFrontier(size int)
	// AddCreated adds n to the states-created counter.
	AddCreated(n int)
	// AddPruned adds n to the states-pruned counter.
	AddPruned(n int)
	// AddSolutions adds n to the solutions-found counter.
	AddSolutions(n int)
}

// Counters is the in-memory Instrumenter. The zero value is ready to use.
type Counters struct {
	MaxFrontier   int
	StatesCreated int
	StatesPruned  int
	Solutions     int
}

var _ Instrumenter = (*Counters)(nil)

// RecordFrontier keeps the monotone maximum of observed frontier sizes.
func (c *Counters) RecordFrontier(size int) {
	if size > c.MaxFrontier {
		c.MaxFrontier = size
	}
}

func (c *Counters) AddCreated(n int)   { c.StatesCreated += n }
func (c *Counters) AddPruned(n int)    { c.StatesPruned += n }
func (c *Counters) AddSolutions(n int) { c.Solutions += n }

// Stats converts the frontier counters into a SearchStats value.
func (c *Counters) Stats() *SearchStats {
	return &SearchStats{
		MaxFrontier:   c.MaxFrontier,
		StatesCreated: c.StatesCreated,
		StatesPruned:  c.StatesPruned,
	}
}

// tee fans every update out to the engine's own counters and an optional sink.
type tee struct {
	own  *Counters
	sink Instrumenter
}

func newTee(sink Instrumenter) *tee { return &tee{own: &Counters{}, sink: sink} }

func (t *tee) RecordFrontier(size int) {
	t.own.RecordFrontier(size)
	if t.sink != nil {
		t.sink.RecordFrontier(size)
	}
}

func (t *tee) AddCreated(n int) {
	t.own.AddCreated(n)
	if t.sink != nil {
		t.sink.AddCreated(n)
	}
}

func (t *tee) AddPruned(n int) {
	t.own.AddPruned(n)
	if t.sink != nil {
		t.sink.AddPruned(n)
	}
}

func (t *tee) AddSolutions(n int) {
	t.own.AddSolutions(n)
	if t.sink != nil {
		t.sink.AddSolutions(n)
	}
}
