package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Report is the JSON document written by bench --report.
type Report struct {
	RunID     string        `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   string        `json:"elapsed"`
	System    SysInfo       `json:"system"`
	Config    BenchConfig   `json:"config"`
	Summaries []Summary     `json:"summaries"`
	Runs      []RoundResult `json:"runs"`
	Unsolved  int           `json:"unsolved_runs"`
}

// Summary averages the rounds of one engine at one city count. Averages
// cover feasible rounds only.
type Summary struct {
	Algo          string  `json:"algo"`
	Cities        int     `json:"cities"`
	Rounds        int     `json:"rounds"`
	Feasible      int     `json:"feasible"`
	AvgCost       float64 `json:"avg_cost"`
	AvgSeconds    float64 `json:"avg_seconds"`
	AvgSolutions  float64 `json:"avg_solutions"`
	AvgCreated    float64 `json:"avg_states_created,omitempty"`
	AvgPruned     float64 `json:"avg_states_pruned,omitempty"`
	AvgFrontier   float64 `json:"avg_max_frontier,omitempty"`
	AvgGapPercent float64 `json:"avg_gap_percent,omitempty"`
	HasGap        bool    `json:"has_gap"`
}

// RoundResult is one engine run on one generated scenario.
type RoundResult struct {
	Algo      string   `json:"algo"`
	Cities    int      `json:"cities"`
	Round     int      `json:"round"`
	Seed      int64    `json:"seed"`
	Found     bool     `json:"found"`
	Cost      float64  `json:"cost,omitempty"`
	Optimum   *float64 `json:"optimum,omitempty"`
	Seconds   float64  `json:"seconds"`
	Solutions int      `json:"solutions"`
	Created   int      `json:"states_created,omitempty"`
	Pruned    int      `json:"states_pruned,omitempty"`
	Frontier  int      `json:"max_frontier,omitempty"`
	Tour      []int    `json:"tour,omitempty"`
}

// newReport stamps a fresh run identity.
func newReport(cfg BenchConfig) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		System:    collectSysInfo(),
		Config:    cfg,
	}
}

// encode writes r as indented JSON.
func (r *Report) encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// writeFile stores r at path.
func (r *Report) writeFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := r.encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
