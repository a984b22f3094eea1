package model

import (
	"context"
	"time"

	"github.com/mkce-it/timetabler/internal/logger"
)

// Outcome classifies how one solve call terminated.
type Outcome int

const (
	// OutcomeSolved means a complete, consistent assignment was found.
	OutcomeSolved Outcome = iota
	// OutcomeInfeasible means the search space was exhausted; a legitimate
	// outcome, not an error.
	OutcomeInfeasible
	// OutcomeTimeout means the node budget or the caller's deadline expired
	// before the search could decide; retrying with a larger budget may
	// still find a solution.
	OutcomeTimeout
)

func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeSolved:
		return "solved"
	case OutcomeInfeasible:
		return "infeasible"
	case OutcomeTimeout:
		return "timeout"
	}
	return "unknown"
}

// Result is the outcome of one solve call. Grid is nil unless Solved.
type Result struct {
	Outcome Outcome  `json:"outcome"`
	Grid    Grid     `json:"grid,omitempty"`
	Periods []Period `json:"periods,omitempty"`
	Message string   `json:"message"`
	Nodes   uint64   `json:"nodes"`
}

// Solved reports whether the result carries a complete grid.
func (result Result) Solved() bool {
	return result.Outcome == OutcomeSolved
}

// MetricsSink receives one record per finished solve call.
type MetricsSink interface {
	RecordSolve(outcome string, duration time.Duration, nodes uint64)
}

// Config controls search limits and instrumentation of a Timetabler.
type Config struct {
	// NodeBudget bounds the number of search nodes; 0 means unlimited.
	NodeBudget uint64
	// Candidates is how many complete solutions to collect before ranking
	// them by day preference; values below 1 behave as 1.
	Candidates int
	Logger     logger.Logger
	Metrics    MetricsSink
}

// Timetabler builds a weekly timetable for one section from an immutable
// snapshot of faculty, course and constraint records. Implementations hold no
// state across calls; concurrent independent solves are safe.
type Timetabler interface {
	// Build finds an assignment of every scoped course to a day/period slot
	// satisfying faculty availability, faculty exclusivity and lab block
	// contiguity. Infeasibility and budget exhaustion are reported through
	// the Result outcome; only malformed input or an internal defect return
	// an error.
	Build(ctx context.Context, snapshot Snapshot, scope Scope) (Result, error)

	// Verify independently re-checks a materialized grid against the same
	// constraints. Test and debug aid, not part of the solve path.
	Verify(grid Grid, snapshot Snapshot) bool
}

// NewTimetabler returns the backtracking-with-forward-checking implementation.
func NewTimetabler(config Config) Timetabler {
	return newBacktrackingTimetabler(config)
}
