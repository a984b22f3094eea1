package model

import (
	"context"
	"fmt"
	"time"

	"github.com/mkce-it/timetabler/internal/logger"
)

type backtrackingTimetabler struct {
	config Config
}

func newBacktrackingTimetabler(config Config) *backtrackingTimetabler {
	if config.Candidates < 1 {
		config.Candidates = 1
	}
	if config.Logger == nil {
		config.Logger = logger.NopLogger{}
	}
	return &backtrackingTimetabler{config: config}
}

func (timetabler *backtrackingTimetabler) Build(ctx context.Context, snapshot Snapshot, scope Scope) (result Result, err error) {
	started := time.Now()

	// The engine never lets a panic escape: a defect aborts this call only.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = InternalError{Reason: fmt.Sprintf("%v", recovered)}
			result = Result{Outcome: OutcomeInfeasible, Message: err.Error()}
		}
		if timetabler.config.Metrics != nil {
			outcome := "error"
			if err == nil {
				outcome = result.Outcome.String()
			}
			timetabler.config.Metrics.RecordSolve(outcome, time.Since(started), result.Nodes)
		}
	}()

	result, err = timetabler.build(ctx, snapshot, scope)
	return result, err
}

func (timetabler *backtrackingTimetabler) build(ctx context.Context, snapshot Snapshot, scope Scope) (Result, error) {
	log := timetabler.config.Logger

	variables, err := buildVariables(snapshot, scope)
	if err != nil {
		return Result{}, err
	}
	if len(variables) == 0 {
		return Result{
			Outcome: OutcomeInfeasible,
			Message: "no courses found for section",
		}, nil
	}

	if courseId, empty := filterAvailability(snapshot, variables); empty {
		return Result{
			Outcome: OutcomeInfeasible,
			Message: fmt.Sprintf("course %v has no slot satisfying faculty availability", courseId),
		}, nil
	}

	activate(variables)
	linkNeighbors(variables)

	if facultyId, overloaded, err := probeFaculty(variables); err != nil {
		return Result{}, InternalError{Reason: fmt.Sprintf("feasibility probe: %v", err)}
	} else if overloaded {
		return Result{
			Outcome: OutcomeInfeasible,
			Message: fmt.Sprintf("faculty %v cannot cover all required sessions", facultyId),
		}, nil
	}

	state := &searchState{
		ctx:       ctx,
		variables: variables,
		order:     searchOrder(variables),
		budget:    timetabler.config.NodeBudget,
		limit:     timetabler.config.Candidates,
	}

	log.Debugw("starting search", map[string]any{
		"section":    scope.Section,
		"variables":  len(variables),
		"candidates": state.limit,
		"budget":     state.budget,
	})
	state.run()

	if len(state.solutions) == 0 {
		if state.aborted {
			log.Warnf("search aborted after %v nodes for section %v", state.nodes, scope.Section)
			return Result{
				Outcome: OutcomeTimeout,
				Message: fmt.Sprintf("search aborted after %v nodes; retry with a larger budget", state.nodes),
				Nodes:   state.nodes,
			}, nil
		}
		return Result{
			Outcome: OutcomeInfeasible,
			Message: "no feasible solution found; check faculty availability and course requirements",
			Nodes:   state.nodes,
		}, nil
	}

	// A budget hit while collecting extra candidates still yields the best
	// solution found so far.
	scorer := newPreferenceScorer(snapshot.Preferences)
	solution := state.solutions[scorer.best(variables, state.solutions)]

	grid := materialize(snapshot, variables, solution)
	if !verifyGrid(grid, snapshot) || !materializedFaithfully(grid, snapshot, variables, solution) {
		return Result{}, InternalError{Reason: "materialized grid failed verification"}
	}

	log.Infof("timetable solved for section %q: %v courses, %v nodes, %v candidates", scope.Section, len(variables), state.nodes, len(state.solutions))
	return Result{
		Outcome: OutcomeSolved,
		Grid:    grid,
		Periods: Periods,
		Message: "timetable generated successfully",
		Nodes:   state.nodes,
	}, nil
}

func (timetabler *backtrackingTimetabler) Verify(grid Grid, snapshot Snapshot) bool {
	return verifyGrid(grid, snapshot)
}
