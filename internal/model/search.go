package model

import "context"

// prune records one candidate removed by forward checking so it can be
// restored on backtrack.
type prune struct {
	variable  int
	candidate int
}

// searchState drives one backtracking-with-forward-checking search. It is
// created per solve call and never shared.
type searchState struct {
	ctx       context.Context
	variables []*schedulingVariable
	order     []int
	budget    uint64 // 0 means unlimited
	limit     int    // complete solutions to collect

	nodes     uint64
	aborted   bool
	solutions [][]Slot
}

// run searches for up to limit complete assignments satisfying every hard
// constraint. Collected solutions are complete copies; the variables are left
// unbound afterwards.
func (state *searchState) run() {
	state.search(0)
}

func (state *searchState) search(depth int) bool {
	if depth == len(state.order) {
		state.record()
		return len(state.solutions) >= state.limit
	}

	variable := state.variables[state.order[depth]]
	for candidate, slot := range variable.domain {
		if !variable.alive[candidate] {
			continue
		}

		state.nodes++
		if state.exhausted() {
			state.aborted = true
			return true
		}

		if state.clashes(state.order[depth], slot) {
			continue
		}

		variable.assigned = candidate
		pruned, wiped := state.forwardCheck(state.order[depth], slot)
		stop := false
		if !wiped {
			stop = state.search(depth + 1)
		}
		state.undo(pruned)
		variable.assigned = -1
		if stop {
			return true
		}
	}

	return false
}

// exhausted reports whether the node budget or the caller's deadline has been
// exceeded.
func (state *searchState) exhausted() bool {
	if state.budget > 0 && state.nodes > state.budget {
		return true
	}
	return state.ctx.Err() != nil
}

// clashes checks the tentative slot against every already-bound variable
// sharing faculty with the current one.
func (state *searchState) clashes(index int, slot Slot) bool {
	for _, neighbor := range state.variables[index].neighbors {
		other := state.variables[neighbor]
		if other.bound() && slot.Overlaps(other.domain[other.assigned]) {
			return true
		}
	}
	return false
}

// forwardCheck removes now-incompatible candidates from unbound neighbors of
// the just-bound variable. It reports the pruned candidates for undo and
// whether some neighbor's domain was wiped out.
func (state *searchState) forwardCheck(index int, slot Slot) ([]prune, bool) {
	pruned := []prune{}
	for _, neighbor := range state.variables[index].neighbors {
		other := state.variables[neighbor]
		if other.bound() {
			continue
		}
		for candidate, otherSlot := range other.domain {
			if other.alive[candidate] && slot.Overlaps(otherSlot) {
				other.alive[candidate] = false
				other.aliveCount--
				pruned = append(pruned, prune{variable: neighbor, candidate: candidate})
			}
		}
		if other.aliveCount == 0 {
			return pruned, true
		}
	}
	return pruned, false
}

// undo restores candidates pruned by one forward-checking pass.
func (state *searchState) undo(pruned []prune) {
	for _, p := range pruned {
		variable := state.variables[p.variable]
		variable.alive[p.candidate] = true
		variable.aliveCount++
	}
}

// record copies the current complete assignment, slot per variable index.
func (state *searchState) record() {
	solution := make([]Slot, len(state.variables))
	for i, variable := range state.variables {
		solution[i] = variable.domain[variable.assigned]
	}
	state.solutions = append(state.solutions, solution)
}
