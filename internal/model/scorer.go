package model

import "github.com/samber/lo"

// preferenceScorer ranks complete assignments by how many courses land on one
// of their preferred days. It is applied only to choose among independently
// found feasible solutions and never rejects one.
type preferenceScorer struct {
	preferred map[uint64][]Day
}

func newPreferenceScorer(preferences map[uint64]Preference) preferenceScorer {
	preferred := make(map[uint64][]Day)
	for _, preference := range preferences {
		if len(preference.PreferredDays) > 0 {
			preferred[preference.CourseId] = preference.PreferredDays
		}
	}
	return preferenceScorer{preferred: preferred}
}

// Score counts the bound variables whose assigned day lies in the course's
// preferred set.
func (scorer preferenceScorer) Score(variables []*schedulingVariable, solution []Slot) int {
	score := 0
	for i, variable := range variables {
		if lo.Contains(scorer.preferred[variable.course.Id], solution[i].Day) {
			score++
		}
	}
	return score
}

// best returns the index of the highest-scoring solution. Ties resolve to the
// earliest-found solution, which keeps the engine deterministic.
func (scorer preferenceScorer) best(variables []*schedulingVariable, solutions [][]Slot) int {
	bestIndex, bestScore := 0, -1
	for i, solution := range solutions {
		if score := scorer.Score(variables, solution); score > bestScore {
			bestIndex, bestScore = i, score
		}
	}
	return bestIndex
}
