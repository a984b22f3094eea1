package model

import (
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// cell is one (day, period) position of a faculty's week.
type cell struct {
	day    Day
	period int
}

// probeFaculty runs a per-faculty maximum-matching feasibility check before
// search. Each variable requiring a faculty occupies blockSize distinct cells
// of that faculty's week in any real solution, and no two variables share a
// cell, so a matching between variable copies and reachable cells must cover
// every copy. A deficient matching proves infeasibility without search and
// reports the overloaded faculty id.
func probeFaculty(variables []*schedulingVariable) (uint64, bool, error) {
	perFaculty := make(map[uint64][]int)
	for i, variable := range variables {
		for _, facultyId := range variable.course.FacultyIds {
			perFaculty[facultyId] = append(perFaculty[facultyId], i)
		}
	}

	facultyIds := lo.Keys(perFaculty)
	slices.Sort(facultyIds)

	for _, facultyId := range facultyIds {
		indices := perFaculty[facultyId]
		if len(indices) < 2 {
			continue
		}

		type copyNode struct {
			variable int
			offset   int
		}

		left := []any{}
		for _, index := range indices {
			for offset := range variables[index].course.EffectiveBlockSize() {
				left = append(left, copyNode{variable: index, offset: offset})
			}
		}

		cellSet := make(map[cell]bool)
		for _, index := range indices {
			variable := variables[index]
			for candidate, slot := range variable.domain {
				if !variable.alive[candidate] {
					continue
				}
				for period := slot.Start; period <= slot.End; period++ {
					cellSet[cell{day: slot.Day, period: period}] = true
				}
			}
		}

		cells := lo.Keys(cellSet)
		slices.SortFunc(cells, func(a, b cell) int {
			if diff := dayIndex(a.day) - dayIndex(b.day); diff != 0 {
				return diff
			}
			return a.period - b.period
		})
		right := lo.Map(cells, func(c cell, _ int) any { return c })

		neighbors := func(leftAny any, rightAny any) (bool, error) {
			node := leftAny.(copyNode)
			c := rightAny.(cell)

			variable := variables[node.variable]
			for candidate, slot := range variable.domain {
				if variable.alive[candidate] && slot.Day == c.day && slot.Start+node.offset == c.period {
					return true, nil
				}
			}
			return false, nil
		}

		graph, err := bipartitegraph.NewBipartiteGraph(left, right, neighbors)
		if err != nil {
			return 0, false, err
		}

		if len(graph.LargestMatching()) < len(left) {
			return facultyId, true, nil
		}
	}

	return 0, false, nil
}
