package model

import (
	"slices"

	"github.com/samber/lo"
)

// schedulingVariable is one course requirement to be placed. Its domain is the
// ordered sequence of candidate slots still viable; alive tracks which of them
// survive propagation so pruning stays reversible on backtrack.
type schedulingVariable struct {
	course     Course
	domain     []Slot
	alive      []bool
	aliveCount int
	assigned   int // index into domain, -1 while unbound
	neighbors  []int
}

func (variable *schedulingVariable) bound() bool {
	return variable.assigned >= 0
}

// buildVariables validates the scoped courses against the snapshot and emits
// one variable per course id with its raw candidate domain. Unknown ids,
// unstaffed courses and impossible block sizes fail fast here; they are input
// defects, not infeasibility.
func buildVariables(snapshot Snapshot, scope Scope) ([]*schedulingVariable, error) {
	courseIds := lo.Uniq(scope.CourseIds)
	if len(courseIds) == 0 {
		courseIds = lo.Keys(snapshot.Courses)
	}
	slices.Sort(courseIds)

	variables := make([]*schedulingVariable, 0, len(courseIds))
	for _, courseId := range courseIds {
		course, ok := snapshot.Courses[courseId]
		if !ok {
			return nil, UnknownCourseError{CourseId: courseId}
		}
		if len(course.FacultyIds) == 0 {
			return nil, UnstaffedCourseError{CourseId: courseId}
		}
		for _, facultyId := range course.FacultyIds {
			if _, ok := snapshot.Faculty[facultyId]; !ok {
				return nil, UnknownFacultyError{CourseId: courseId, FacultyId: facultyId}
			}
		}

		domain := candidateSlots(course.EffectiveBlockSize())
		if len(domain) == 0 {
			return nil, UnschedulableCourseError{CourseId: courseId, BlockSize: course.EffectiveBlockSize()}
		}

		variables = append(variables, &schedulingVariable{
			course:   course,
			domain:   domain,
			assigned: -1,
		})
	}

	return variables, nil
}

// activate initializes the propagation bookkeeping once domains are final.
func activate(variables []*schedulingVariable) {
	for _, variable := range variables {
		variable.alive = make([]bool, len(variable.domain))
		for i := range variable.alive {
			variable.alive[i] = true
		}
		variable.aliveCount = len(variable.domain)
	}
}

// searchOrder returns variable indices most-constrained-first: ascending
// domain size, ties broken by course id. The order is deterministic for
// identical input, which makes the first solution reproducible.
func searchOrder(variables []*schedulingVariable) []int {
	order := lo.RangeFrom(0, len(variables))
	slices.SortStableFunc(order, func(a, b int) int {
		if diff := variables[a].aliveCount - variables[b].aliveCount; diff != 0 {
			return diff
		}
		if variables[a].course.Id < variables[b].course.Id {
			return -1
		}
		return 1
	})
	return order
}
