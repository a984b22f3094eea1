package model

import "github.com/samber/lo"

// facultyAvailable is the unary hard constraint: a slot is valid for a course
// iff every required faculty is available on that day for every period of the
// slot's range.
func facultyAvailable(snapshot Snapshot, course Course, slot Slot) bool {
	for _, facultyId := range course.FacultyIds {
		faculty := snapshot.Faculty[facultyId]
		for period := slot.Start; period <= slot.End; period++ {
			if !faculty.Available(slot.Day, period) {
				return false
			}
		}
	}
	return true
}

// filterAvailability shrinks every variable's domain to the slots satisfying
// faculty availability. An emptied domain means the instance is infeasible
// before any search; the offending course id is reported.
func filterAvailability(snapshot Snapshot, variables []*schedulingVariable) (uint64, bool) {
	for _, variable := range variables {
		variable.domain = lo.Filter(variable.domain, func(slot Slot, _ int) bool {
			return facultyAvailable(snapshot, variable.course, slot)
		})
		if len(variable.domain) == 0 {
			return variable.course.Id, true
		}
	}
	return 0, false
}

// sharesFaculty reports whether two courses require at least one common
// faculty member. Only such pairs carry a no-clash constraint.
func sharesFaculty(a, b Course) bool {
	return lo.Some(a.FacultyIds, b.FacultyIds)
}

// linkNeighbors wires the binary no-clash edges: each variable records the
// indices of the variables it shares faculty with.
func linkNeighbors(variables []*schedulingVariable) {
	for i, variable := range variables {
		for j, other := range variables {
			if i != j && sharesFaculty(variable.course, other.course) {
				variable.neighbors = append(variable.neighbors, j)
			}
		}
	}
}
