package model

import "strings"

// verifyGrid independently re-checks a materialized grid against the same
// snapshot the engine solved from. It re-derives, from the grid alone, that
// every label resolves to a known course, that each scheduled course occupies
// exactly one contiguous block of its required size without straddling a
// break, and that every required faculty is available for every occupied
// cell. Used by tests and as a defensive post-solve check.
func verifyGrid(grid Grid, snapshot Snapshot) bool {
	coursesByCode := make(map[string]Course, len(snapshot.Courses))
	for _, course := range snapshot.Courses {
		coursesByCode[course.Code] = course
	}

	placements := make(map[string][]Slot)

	for _, day := range Days {
		var runLabel string
		var run Slot

		flush := func() bool {
			if runLabel == "" {
				return true
			}
			code, _, found := strings.Cut(runLabel, " | ")
			if !found {
				return false
			}
			if _, ok := coursesByCode[code]; !ok {
				return false
			}
			placements[code] = append(placements[code], run)
			runLabel = ""
			return true
		}

		for _, period := range Periods {
			label := grid[day][period.Number]
			if label == runLabel && label != "" {
				run.End = period.Number
				continue
			}
			if !flush() {
				return false
			}
			if label != "" {
				runLabel = label
				run = Slot{Day: day, Start: period.Number, End: period.Number}
			}
		}
		if !flush() {
			return false
		}
	}

	return placementsValid(placements, coursesByCode, snapshot)
}

func placementsValid(placements map[string][]Slot, coursesByCode map[string]Course, snapshot Snapshot) bool {
	for code, runs := range placements {
		course := coursesByCode[code]

		// One placement per course, of exactly the required width, on
		// contiguous non-break-crossing periods.
		if len(runs) != 1 {
			return false
		}
		slot := runs[0]
		if slot.Width() != course.EffectiveBlockSize() || slot.StraddlesBreak() {
			return false
		}
		if slot.Start < FirstPeriod || slot.End > LastPeriod {
			return false
		}

		if !facultyAvailable(snapshot, course, slot) {
			return false
		}
	}

	return true
}

// materializedFaithfully checks that every bound variable's label survived in
// full on the grid. An overwritten cell would mean two variables clashed, a
// defect the grid alone cannot reveal.
func materializedFaithfully(grid Grid, snapshot Snapshot, variables []*schedulingVariable, solution []Slot) bool {
	for i, variable := range variables {
		label := sessionLabel(snapshot, variable.course)
		slot := solution[i]
		for period := slot.Start; period <= slot.End; period++ {
			if grid[slot.Day][period] != label {
				return false
			}
		}
	}
	return true
}
