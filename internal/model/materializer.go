package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Grid is the display form of a solved timetable: day to period to label.
// Cells without a session hold the empty string.
type Grid map[Day]map[int]string

// NewGrid returns a grid with every assignable cell initialized to empty.
func NewGrid() Grid {
	grid := make(Grid, len(Days))
	for _, day := range Days {
		grid[day] = make(map[int]string, len(Periods))
		for _, period := range Periods {
			grid[day][period.Number] = ""
		}
	}
	return grid
}

// sessionLabel formats "<course code> | <faculty name 1> & <faculty name 2>".
func sessionLabel(snapshot Snapshot, course Course) string {
	names := lo.Map(course.FacultyIds, func(facultyId uint64, _ int) string {
		return snapshot.Faculty[facultyId].Name
	})
	return fmt.Sprintf("%v | %v", course.Code, strings.Join(names, " & "))
}

// materialize writes every bound variable into the grid: the label fills every
// period cell of the assigned range on the assigned day.
func materialize(snapshot Snapshot, variables []*schedulingVariable, solution []Slot) Grid {
	grid := NewGrid()
	for i, variable := range variables {
		slot := solution[i]
		label := sessionLabel(snapshot, variable.course)
		for period := slot.Start; period <= slot.End; period++ {
			grid[slot.Day][period] = label
		}
	}
	return grid
}

// Render formats the grid as a fixed-width text table with the period time
// ranges as header and the break times as footer.
func (grid Grid) Render() string {
	const cellWidth = 28

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%-12v", "Day"))
	for _, period := range Periods {
		header := fmt.Sprintf("P%v (%v-%v)", period.Number, period.Start, period.End)
		builder.WriteString(fmt.Sprintf("%-*v", cellWidth, header))
	}
	builder.WriteString("\n")

	for _, day := range Days {
		builder.WriteString(fmt.Sprintf("%-12v", day))
		for _, period := range Periods {
			builder.WriteString(fmt.Sprintf("%-*v", cellWidth, grid[day][period.Number]))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("\nBreaks: ")
	times := lo.Map(Breaks, func(gap Period, _ int) string {
		return fmt.Sprintf("%v-%v", gap.Start, gap.End)
	})
	builder.WriteString(strings.Join(times, ", "))
	builder.WriteString("\n")

	return builder.String()
}
