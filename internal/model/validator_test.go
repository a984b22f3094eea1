package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func labSnapshot() Snapshot {
	return Snapshot{
		Faculty: map[uint64]Faculty{
			1: {Id: 1, Name: "Dr. Geeitha", Availability: fullWeek()},
			2: {Id: 2, Name: "Ms. Anitha", Availability: fullWeek()},
		},
		Courses: map[uint64]Course{
			1: {Id: 1, Code: "IT301", Name: "ML Lab", Kind: KindLab, FacultyIds: []uint64{1, 2}},
			2: {Id: 2, Code: "IT302", Name: "OS", Kind: KindTheory, FacultyIds: []uint64{2}},
		},
	}
}

func TestVerifyGrid(t *testing.T) {
	snapshot := labSnapshot()
	labLabel := "IT301 | Dr. Geeitha & Ms. Anitha"

	t.Run("Valid grid passes", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][1] = labLabel
		grid["Monday"][2] = labLabel
		grid["Tuesday"][4] = "IT302 | Ms. Anitha"

		// Assert
		assert.True(t, verifyGrid(grid, snapshot))
	})

	t.Run("Empty grid passes", func(t *testing.T) {
		assert.True(t, verifyGrid(NewGrid(), snapshot))
	})

	t.Run("Lab straddling a break fails", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][2] = labLabel
		grid["Monday"][3] = labLabel

		// Assert
		assert.False(t, verifyGrid(grid, snapshot))
	})

	t.Run("Lab split into one period fails", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][1] = labLabel

		// Assert
		assert.False(t, verifyGrid(grid, snapshot))
	})

	t.Run("Course placed twice fails", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][4] = "IT302 | Ms. Anitha"
		grid["Friday"][4] = "IT302 | Ms. Anitha"

		// Assert
		assert.False(t, verifyGrid(grid, snapshot))
	})

	t.Run("Unknown course code fails", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][1] = "XX999 | Nobody"

		// Assert
		assert.False(t, verifyGrid(grid, snapshot))
	})

	t.Run("Malformed label fails", func(t *testing.T) {
		// Arrange
		grid := NewGrid()
		grid["Monday"][1] = "IT302"

		// Assert
		assert.False(t, verifyGrid(grid, snapshot))
	})

	t.Run("Unavailable faculty fails", func(t *testing.T) {
		// Arrange
		constrained := labSnapshot()
		constrained.Faculty[2] = Faculty{Id: 2, Name: "Ms. Anitha", Availability: map[Day][]int{"Monday": {1}}}
		grid := NewGrid()
		grid["Tuesday"][4] = "IT302 | Ms. Anitha"

		// Assert
		assert.False(t, verifyGrid(grid, constrained))
	})
}

func TestMaterializedFaithfully(t *testing.T) {
	// Arrange
	snapshot := labSnapshot()
	variables, err := buildVariables(snapshot, Scope{})
	assert.Nil(t, err)
	solution := []Slot{
		{Day: "Monday", Start: 1, End: 2},
		{Day: "Tuesday", Start: 4, End: 4},
	}
	grid := materialize(snapshot, variables, solution)

	// Assert
	assert.True(t, materializedFaithfully(grid, snapshot, variables, solution))

	// A clobbered cell must be detected.
	grid["Monday"][2] = "IT302 | Ms. Anitha"
	assert.False(t, materializedFaithfully(grid, snapshot, variables, solution))
}
