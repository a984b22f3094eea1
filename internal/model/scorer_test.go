package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceScorer(t *testing.T) {
	// Arrange
	snapshot := labSnapshot()
	variables, err := buildVariables(snapshot, Scope{})
	assert.Nil(t, err)
	scorer := newPreferenceScorer(map[uint64]Preference{
		1: {CourseId: 1, PreferredDays: []Day{"Monday", "Tuesday"}},
		2: {CourseId: 2, PreferredDays: []Day{"Friday"}},
	})

	onPreferred := []Slot{
		{Day: "Monday", Start: 1, End: 2},
		{Day: "Friday", Start: 4, End: 4},
	}
	halfPreferred := []Slot{
		{Day: "Monday", Start: 1, End: 2},
		{Day: "Wednesday", Start: 4, End: 4},
	}
	offPreferred := []Slot{
		{Day: "Thursday", Start: 1, End: 2},
		{Day: "Wednesday", Start: 4, End: 4},
	}

	t.Run("Score counts preferred placements", func(t *testing.T) {
		assert.Equal(t, 2, scorer.Score(variables, onPreferred))
		assert.Equal(t, 1, scorer.Score(variables, halfPreferred))
		assert.Equal(t, 0, scorer.Score(variables, offPreferred))
	})

	t.Run("Best picks the highest score", func(t *testing.T) {
		assert.Equal(t, 1, scorer.best(variables, [][]Slot{offPreferred, onPreferred, halfPreferred}))
	})

	t.Run("Ties resolve to the earliest solution", func(t *testing.T) {
		assert.Equal(t, 0, scorer.best(variables, [][]Slot{halfPreferred, halfPreferred, offPreferred}))
	})

	t.Run("No preferences scores everything equal", func(t *testing.T) {
		unbiased := newPreferenceScorer(nil)

		assert.Equal(t, 0, unbiased.best(variables, [][]Slot{offPreferred, onPreferred}))
	})
}
