package model

import (
	"context"
	"fmt"
	"testing"
)

// benchmarkSnapshot builds a section-sized instance: eight courses over four
// faculty with partial availability, two of them labs.
func benchmarkSnapshot() Snapshot {
	snapshot := Snapshot{
		Faculty:     make(map[uint64]Faculty),
		Courses:     make(map[uint64]Course),
		Preferences: make(map[uint64]Preference),
	}

	availabilities := []map[Day][]int{
		weekOf(1, 2, 3, 4),
		weekOf(3, 4, 5, 6, 7),
		weekOf(1, 2, 6, 7),
		fullWeek(),
	}
	for i, availability := range availabilities {
		id := uint64(i + 1)
		snapshot.Faculty[id] = Faculty{Id: id, Name: fmt.Sprintf("Faculty %v", id), Availability: availability}
	}

	for i := range 8 {
		id := uint64(i + 1)
		kind := KindTheory
		facultyIds := []uint64{uint64(i%4 + 1)}
		if i < 2 {
			kind = KindLab
			facultyIds = []uint64{uint64(i%4 + 1), uint64((i+1)%4 + 1)}
		}
		snapshot.Courses[id] = Course{
			Id:         id,
			Code:       fmt.Sprintf("IT30%v", id),
			Kind:       kind,
			FacultyIds: facultyIds,
		}
	}

	return snapshot
}

func BenchmarkBuild(b *testing.B) {
	snapshot := benchmarkSnapshot()
	timetabler := NewTimetabler(Config{})

	b.ResetTimer()
	for range b.N {
		result, err := timetabler.Build(context.Background(), snapshot, Scope{Section: "II Year IT A"})
		if err != nil || !result.Solved() {
			b.Fatalf("expected a solved timetable: %v %v", result.Outcome, err)
		}
	}
}

func BenchmarkBuildRanked(b *testing.B) {
	snapshot := benchmarkSnapshot()
	snapshot.Preferences[1] = Preference{CourseId: 3, PreferredDays: []Day{"Friday"}}
	timetabler := NewTimetabler(Config{Candidates: 32})

	b.ResetTimer()
	for range b.N {
		result, err := timetabler.Build(context.Background(), snapshot, Scope{Section: "II Year IT A"})
		if err != nil || !result.Solved() {
			b.Fatalf("expected a solved timetable: %v %v", result.Outcome, err)
		}
	}
}
