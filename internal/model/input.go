package model

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

type CourseKind string

const (
	KindTheory CourseKind = "THEORY"
	KindLab    CourseKind = "LAB"
)

// Faculty is a read-only snapshot of one faculty member. Availability maps a
// day to the period numbers the faculty can teach.
type Faculty struct {
	Id           uint64
	Name         string
	Availability map[Day][]int
	IsExternal   bool
}

// Available reports whether the faculty can teach the given period on the
// given day.
func (faculty Faculty) Available(day Day, period int) bool {
	return slices.Contains(faculty.Availability[day], period)
}

// Course is a read-only snapshot of one course-scheduling requirement.
type Course struct {
	Id         uint64
	Code       string
	Name       string
	Kind       CourseKind
	FacultyIds []uint64
	BlockSize  int
}

// EffectiveBlockSize falls back to the kind's default when BlockSize is unset:
// 2 consecutive periods for labs, 1 for theory.
func (course Course) EffectiveBlockSize() int {
	if course.BlockSize > 0 {
		return course.BlockSize
	}
	if course.Kind == KindLab {
		return 2
	}
	return 1
}

// Preference is a soft constraint: it ranks otherwise-equal solutions and
// never rejects a feasible one.
type Preference struct {
	CourseId      uint64
	PreferredDays []Day
}

// Snapshot is the immutable input of one solve call. The engine only reads it
// and never writes back to caller-owned records.
type Snapshot struct {
	Faculty     map[uint64]Faculty
	Courses     map[uint64]Course
	Preferences map[uint64]Preference
}

// Scope identifies which courses to schedule together in one solve. An empty
// CourseIds schedules every course in the snapshot.
type Scope struct {
	Section   string
	CourseIds []uint64
}

// FacultyInput is the wire form of a faculty record.
type FacultyInput struct {
	Name         string           `json:"name" mapstructure:"name"`
	Availability map[string][]int `json:"availability" mapstructure:"availability"`
	IsExternal   bool             `json:"isExternal" mapstructure:"isExternal"`
}

// CourseInput is the wire form of a course record.
type CourseInput struct {
	Code       string   `json:"code" mapstructure:"code"`
	Name       string   `json:"name" mapstructure:"name"`
	Kind       string   `json:"kind" mapstructure:"kind"`
	FacultyIds []uint64 `json:"facultyIds" mapstructure:"facultyIds"`
	BlockSize  int      `json:"blockSize" mapstructure:"blockSize"`
}

// PreferenceInput is the wire form of a preferred-days constraint.
type PreferenceInput struct {
	CourseId      uint64   `json:"courseId" mapstructure:"courseId"`
	PreferredDays []string `json:"preferredDays" mapstructure:"preferredDays"`
}

// SnapshotInput is the wire form of a full solve request: id-keyed collections
// plus the section scope.
type SnapshotInput struct {
	Faculty     map[string]FacultyInput    `json:"faculty" mapstructure:"faculty"`
	Courses     map[string]CourseInput     `json:"courses" mapstructure:"courses"`
	Preferences map[string]PreferenceInput `json:"preferences" mapstructure:"preferences"`
	Section     string                     `json:"section" mapstructure:"section"`
	CourseIds   []uint64                   `json:"courseIds" mapstructure:"courseIds"`
}

// Snapshot resolves the string-keyed wire collections into id-keyed records.
func (input SnapshotInput) Snapshot() (Snapshot, error) {
	snapshot := Snapshot{
		Faculty:     make(map[uint64]Faculty, len(input.Faculty)),
		Courses:     make(map[uint64]Course, len(input.Courses)),
		Preferences: make(map[uint64]Preference, len(input.Preferences)),
	}

	for k, v := range input.Faculty {
		key, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf("cannot transform faculty dictionary: %w", err)
		}
		availability := make(map[Day][]int, len(v.Availability))
		for day, periods := range v.Availability {
			sorted := slices.Clone(periods)
			slices.Sort(sorted)
			availability[Day(day)] = sorted
		}
		snapshot.Faculty[key] = Faculty{
			Id:           key,
			Name:         v.Name,
			Availability: availability,
			IsExternal:   v.IsExternal,
		}
	}

	for k, v := range input.Courses {
		key, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf("cannot transform course dictionary: %w", err)
		}
		snapshot.Courses[key] = Course{
			Id:         key,
			Code:       v.Code,
			Name:       v.Name,
			Kind:       CourseKind(v.Kind),
			FacultyIds: slices.Clone(v.FacultyIds),
			BlockSize:  v.BlockSize,
		}
	}

	for k, v := range input.Preferences {
		key, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return Snapshot{}, fmt.Errorf("cannot transform constraint dictionary: %w", err)
		}
		days := make([]Day, 0, len(v.PreferredDays))
		for _, day := range v.PreferredDays {
			days = append(days, Day(day))
		}
		snapshot.Preferences[key] = Preference{CourseId: v.CourseId, PreferredDays: days}
	}

	return snapshot, nil
}

// Scope extracts the section scope carried alongside the wire snapshot.
func (input SnapshotInput) Scope() Scope {
	return Scope{Section: input.Section, CourseIds: slices.Clone(input.CourseIds)}
}

// InputFromJson reads a solve request from a JSON file.
func InputFromJson(file string) (SnapshotInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return SnapshotInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return SnapshotInput{}, err
	}

	var input SnapshotInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return SnapshotInput{}, err
	}

	return input, nil
}
