package model

import "fmt"

// UnknownFacultyError reports a course referencing a faculty id absent from
// the snapshot. Detected at build time, before any search starts.
type UnknownFacultyError struct {
	CourseId  uint64
	FacultyId uint64
}

func (err UnknownFacultyError) Error() string {
	return fmt.Sprintf("course %v requires unknown faculty %v", err.CourseId, err.FacultyId)
}

// UnknownCourseError reports a scoped course id absent from the snapshot.
type UnknownCourseError struct {
	CourseId uint64
}

func (err UnknownCourseError) Error() string {
	return fmt.Sprintf("course %v is not present in the snapshot", err.CourseId)
}

// UnstaffedCourseError reports a course declaring no required faculty.
type UnstaffedCourseError struct {
	CourseId uint64
}

func (err UnstaffedCourseError) Error() string {
	return fmt.Sprintf("course %v declares no required faculty", err.CourseId)
}

// UnschedulableCourseError reports a block size that fits in no day of the
// time grid.
type UnschedulableCourseError struct {
	CourseId  uint64
	BlockSize int
}

func (err UnschedulableCourseError) Error() string {
	return fmt.Sprintf("course %v requires a block of %v periods which fits in no day", err.CourseId, err.BlockSize)
}

// InternalError wraps a defect detected during or after search. It is fatal
// for the call only, never for the process.
type InternalError struct {
	Reason string
}

func (err InternalError) Error() string {
	return "solver internal error: " + err.Reason
}
