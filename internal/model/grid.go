package model

// Day names a working day of the week grid.
type Day string

// Days lists the working days in grid order.
var Days = []Day{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Period is one teaching period with its wall-clock range. Break periods
// carry Number 0 and IsBreak true; they are never assignable.
type Period struct {
	Number  int    `json:"number"`
	Start   string `json:"start"`
	End     string `json:"end"`
	IsBreak bool   `json:"isBreak,omitempty"`
}

const (
	FirstPeriod = 1
	LastPeriod  = 7
)

// Periods lists the assignable periods of every working day.
var Periods = []Period{
	{Number: 1, Start: "08:45", End: "09:45"},
	{Number: 2, Start: "09:45", End: "10:45"},
	{Number: 3, Start: "11:05", End: "12:05"},
	{Number: 4, Start: "12:05", End: "01:05"},
	{Number: 5, Start: "01:55", End: "02:45"},
	{Number: 6, Start: "03:00", End: "03:50"},
	{Number: 7, Start: "03:50", End: "04:40"},
}

// Breaks lists the gaps between periods: after P2, lunch after P4 and after P5.
var Breaks = []Period{
	{Start: "10:45", End: "11:05", IsBreak: true},
	{Start: "01:05", End: "01:55", IsBreak: true},
	{Start: "02:45", End: "03:00", IsBreak: true},
}

// breakAfter marks the periods followed by a break on the same day.
var breakAfter = map[int]bool{2: true, 4: true, 5: true}

// Slot is a candidate placement: an inclusive period range on one day.
type Slot struct {
	Day   Day `json:"day"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// Width returns the number of periods the slot occupies.
func (s Slot) Width() int {
	return s.End - s.Start + 1
}

// Overlaps reports whether both slots share at least one period. Slots on
// different days never overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.Day == other.Day && s.Start <= other.End && other.Start <= s.End
}

// StraddlesBreak reports whether the slot spans a break boundary, which would
// split the session across non-consecutive teaching time.
func (s Slot) StraddlesBreak() bool {
	for period := s.Start; period < s.End; period++ {
		if breakAfter[period] {
			return true
		}
	}
	return false
}

func dayIndex(day Day) int {
	for i, d := range Days {
		if d == day {
			return i
		}
	}
	return len(Days)
}

// candidateSlots enumerates every legal placement for a block of the given
// size, in day order then start order. Blocks crossing a break are excluded.
func candidateSlots(blockSize int) []Slot {
	var slots []Slot
	for _, day := range Days {
		for start := FirstPeriod; start+blockSize-1 <= LastPeriod; start++ {
			slot := Slot{Day: day, Start: start, End: start + blockSize - 1}
			if slot.StraddlesBreak() {
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}
