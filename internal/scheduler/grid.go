// Package scheduler builds department timetables with a single greedy pass per assignment.
package scheduler

// Weekdays is the fixed day order of the weekly grid.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeSlots lists the daily slots in ordinal order. The afternoon block does not follow the
// morning block in clock time; gap math only looks at positions in this list.
var TimeSlots = []string{"09:00-10:00", "10:00-11:00", "11:00-12:00", "01:00-02:00", "02:00-03:00"}

// DayIndex returns the ordinal of day in Weekdays, or -1.
func DayIndex(day string) int {
	return indexOf(Weekdays, day)
}

// SlotIndex returns the ordinal of slot in TimeSlots, or -1.
func SlotIndex(slot string) int {
	return indexOf(TimeSlots, slot)
}

// ValidCell reports whether day and slot both belong to the weekly grid.
func ValidCell(day, slot string) bool {
	return DayIndex(day) >= 0 && SlotIndex(slot) >= 0
}

func indexOf(list []string, value string) int {
	for i, item := range list {
		if item == value {
			return i
		}
	}
	return -1
}
