package scheduler

import "github.com/noah-isme/timetable-api/internal/models"

// IsTeacherAvailable reports whether the availability document permits day/slot.
// Missing availability data means the teacher can take any slot.
func IsTeacherAvailable(availability models.Availability, day, slot string) bool {
	if len(availability) == 0 {
		return true
	}
	for _, permitted := range availability[day] {
		if permitted == slot {
			return true
		}
	}
	return false
}
