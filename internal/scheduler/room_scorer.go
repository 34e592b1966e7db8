package scheduler

import "github.com/noah-isme/timetable-api/internal/models"

const (
	exactFitBonus = 10
	snugFitBonus  = 5
	looseFitBonus = 2

	labRoomBonus      = 20
	classroomBonus    = 10
	labForTheoryBonus = 5

	// a room up to 120% of the section size still counts as a snug fit
	snugFitPercentMax = 120
)

// ScoreRoom rates how well room suits course taught to section. Zero means the room
// must not be used: it is too small, or the course is a lab and the room is not.
func ScoreRoom(room models.Room, course models.Course, section models.Section) int {
	if room.Capacity < section.StudentCount {
		return 0
	}

	var score int
	switch {
	case room.Capacity == section.StudentCount:
		score = exactFitBonus
	case room.Capacity*100 <= section.StudentCount*snugFitPercentMax:
		score = snugFitBonus
	default:
		score = looseFitBonus
	}

	if course.IsLab() {
		if !room.IsLab() {
			return 0
		}
		return score + labRoomBonus
	}
	if room.IsLab() {
		return score + labForTheoryBonus
	}
	return score + classroomBonus
}
