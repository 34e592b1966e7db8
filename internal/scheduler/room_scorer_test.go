package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/timetable-api/internal/models"
)

func TestScoreRoom(t *testing.T) {
	theory := models.Course{ID: "c-theory", CourseType: "Theory"}
	lab := models.Course{ID: "c-lab", CourseType: "Lab"}

	cases := []struct {
		name     string
		room     models.Room
		course   models.Course
		students int
		want     int
	}{
		{"exact classroom for theory", models.Room{Capacity: 60, RoomType: "Classroom"}, theory, 60, 20},
		{"snug classroom for theory", models.Room{Capacity: 72, RoomType: "Classroom"}, theory, 60, 15},
		{"loose classroom for theory", models.Room{Capacity: 73, RoomType: "Classroom"}, theory, 60, 12},
		{"lab room for theory", models.Room{Capacity: 40, RoomType: "Lab"}, theory, 35, 10},
		{"lab room for lab", models.Room{Capacity: 30, RoomType: "Computer LAB"}, lab, 30, 30},
		{"classroom for lab rejected", models.Room{Capacity: 30, RoomType: "Classroom"}, lab, 30, 0},
		{"too small classroom rejected", models.Room{Capacity: 20, RoomType: "Classroom"}, theory, 25, 0},
		{"too small lab rejected", models.Room{Capacity: 20, RoomType: "Lab"}, lab, 25, 0},
		{"empty section", models.Room{Capacity: 30, RoomType: "Classroom"}, theory, 0, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScoreRoom(tc.room, tc.course, models.Section{StudentCount: tc.students})
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScoreRoomNeverRejectsTheoryOnCategory(t *testing.T) {
	theory := models.Course{CourseType: "Theory"}
	for _, roomType := range []string{"Lab", "Classroom", "Seminar Hall", "Physics Lab"} {
		room := models.Room{Capacity: 50, RoomType: roomType}
		assert.Greater(t, ScoreRoom(room, theory, models.Section{StudentCount: 50}), 0, roomType)
	}
}
