package models

import "time"

// TimetableEntry is one committed lesson: a section taking a course with a teacher in a room.
type TimetableEntry struct {
	ID           string    `db:"id" json:"id"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	Day          string    `db:"day" json:"day"`
	TimeSlot     string    `db:"time_slot" json:"time_slot"`
	SectionID    string    `db:"section_id" json:"section_id"`
	CourseID     string    `db:"course_id" json:"course_id"`
	TeacherID    string    `db:"teacher_id" json:"teacher_id"`
	RoomID       string    `db:"room_id" json:"room_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TimetableEntryDetail enriches an entry with display names.
type TimetableEntryDetail struct {
	TimetableEntry
	SectionName string `db:"section_name" json:"section"`
	CourseName  string `db:"course_name" json:"course"`
	TeacherName string `db:"teacher_name" json:"teacher"`
	RoomName    string `db:"room_name" json:"room"`
}
