package models

import "time"

// Assignment links a qualified teacher to a course for one section with a weekly hour quota.
type Assignment struct {
	ID           string    `db:"id" json:"id"`
	TeacherID    string    `db:"teacher_id" json:"teacher_id"`
	CourseID     string    `db:"course_id" json:"course_id"`
	SectionID    string    `db:"section_id" json:"section_id"`
	HoursPerWeek int       `db:"hours_per_week" json:"hours_per_week"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
