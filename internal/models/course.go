package models

import (
	"strings"
	"time"
)

// CourseTypeLab marks courses that must be held in a lab room.
const CourseTypeLab = "Lab"

// Course represents a catalog course.
type Course struct {
	ID           string    `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	Name         string    `db:"name" json:"name"`
	Credits      int       `db:"credits" json:"credits"`
	CourseType   string    `db:"course_type" json:"course_type"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IsLab reports whether the course requires a lab room.
func (c Course) IsLab() bool {
	return strings.EqualFold(strings.TrimSpace(c.CourseType), CourseTypeLab)
}
