package models

import "time"

// Department is the scope of a timetable generation run.
type Department struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Program belongs to a department.
type Program struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Code         string `db:"code" json:"code"`
	DepartmentID string `db:"department_id" json:"department_id"`
}

// Batch is one intake of a program.
type Batch struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	AcademicYear string `db:"academic_year" json:"academic_year"`
	ProgramID    string `db:"program_id" json:"program_id"`
}

// Section is the group of students a timetable is built for.
type Section struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	BatchID      string `db:"batch_id" json:"batch_id"`
	StudentCount int    `db:"student_count" json:"student_count"`
}
