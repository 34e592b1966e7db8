package dto

// CreateAssignmentRequest registers a teaching workload. HoursPerWeek defaults to
// DefaultHoursPerWeek when omitted.
type CreateAssignmentRequest struct {
	TeacherID    string `json:"teacher_id" validate:"required"`
	CourseID     string `json:"course_id" validate:"required"`
	SectionID    string `json:"section_id" validate:"required"`
	HoursPerWeek *int   `json:"hours_per_week" validate:"omitempty,min=1"`
}

// DefaultHoursPerWeek is the weekly quota of an assignment registered without one.
const DefaultHoursPerWeek = 4
