package dto

import (
	"time"

	"github.com/noah-isme/timetable-api/internal/models"
)

// Generation outcomes reported in GenerationReport.Status.
const (
	GenerationSuccess        = "success"
	GenerationPartialSuccess = "partial_success"
)

// Export formats accepted by the export endpoint.
const (
	ExportFormatCSV  = "csv"
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)

// GenerateTimetableRequest asks for a fresh timetable of one department.
type GenerateTimetableRequest struct {
	DepartmentID string `json:"department_id" validate:"required"`
}

// GenerationReport summarises a generation run. Errors lists the shortfalls in the order
// they were met.
type GenerationReport struct {
	Status       string    `json:"status"`
	Entries      int       `json:"entries"`
	Errors       []string  `json:"errors"`
	DepartmentID string    `json:"department_id"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// DepartmentTimetable is the presentation view of a department schedule.
type DepartmentTimetable struct {
	DepartmentID string                        `json:"department_id"`
	Entries      []models.TimetableEntryDetail `json:"entries"`
	CacheHit     bool                          `json:"-"`
}

// ConflictCheckRequest asks whether a resource is free at one day/slot.
type ConflictCheckRequest struct {
	Day       string `json:"day" validate:"required"`
	TimeSlot  string `json:"time_slot" validate:"required"`
	TeacherID string `json:"teacher_id"`
	RoomID    string `json:"room_id"`
	SectionID string `json:"section_id"`
}

// ConflictCheckResponse answers a ConflictCheckRequest.
type ConflictCheckResponse struct {
	Conflict bool   `json:"conflict"`
	Reason   string `json:"reason,omitempty"`
	Message  string `json:"message,omitempty"`
}

// ExportTimetableQuery selects the export rendering.
type ExportTimetableQuery struct {
	Format string `form:"format" validate:"omitempty,oneof=csv pdf xlsx"`
}

// ExportResult holds a rendered timetable ready to download.
type ExportResult struct {
	Filename    string
	ContentType string
	Payload     []byte
}
