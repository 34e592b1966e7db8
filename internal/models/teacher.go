package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Teacher represents an instructor record.
type Teacher struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	Availability types.JSONText `db:"availability" json:"availability,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Availability maps a weekday name to the slot labels a teacher may be scheduled in.
// A nil map means the teacher is available at every slot.
type Availability map[string][]string

// AvailabilityMap decodes the stored availability document.
func (t *Teacher) AvailabilityMap() (Availability, error) {
	if t == nil || len(t.Availability) == 0 || string(t.Availability) == "null" {
		return nil, nil
	}
	var out Availability
	if err := json.Unmarshal(t.Availability, &out); err != nil {
		return nil, fmt.Errorf("decode availability for teacher %s: %w", t.ID, err)
	}
	return out, nil
}

// TeacherQualification records that a teacher may teach a course.
type TeacherQualification struct {
	TeacherID string `db:"teacher_id" json:"teacher_id"`
	CourseID  string `db:"course_id" json:"course_id"`
}
