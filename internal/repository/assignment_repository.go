package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// AssignmentRepository persists teaching workloads.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs the repository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// ListBySection returns the assignments of a section in the order they were registered.
func (r *AssignmentRepository) ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error) {
	const query = `SELECT id, teacher_id, course_id, section_id, hours_per_week, created_at
FROM assignments WHERE section_id = $1 ORDER BY created_at ASC, id ASC`
	var assignments []models.Assignment
	if err := r.db.SelectContext(ctx, &assignments, query, sectionID); err != nil {
		return nil, fmt.Errorf("list section assignments: %w", err)
	}
	return assignments, nil
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO assignments (id, teacher_id, course_id, section_id, hours_per_week, created_at)
		VALUES (:id, :teacher_id, :course_id, :section_id, :hours_per_week, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, assignment); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}
