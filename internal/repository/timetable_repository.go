package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

const timetableEntryColumns = `id, department_id, day, time_slot, section_id, course_id, teacher_id, room_id, created_at`

// TimetableRepository stores generated timetable entries.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates a new timetable repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// DeleteByDepartmentTx clears every entry of a department inside tx.
func (r *TimetableRepository) DeleteByDepartmentTx(ctx context.Context, tx *sqlx.Tx, departmentID string) (int64, error) {
	if tx == nil {
		return 0, fmt.Errorf("nil transaction provided")
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM timetable_entries WHERE department_id = $1`, departmentID)
	if err != nil {
		return 0, fmt.Errorf("delete department timetable: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("check deleted timetable rows: %w", err)
	}
	return affected, nil
}

// ListOutsideDepartmentTx returns the entries of every other department, read inside tx.
func (r *TimetableRepository) ListOutsideDepartmentTx(ctx context.Context, tx *sqlx.Tx, departmentID string) ([]models.TimetableEntry, error) {
	if tx == nil {
		return nil, fmt.Errorf("nil transaction provided")
	}
	query := `SELECT ` + timetableEntryColumns + ` FROM timetable_entries WHERE department_id <> $1`
	var entries []models.TimetableEntry
	if err := sqlx.SelectContext(ctx, tx, &entries, query, departmentID); err != nil {
		return nil, fmt.Errorf("list foreign timetable entries: %w", err)
	}
	return entries, nil
}

// BulkCreateWithTx inserts entries using an existing transaction.
func (r *TimetableRepository) BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, entries []models.TimetableEntry) error {
	if tx == nil {
		return fmt.Errorf("nil transaction provided")
	}
	now := time.Now().UTC()
	query := `INSERT INTO timetable_entries (` + timetableEntryColumns + `) VALUES (:id, :department_id, :day, :time_slot, :section_id, :course_id, :teacher_id, :room_id, :created_at)`
	for i := range entries {
		payload := entries[i]
		if payload.ID == "" {
			payload.ID = uuid.NewString()
		}
		if payload.CreatedAt.IsZero() {
			payload.CreatedAt = now
		}
		if _, err := sqlx.NamedExecContext(ctx, tx, query, &payload); err != nil {
			return fmt.Errorf("bulk insert timetable entry: %w", err)
		}
		entries[i] = payload
	}
	return nil
}

// ListDetailedByDepartment returns a department's entries joined with display names.
func (r *TimetableRepository) ListDetailedByDepartment(ctx context.Context, departmentID string) ([]models.TimetableEntryDetail, error) {
	const query = `
SELECT te.id, te.department_id, te.day, te.time_slot, te.section_id, te.course_id, te.teacher_id, te.room_id, te.created_at,
       s.name AS section_name, c.name AS course_name, t.name AS teacher_name, r.name AS room_name
FROM timetable_entries te
JOIN sections s ON s.id = te.section_id
JOIN courses c ON c.id = te.course_id
JOIN teachers t ON t.id = te.teacher_id
JOIN rooms r ON r.id = te.room_id
WHERE te.department_id = $1`
	var entries []models.TimetableEntryDetail
	if err := r.db.SelectContext(ctx, &entries, query, departmentID); err != nil {
		return nil, fmt.Errorf("list department timetable: %w", err)
	}
	return entries, nil
}

// ListAt returns every persisted entry in one day/slot cell across departments.
func (r *TimetableRepository) ListAt(ctx context.Context, day, slot string) ([]models.TimetableEntry, error) {
	query := `SELECT ` + timetableEntryColumns + ` FROM timetable_entries WHERE day = $1 AND time_slot = $2`
	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, day, slot); err != nil {
		return nil, fmt.Errorf("list timetable cell: %w", err)
	}
	return entries, nil
}
