package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/timetable-api/internal/models"
)

// CatalogRepository reads the academic catalog the timetable is generated from.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindDepartment returns a department by id.
func (r *CatalogRepository) FindDepartment(ctx context.Context, id string) (*models.Department, error) {
	const query = `SELECT id, name, code, created_at FROM departments WHERE id = $1`
	var department models.Department
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return &department, nil
}

// ListPrograms returns the programs of a department in load order.
func (r *CatalogRepository) ListPrograms(ctx context.Context, departmentID string) ([]models.Program, error) {
	const query = `SELECT id, name, code, department_id FROM programs WHERE department_id = $1 ORDER BY created_at ASC, id ASC`
	var programs []models.Program
	if err := r.db.SelectContext(ctx, &programs, query, departmentID); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// ListBatches returns the batches of a program in load order.
func (r *CatalogRepository) ListBatches(ctx context.Context, programID string) ([]models.Batch, error) {
	const query = `SELECT id, name, academic_year, program_id FROM batches WHERE program_id = $1 ORDER BY created_at ASC, id ASC`
	var batches []models.Batch
	if err := r.db.SelectContext(ctx, &batches, query, programID); err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	return batches, nil
}

// ListSections returns the sections of a batch in load order.
func (r *CatalogRepository) ListSections(ctx context.Context, batchID string) ([]models.Section, error) {
	const query = `SELECT id, name, batch_id, student_count FROM sections WHERE batch_id = $1 ORDER BY created_at ASC, id ASC`
	var sections []models.Section
	if err := r.db.SelectContext(ctx, &sections, query, batchID); err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// FindSection returns a section by id.
func (r *CatalogRepository) FindSection(ctx context.Context, id string) (*models.Section, error) {
	const query = `SELECT id, name, batch_id, student_count FROM sections WHERE id = $1`
	var section models.Section
	if err := r.db.GetContext(ctx, &section, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find section: %w", err)
	}
	return &section, nil
}

// FindTeacher returns a teacher with its availability document.
func (r *CatalogRepository) FindTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	const query = `SELECT id, name, email, availability, created_at, updated_at FROM teachers WHERE id = $1`
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return &teacher, nil
}

// FindCourse returns a course by id.
func (r *CatalogRepository) FindCourse(ctx context.Context, id string) (*models.Course, error) {
	const query = `SELECT id, code, name, credits, course_type, department_id, created_at FROM courses WHERE id = $1`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// ListRooms returns every room in catalog order.
func (r *CatalogRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	const query = `SELECT id, name, capacity, room_type, created_at FROM rooms ORDER BY created_at ASC, id ASC`
	var rooms []models.Room
	if err := r.db.SelectContext(ctx, &rooms, query); err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

// IsQualified reports whether the teacher may teach the course.
func (r *CatalogRepository) IsQualified(ctx context.Context, teacherID, courseID string) (bool, error) {
	const query = `SELECT 1 FROM teacher_qualifications WHERE teacher_id = $1 AND course_id = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check teacher qualification: %w", err)
	}
	return true, nil
}
