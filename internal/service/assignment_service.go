package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type assignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error)
}

type assignmentCatalog interface {
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	FindCourse(ctx context.Context, id string) (*models.Course, error)
	FindSection(ctx context.Context, id string) (*models.Section, error)
	IsQualified(ctx context.Context, teacherID, courseID string) (bool, error)
}

// AssignmentService registers teaching workloads consumed by timetable generation.
type AssignmentService struct {
	catalog     assignmentCatalog
	assignments assignmentRepository
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAssignmentService creates a service instance.
func NewAssignmentService(catalog assignmentCatalog, assignments assignmentRepository, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssignmentService{catalog: catalog, assignments: assignments, validator: validate, logger: logger}
}

// Create validates qualification and stores a new assignment.
func (s *AssignmentService) Create(ctx context.Context, req dto.CreateAssignmentRequest) (*models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}
	hours := dto.DefaultHoursPerWeek
	if req.HoursPerWeek != nil {
		hours = *req.HoursPerWeek
	}
	if hours <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "hours_per_week must be positive")
	}

	teacher, err := s.catalog.FindTeacher(ctx, req.TeacherID)
	if err != nil {
		return nil, lookupError(err, "teacher")
	}
	course, err := s.catalog.FindCourse(ctx, req.CourseID)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	if _, err := s.catalog.FindSection(ctx, req.SectionID); err != nil {
		return nil, lookupError(err, "section")
	}

	qualified, err := s.catalog.IsQualified(ctx, teacher.ID, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check qualification")
	}
	if !qualified {
		return nil, appErrors.Clonef(appErrors.ErrValidation, "Teacher %s is not qualified to teach %s.", teacher.Name, course.Name)
	}

	assignment := &models.Assignment{
		TeacherID:    teacher.ID,
		CourseID:     course.ID,
		SectionID:    req.SectionID,
		HoursPerWeek: hours,
	}
	if err := s.assignments.Create(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create assignment")
	}

	s.logger.Info("assignment created",
		zap.String("assignment_id", assignment.ID),
		zap.String("teacher_id", teacher.ID),
		zap.String("course_id", course.ID),
		zap.String("section_id", req.SectionID),
		zap.Int("hours_per_week", hours),
	)
	return assignment, nil
}

// ListBySection returns the section's assignments in registration order.
func (s *AssignmentService) ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error) {
	if _, err := s.catalog.FindSection(ctx, sectionID); err != nil {
		return nil, lookupError(err, "section")
	}
	assignments, err := s.assignments.ListBySection(ctx, sectionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list assignments")
	}
	return assignments, nil
}

// lookupError maps a catalog lookup failure onto the API error set.
func lookupError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load "+entity)
}
