package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/scheduler"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/export"
	"github.com/noah-isme/timetable-api/pkg/middleware/requestid"
)

type timetableCatalog interface {
	FindDepartment(ctx context.Context, id string) (*models.Department, error)
	ListPrograms(ctx context.Context, departmentID string) ([]models.Program, error)
	ListBatches(ctx context.Context, programID string) ([]models.Batch, error)
	ListSections(ctx context.Context, batchID string) ([]models.Section, error)
	FindTeacher(ctx context.Context, id string) (*models.Teacher, error)
	FindCourse(ctx context.Context, id string) (*models.Course, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
}

type sectionAssignmentReader interface {
	ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error)
}

type timetableStore interface {
	DeleteByDepartmentTx(ctx context.Context, tx *sqlx.Tx, departmentID string) (int64, error)
	ListOutsideDepartmentTx(ctx context.Context, tx *sqlx.Tx, departmentID string) ([]models.TimetableEntry, error)
	BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, entries []models.TimetableEntry) error
	ListDetailedByDepartment(ctx context.Context, departmentID string) ([]models.TimetableEntryDetail, error)
	ListAt(ctx context.Context, day, slot string) ([]models.TimetableEntry, error)
}

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// TimetableConfig tunes timetable reads.
type TimetableConfig struct {
	CacheTTL time.Duration
}

var timetableExportHeaders = []string{"Day", "Time Slot", "Section", "Course", "Teacher", "Room"}

// TimetableService generates, serves and exports department timetables.
type TimetableService struct {
	catalog     timetableCatalog
	assignments sectionAssignmentReader
	entries     timetableStore
	tx          txProvider
	engine      *scheduler.Engine
	cache       *CacheService
	metrics     *MetricsService
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	xlsx        *export.ExcelExporter
	validator   *validator.Validate
	logger      *zap.Logger
	locks       *scopeLocks
	cfg         TimetableConfig
	now         func() time.Time
}

// NewTimetableService wires generation dependencies.
func NewTimetableService(
	catalog timetableCatalog,
	assignments sectionAssignmentReader,
	entries timetableStore,
	tx txProvider,
	cache *CacheService,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	cfg TimetableConfig,
) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		catalog:     catalog,
		assignments: assignments,
		entries:     entries,
		tx:          tx,
		engine:      scheduler.NewEngine(catalog, logger.Named("scheduler")),
		cache:       cache,
		metrics:     metrics,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		xlsx:        export.NewExcelExporter(),
		validator:   validate,
		logger:      logger,
		locks:       newScopeLocks(),
		cfg:         cfg,
		now:         time.Now,
	}
}

// Generate rebuilds the timetable of one department. Existing entries of the department are
// replaced atomically; entries of other departments stay and keep their teachers and rooms
// blocked. Shortfalls are returned in the report, not as errors.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerationReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generate payload")
	}
	departmentID := req.DepartmentID
	if _, err := s.catalog.FindDepartment(ctx, departmentID); err != nil {
		return nil, lookupError(err, "department")
	}

	if !s.locks.TryAcquire(departmentID) {
		return nil, appErrors.Clone(appErrors.ErrConflict, "timetable generation already running for department")
	}
	defer s.locks.Release(departmentID)

	start := s.now()
	tx, err := s.tx.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to begin timetable transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	cleared, err := s.entries.DeleteByDepartmentTx(ctx, tx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear department timetable")
	}
	existing, err := s.entries.ListOutsideDepartmentTx(ctx, tx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load existing timetable")
	}

	state := scheduler.NewState(departmentID, existing)
	shortfalls, err := s.allocateDepartment(ctx, state, departmentID)
	if err != nil {
		return nil, err
	}

	entries := state.Entries()
	writeStart := time.Now()
	if err = s.entries.BulkCreateWithTx(ctx, tx, entries); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store timetable")
	}
	if err = tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit timetable")
	}
	s.metrics.ObserveDBQuery("timetable_replace", time.Since(writeStart))

	report := &dto.GenerationReport{
		Status:       dto.GenerationSuccess,
		Entries:      len(entries),
		Errors:       shortfalls,
		DepartmentID: departmentID,
		GeneratedAt:  s.now().UTC(),
	}
	if len(shortfalls) > 0 {
		report.Status = dto.GenerationPartialSuccess
	} else {
		report.Errors = []string{}
	}

	_ = s.cache.Invalidate(ctx, timetableViewKey(departmentID))
	duration := s.now().Sub(start)
	s.metrics.RecordGeneration(report.Status, report.Entries, len(shortfalls), duration)
	s.logger.Info("timetable generated",
		zap.String("request_id", requestid.FromContext(ctx)),
		zap.String("department_id", departmentID),
		zap.String("status", report.Status),
		zap.Int64("cleared", cleared),
		zap.Int("entries", report.Entries),
		zap.Int("shortfalls", len(shortfalls)),
		zap.Int("foreign_entries", len(existing)),
		zap.Duration("duration", duration),
	)
	return report, nil
}

// allocateDepartment walks programs, batches and sections in load order and allocates every
// assignment. Listing failures abort the run; a single unresolvable assignment does not.
func (s *TimetableService) allocateDepartment(ctx context.Context, state *scheduler.State, departmentID string) ([]string, error) {
	var shortfalls []string

	programs, err := s.catalog.ListPrograms(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list programs")
	}
	for _, program := range programs {
		batches, err := s.catalog.ListBatches(ctx, program.ID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list batches")
		}
		for _, batch := range batches {
			sections, err := s.catalog.ListSections(ctx, batch.ID)
			if err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
			}
			for _, section := range sections {
				missed, err := s.allocateSection(ctx, state, section)
				if err != nil {
					return nil, err
				}
				shortfalls = append(shortfalls, missed...)
			}
		}
	}
	return shortfalls, nil
}

func (s *TimetableService) allocateSection(ctx context.Context, state *scheduler.State, section models.Section) ([]string, error) {
	state.ResetSection(section.ID)
	assignments, err := s.assignments.ListBySection(ctx, section.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list section assignments")
	}

	var shortfalls []string
	for _, assignment := range assignments {
		workload, err := s.resolveWorkload(ctx, assignment, section)
		if err != nil {
			s.logger.Warn("assignment skipped",
				zap.String("assignment_id", assignment.ID),
				zap.String("section_id", section.ID),
				zap.Error(err),
			)
			courseName := assignment.CourseID
			if workload.Course.Name != "" {
				courseName = workload.Course.Name
			}
			shortfalls = append(shortfalls, scheduler.ShortfallMessage(courseName, section.Name, 0, assignment.HoursPerWeek))
			continue
		}

		alloc, err := s.engine.Allocate(ctx, state, workload)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to allocate assignment")
		}
		if !alloc.Satisfied() {
			shortfalls = append(shortfalls, scheduler.ShortfallMessage(workload.Course.Name, section.Name, alloc.Scheduled, alloc.Required))
		}
	}
	return shortfalls, nil
}

// resolveWorkload loads the course and teacher of an assignment. The returned workload carries
// whatever was resolved even when err is set.
func (s *TimetableService) resolveWorkload(ctx context.Context, assignment models.Assignment, section models.Section) (scheduler.Workload, error) {
	workload := scheduler.Workload{Assignment: assignment, Section: section}

	course, err := s.catalog.FindCourse(ctx, assignment.CourseID)
	if err != nil {
		return workload, fmt.Errorf("course %s: %w", assignment.CourseID, err)
	}
	workload.Course = *course

	teacher, err := s.catalog.FindTeacher(ctx, assignment.TeacherID)
	if err != nil {
		return workload, fmt.Errorf("teacher %s: %w", assignment.TeacherID, err)
	}
	workload.Teacher = *teacher

	availability, err := teacher.AvailabilityMap()
	if err != nil {
		return workload, err
	}
	workload.Availability = availability
	return workload, nil
}

// ViewSchedule returns a department timetable ordered by weekday then slot.
func (s *TimetableService) ViewSchedule(ctx context.Context, departmentID string) (*dto.DepartmentTimetable, error) {
	if strings.TrimSpace(departmentID) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "department id is required")
	}

	view, hit, err := Remember(ctx, s.cache, timetableViewKey(departmentID), s.cfg.CacheTTL, func(ctx context.Context) (dto.DepartmentTimetable, error) {
		return s.loadView(ctx, departmentID)
	})
	if err != nil {
		return nil, err
	}
	view.CacheHit = hit
	return &view, nil
}

func (s *TimetableService) loadView(ctx context.Context, departmentID string) (dto.DepartmentTimetable, error) {
	if _, err := s.catalog.FindDepartment(ctx, departmentID); err != nil {
		return dto.DepartmentTimetable{}, lookupError(err, "department")
	}
	entries, err := s.entries.ListDetailedByDepartment(ctx, departmentID)
	if err != nil {
		return dto.DepartmentTimetable{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	sortEntryDetails(entries)
	if entries == nil {
		entries = []models.TimetableEntryDetail{}
	}
	return dto.DepartmentTimetable{DepartmentID: departmentID, Entries: entries}, nil
}

// CheckConflict reports whether the given teacher, room or section is already booked at a
// day/slot across all departments.
func (s *TimetableService) CheckConflict(ctx context.Context, req dto.ConflictCheckRequest) (*dto.ConflictCheckResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid conflict check payload")
	}
	if !scheduler.ValidCell(req.Day, req.TimeSlot) {
		return nil, appErrors.Clonef(appErrors.ErrValidation, "%s %s is outside the weekly grid", req.Day, req.TimeSlot)
	}

	entries, err := s.entries.ListAt(ctx, req.Day, req.TimeSlot)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable entries")
	}
	reason := scheduler.NewLedger(entries...).Check(req.Day, req.TimeSlot, scheduler.ConflictQuery{
		TeacherID: req.TeacherID,
		RoomID:    req.RoomID,
		SectionID: req.SectionID,
	})
	return &dto.ConflictCheckResponse{
		Conflict: reason != scheduler.ConflictNone,
		Reason:   string(reason),
		Message:  reason.Message(),
	}, nil
}

// ExportSchedule renders a department timetable as CSV, PDF or XLSX.
func (s *TimetableService) ExportSchedule(ctx context.Context, departmentID string, query dto.ExportTimetableQuery) (*dto.ExportResult, error) {
	query.Format = strings.ToLower(strings.TrimSpace(query.Format))
	if err := s.validator.Struct(query); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "unsupported export format")
	}
	format := query.Format
	if format == "" {
		format = dto.ExportFormatCSV
	}

	department, err := s.catalog.FindDepartment(ctx, departmentID)
	if err != nil {
		return nil, lookupError(err, "department")
	}
	view, err := s.ViewSchedule(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	dataset := timetableDataset(view.Entries)
	name := department.Code
	if name == "" {
		name = department.ID
	}
	result := &dto.ExportResult{Filename: fmt.Sprintf("timetable-%s.%s", strings.ToLower(name), format)}

	switch format {
	case dto.ExportFormatPDF:
		subtitle := fmt.Sprintf("Generated %s", s.now().UTC().Format(time.RFC1123))
		result.Payload, err = s.pdf.Render(dataset, "Timetable "+department.Name, subtitle)
		result.ContentType = s.pdf.ContentType()
	case dto.ExportFormatXLSX:
		result.Payload, err = s.xlsx.Render(dataset, "Timetable "+department.Name)
		result.ContentType = s.xlsx.ContentType()
	default:
		result.Payload, err = s.csv.Render(dataset)
		result.ContentType = s.csv.ContentType()
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render timetable export")
	}
	return result, nil
}

// PurgeViewCache drops every cached department view.
func (s *TimetableService) PurgeViewCache(ctx context.Context) error {
	if err := s.cache.InvalidatePattern(ctx, timetableViewKeyPrefix+"*"); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to purge timetable cache")
	}
	return nil
}

func sortEntryDetails(entries []models.TimetableEntryDetail) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if da, db := scheduler.DayIndex(a.Day), scheduler.DayIndex(b.Day); da != db {
			return da < db
		}
		if sa, sb := scheduler.SlotIndex(a.TimeSlot), scheduler.SlotIndex(b.TimeSlot); sa != sb {
			return sa < sb
		}
		return a.SectionName < b.SectionName
	})
}

func timetableDataset(entries []models.TimetableEntryDetail) export.Dataset {
	dataset := export.Dataset{Headers: timetableExportHeaders}
	for _, entry := range entries {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Day":       entry.Day,
			"Time Slot": entry.TimeSlot,
			"Section":   entry.SectionName,
			"Course":    entry.CourseName,
			"Teacher":   entry.TeacherName,
			"Room":      entry.RoomName,
		})
	}
	return dataset
}
