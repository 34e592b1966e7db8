package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/middleware"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

type timetableService interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerationReport, error)
	ViewSchedule(ctx context.Context, departmentID string) (*dto.DepartmentTimetable, error)
	CheckConflict(ctx context.Context, req dto.ConflictCheckRequest) (*dto.ConflictCheckResponse, error)
	ExportSchedule(ctx context.Context, departmentID string, query dto.ExportTimetableQuery) (*dto.ExportResult, error)
}

// TimetableHandler exposes timetable generation endpoints.
type TimetableHandler struct {
	service timetableService
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Generate godoc
// @Summary Generate the timetable of a department
// @Description Replaces every entry of the department. Under-allocated assignments are listed in errors and yield status partial_success.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Department to generate"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generate payload"))
		return
	}
	report, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, report, nil)
}

// View godoc
// @Summary View a department timetable
// @Tags Timetable
// @Produce json
// @Param departmentId path string true "Department ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /timetable/departments/{departmentId} [get]
func (h *TimetableHandler) View(c *gin.Context) {
	view, err := h.service.ViewSchedule(c.Request.Context(), c.Param("departmentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, view.CacheHit)
	meta := middleware.ExtractMeta(c)
	meta["total"] = len(view.Entries)
	response.JSON(c, http.StatusOK, view, meta)
}

// Export godoc
// @Summary Download a department timetable
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param departmentId path string true "Department ID"
// @Param format query string false "csv, pdf or xlsx" Enums(csv, pdf, xlsx)
// @Success 200 {file} file
// @Router /timetable/departments/{departmentId}/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	var query dto.ExportTimetableQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export query"))
		return
	}
	result, err := h.service.ExportSchedule(c.Request.Context(), c.Param("departmentId"), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Payload)
}

// CheckConflict godoc
// @Summary Check whether a teacher, room or section is free at a day and slot
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.ConflictCheckRequest true "Resources to check"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /timetable/conflicts/check [post]
func (h *TimetableHandler) CheckConflict(c *gin.Context) {
	var req dto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid conflict check payload"))
		return
	}
	result, err := h.service.CheckConflict(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
