package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
	"github.com/noah-isme/timetable-api/pkg/response"
)

type assignmentService interface {
	Create(ctx context.Context, req dto.CreateAssignmentRequest) (*models.Assignment, error)
	ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error)
}

// AssignmentHandler registers teaching workloads.
type AssignmentHandler struct {
	service assignmentService
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(svc *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: svc}
}

// Create godoc
// @Summary Register a teaching assignment
// @Description The teacher must be qualified for the course. hours_per_week defaults to 4.
// @Tags Assignments
// @Accept json
// @Produce json
// @Param payload body dto.CreateAssignmentRequest true "Assignment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	assignment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, assignment)
}

// ListBySection godoc
// @Summary List the assignments of a section
// @Tags Assignments
// @Produce json
// @Param sectionId path string true "Section ID"
// @Success 200 {object} response.Envelope
// @Router /sections/{sectionId}/assignments [get]
func (h *AssignmentHandler) ListBySection(c *gin.Context) {
	assignments, err := h.service.ListBySection(c.Request.Context(), c.Param("sectionId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assignments, nil)
}
