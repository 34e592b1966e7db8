package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/dto"
	"github.com/noah-isme/timetable-api/internal/models"
	appErrors "github.com/noah-isme/timetable-api/pkg/errors"
)

type assignmentServiceMock struct {
	captured dto.CreateAssignmentRequest
	err      error
}

func (m *assignmentServiceMock) Create(ctx context.Context, req dto.CreateAssignmentRequest) (*models.Assignment, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	hours := dto.DefaultHoursPerWeek
	if req.HoursPerWeek != nil {
		hours = *req.HoursPerWeek
	}
	return &models.Assignment{ID: "assignment-1", TeacherID: req.TeacherID, CourseID: req.CourseID, SectionID: req.SectionID, HoursPerWeek: hours}, nil
}

func (m *assignmentServiceMock) ListBySection(ctx context.Context, sectionID string) ([]models.Assignment, error) {
	return []models.Assignment{{ID: "a-1", SectionID: sectionID}}, m.err
}

func TestAssignmentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &assignmentServiceMock{}
	handler := &AssignmentHandler{service: mockSvc}
	req, _ := http.NewRequest(http.MethodPost, "/assignments", bytes.NewReader([]byte(`{"teacher_id":"t-1","course_id":"c-1","section_id":"s-1","hours_per_week":3}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, mockSvc.captured.HoursPerWeek)
	assert.Equal(t, 3, *mockSvc.captured.HoursPerWeek)
	assert.Contains(t, w.Body.String(), `"hours_per_week":3`)
}

func TestAssignmentHandlerCreateUnqualified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &AssignmentHandler{service: &assignmentServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "Teacher Ada is not qualified to teach Compilers.")}}
	req, _ := http.NewRequest(http.MethodPost, "/assignments", bytes.NewReader([]byte(`{"teacher_id":"t-1","course_id":"c-1","section_id":"s-1"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not qualified to teach Compilers.")
}

func TestAssignmentHandlerListBySection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := &AssignmentHandler{service: &assignmentServiceMock{}}
	router.GET("/sections/:sectionId/assignments", handler.ListBySection)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/sections/s-9/assignments", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"section_id":"s-9"`)
}
