package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/internal/service"
)

func newGuardedRouter(enabled bool, auth *service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append(Guard(enabled, auth, models.RoleAdmin, models.RoleSuperAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.POST("/timetable/generate", handlers...)
	return router
}

func TestGuardAcceptsAdminToken(t *testing.T) {
	auth := service.NewAuthService(nil, service.AuthConfig{AccessTokenSecret: "secret", AccessTokenExpiry: time.Minute})
	token, _, err := auth.IssueToken("admin-1", models.RoleAdmin, "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/timetable/generate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	newGuardedRouter(true, auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGuardRejections(t *testing.T) {
	auth := service.NewAuthService(nil, service.AuthConfig{AccessTokenSecret: "secret"})
	teacherToken, _, err := auth.IssueToken("teacher-1", models.RoleTeacher, "")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"insufficient role", "Bearer " + teacherToken, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/timetable/generate", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			newGuardedRouter(true, auth).ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestGuardDisabledLeavesRouteOpen(t *testing.T) {
	assert.Nil(t, Guard(false, nil))

	w := httptest.NewRecorder()
	newGuardedRouter(false, nil).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/timetable/generate", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetricsMiddlewareRecordsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	router := gin.New()
	router.Use(Metrics(metrics))
	router.GET("/timetable/departments/:departmentId", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/timetable/departments/dept-1", nil))
	assert.EqualValues(t, 1, metrics.Snapshot().RequestsTotal)
}

func TestResponseMetaCarriesCacheHit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(WithResponseMeta())
	var meta map[string]interface{}
	router.GET("/view", func(c *gin.Context) {
		SetCacheHit(c, true)
		meta = ExtractMeta(c)
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/view", nil))

	require.NotNil(t, meta)
	assert.Equal(t, true, meta["cache_hit"])
	assert.Contains(t, meta, "processing_time_ms")
}

type recordingObserver struct {
	paths []string
}

func (r *recordingObserver) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	r.paths = append(r.paths, method+" "+path)
}

func TestMetricsMiddlewareCollapsesUnmatchedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(Metrics(observer))
	router.GET("/sections/:sectionId/assignments", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sections/sec-1/assignments", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/wp-admin/setup.php", nil))

	assert.Equal(t, []string{"GET /sections/:sectionId/assignments", "GET unmatched"}, observer.paths)
}
