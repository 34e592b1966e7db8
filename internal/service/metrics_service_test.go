package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceRecordsGeneration(t *testing.T) {
	metrics := NewMetricsService()
	metrics.RecordGeneration("partial_success", 12, 2, 150*time.Millisecond)
	metrics.ObserveHTTPRequest(http.MethodPost, "/api/v1/timetable/generate", http.StatusOK, 200*time.Millisecond)

	snapshot := metrics.Snapshot()
	assert.EqualValues(t, 1, snapshot.GenerationRuns)
	assert.EqualValues(t, 12, snapshot.EntriesGenerated)
	assert.EqualValues(t, 2, snapshot.Shortfalls)
	assert.EqualValues(t, 1, snapshot.RequestsTotal)
	assert.InDelta(t, 200, snapshot.AverageRequestDurationMs, 0.001)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `timetable_generation_runs_total{status="partial_success"} 1`))
	assert.Contains(t, body, "timetable_entries_generated_total 12")
}

func TestMetricsServiceNilIsSafe(t *testing.T) {
	var metrics *MetricsService
	metrics.RecordGeneration("success", 1, 0, time.Second)
	metrics.RecordCacheOperation(true, time.Millisecond)
	assert.Equal(t, MetricsSnapshot{}, metrics.Snapshot())

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
