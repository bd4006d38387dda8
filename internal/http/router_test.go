package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expedibox/colis-service/internal/middleware"
)

func TestHealthEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = performRequest(router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestReadinessReportsDegradedDatabase(t *testing.T) {
	router, store := setupTestRouter(t)
	require.NoError(t, store.Close())

	rec := performRequest(router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRequestIDPropagation(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodGet, "/healthz", nil)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestResponseEnvelopeCarriesRequestID(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec := performRequest(router, http.MethodGet, "/api/timbres", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id"`)
	assert.Contains(t, rec.Body.String(), `"timestamp"`)
}

func TestRoutesAbsentWithoutServices(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	router := NewRouter(NewHealthHandler(), cfg)

	rec := performRequest(router, http.MethodGet, "/api/timbres", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = performRequest(router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
