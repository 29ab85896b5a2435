package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vosul/internal/domain"
	"vosul/internal/handler"
	"vosul/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(new(mocks.MockDatasetProvider))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthHandler_Readiness_NotLoaded(t *testing.T) {
	datasets := new(mocks.MockDatasetProvider)
	datasets.On("Current").Return(nil)
	h := handler.NewHealthHandler(datasets)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthHandler_Readiness_Loaded(t *testing.T) {
	loadedAt := time.Date(2023, time.September, 1, 8, 0, 0, 0, time.UTC)
	datasets := new(mocks.MockDatasetProvider)
	datasets.On("Current").Return(&domain.Dataset{
		Records:  []domain.Record{{Code: 60001}, {Code: 60002}},
		LoadedAt: loadedAt,
	})
	h := handler.NewHealthHandler(datasets)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", http.NoBody)

	h.Readiness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["records"])
	assert.Equal(t, "2023-09-01T08:00:00Z", body["loaded_at"])
}
