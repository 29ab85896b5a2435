package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"vosul/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	datasets port.DatasetProvider
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(datasets port.DatasetProvider) *HealthHandler {
	return &HealthHandler{datasets: datasets}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. The service is ready once a dataset has
// been published.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ds := h.datasets.Current()
	if ds == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "dataset not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"records":   ds.Len(),
		"loaded_at": ds.LoadedAt.Format(time.RFC3339),
	})
}
