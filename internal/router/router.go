package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vosul/internal/config"
	"vosul/internal/handler"
	"vosul/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log zerolog.Logger,
	calcH *handler.CalculateHandler,
	dashH *handler.DashboardHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/", calcH.Root)

	// Report computation is CPU bound; limit it separately from health checks
	limited := r.Group("")
	limited.Use(middleware.RateLimit(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))
	limited.GET("/calculate", calcH.CalculateGet)
	limited.POST("/calculate", calcH.CalculatePost)
	limited.POST("/dashboard", dashH.Dashboard)
	limited.GET("/reports/:table/export", dashH.ExportTable)

	return r
}
