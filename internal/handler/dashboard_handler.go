package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vosul/internal/domain"
	"vosul/internal/service"
	"vosul/internal/tableexport"
)

// DashboardHandler serves the combined dashboard and table downloads.
type DashboardHandler struct {
	reportService service.ReportService
	errorResponder
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService service.ReportService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{reportService: reportService, errorResponder: errorResponder{log: log}}
}

type dashboardRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Dashboard handles POST /dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	var req dashboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	start := strings.TrimSpace(req.StartDate)
	end := strings.TrimSpace(req.EndDate)
	if start == "" || end == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_PARAMETER", "Missing dates")
		return
	}

	out, err := h.reportService.Dashboard(c.Request.Context(), domain.ReportQuery{StartDate: start, EndDate: end})
	if err != nil {
		h.handleError(c, err)
		return
	}

	RespondOK(c, out)
}

// ExportTable handles GET /reports/:table/export?start_date=&end_date=&format=csv|xlsx
func (h *DashboardHandler) ExportTable(c *gin.Context) {
	kind := domain.TableKind(c.Param("table"))
	start := strings.TrimSpace(c.Query("start_date"))
	end := strings.TrimSpace(c.Query("end_date"))
	if start == "" || end == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_PARAMETER", "Missing dates")
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	if format != "csv" && format != "xlsx" {
		h.handleError(c, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format))
		return
	}

	table, err := h.reportService.Table(c.Request.Context(), kind, domain.ReportQuery{StartDate: start, EndDate: end})
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := tableexport.BuildFilename(kind, start, end, format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	switch format {
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Status(http.StatusOK)
		if err := tableexport.WriteXLSXTo(c.Writer, table); err != nil {
			h.log.Error().Err(err).Str("table", string(kind)).Msg("writing xlsx download")
		}
	default:
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if _, err := c.Writer.Write(tableexport.BOM); err != nil {
			return
		}
		w := tableexport.NewCSVWriter(c.Writer)
		if err := w.WriteTable(table); err != nil {
			h.log.Error().Err(err).Str("table", string(kind)).Msg("writing csv download")
			return
		}
		w.Flush()
	}
}
