package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vosul/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
// Client errors carry the wrapped message so callers see which parameter or
// operation was rejected; server errors carry the underlying message too.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrUnknownOperation):
		return http.StatusNotFound, "OPERATION_NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrMissingParameter):
		return http.StatusBadRequest, "MISSING_PARAMETER", err.Error()
	case errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest, "INVALID_PARAMETER", err.Error()
	case errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest, "INVALID_DATE", err.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported export format; allowed: csv, xlsx"
	case errors.Is(err, domain.ErrUnknownTable):
		return http.StatusNotFound, "TABLE_NOT_FOUND", "unknown report table; allowed: responsible, province"
	case errors.Is(err, domain.ErrDatasetNotLoaded):
		return http.StatusServiceUnavailable, "DATASET_NOT_LOADED", "dataset is not loaded yet"
	case errors.Is(err, domain.ErrExportFailed):
		return http.StatusInternalServerError, "EXPORT_FAILED", err.Error()
	case errors.Is(err, domain.ErrComputationFailed):
		return http.StatusInternalServerError, "COMPUTATION_FAILED", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", err.Error()
	}
}

// errorResponder maps errors to responses and logs server-side failures.
type errorResponder struct {
	log zerolog.Logger
}

// handleError maps a domain error and sends the appropriate error response.
func (e errorResponder) handleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		e.log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("internal error")
	}
	_ = c.Error(err)
	RespondError(c, status, code, msg)
}
