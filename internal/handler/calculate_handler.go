package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"vosul/internal/service"
)

// CalculateHandler exposes the operation registry over HTTP.
type CalculateHandler struct {
	registry *service.OperationRegistry
	errorResponder
}

// NewCalculateHandler creates a new CalculateHandler.
func NewCalculateHandler(registry *service.OperationRegistry, log zerolog.Logger) *CalculateHandler {
	return &CalculateHandler{registry: registry, errorResponder: errorResponder{log: log}}
}

type calculateRequest struct {
	Function string         `json:"function"`
	Params   service.Params `json:"params"`
}

type calculateResult struct {
	Function string         `json:"function"`
	Params   service.Params `json:"params"`
	Result   any            `json:"result"`
}

// Root handles GET /
func (h *CalculateHandler) Root(c *gin.Context) {
	RespondOK(c, gin.H{
		"message":             "vosul collection reporting service",
		"available_functions": h.registry.Names(),
	})
}

// CalculateGet handles GET /calculate?function=name&key=value...
// Every query parameter other than function is passed to the operation.
func (h *CalculateHandler) CalculateGet(c *gin.Context) {
	query := c.Request.URL.Query()
	name := query.Get("function")
	params := make(service.Params, len(query))
	for key, values := range query {
		if key == "function" || len(values) == 0 {
			continue
		}
		params[key] = values[0]
	}
	h.invoke(c, name, params)
}

// CalculatePost handles POST /calculate with {"function": ..., "params": {...}}.
func (h *CalculateHandler) CalculatePost(c *gin.Context) {
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}
	if req.Params == nil {
		req.Params = service.Params{}
	}
	h.invoke(c, req.Function, req.Params)
}

func (h *CalculateHandler) invoke(c *gin.Context, name string, params service.Params) {
	if name == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_PARAMETER", "function is required")
		return
	}

	result, err := h.registry.Invoke(c.Request.Context(), name, params)
	if err != nil {
		h.handleError(c, err)
		return
	}

	RespondOK(c, calculateResult{Function: name, Params: params, Result: result})
}
