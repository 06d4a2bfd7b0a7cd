package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/repository"
)

// Handler handles report HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates report handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetOverview handles GET /api/v1/reports/overview
// @Summary Analytics overview
// @Description Revenue trend, motor type distribution, top customers, technician performance
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Response{data=Overview}
// @Failure 500 {object} response.Response
// @Router /reports/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrSchemaMissing) {
			response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, overview)
}
