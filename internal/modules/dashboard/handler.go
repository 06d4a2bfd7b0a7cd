package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/repository"
)

// Handler handles dashboard HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates dashboard handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Dashboard aggregates
// @Description Workshop-wide counters and this-month revenue
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response{data=Stats}
// @Failure 500 {object} response.Response
// @Router /dashboard/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrSchemaMissing) {
			response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}
