package warranty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/pkg/validator"
	"motortrack/internal/repository"
)

// Handler handles warranty HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates warranty handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/warranties
// @Summary List warranties
// @Description List warranties with optional search and status filter
// @Tags Warranties
// @Produce json
// @Param search query string false "Case-insensitive substring match on job number, company name, motor id"
// @Param status query string false "Filter by status" Enums(all, active, expired, claimed, extended)
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /warranties [get]
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	warranties, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Warranties: warranties,
		Total:      len(warranties),
	})
}

// GetStats handles GET /api/v1/warranties/stats
// @Summary Warranty summary stats
// @Tags Warranties
// @Produce json
// @Success 200 {object} response.Response{data=Stats}
// @Failure 500 {object} response.Response
// @Router /warranties/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Get handles GET /api/v1/warranties/:id
// @Summary Get warranty by ID
// @Tags Warranties
// @Produce json
// @Param id path int true "Warranty ID"
// @Success 200 {object} response.Response{data=domain.Warranty}
// @Failure 404 {object} response.Response
// @Router /warranties/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid warranty ID")
		return
	}

	warranty, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrWarrantyNotFound) {
			response.Error(c, http.StatusNotFound, "WARRANTY_NOT_FOUND", "Warranty not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, warranty)
}

// Create handles POST /api/v1/warranties
// @Summary Create warranty
// @Tags Warranties
// @Accept json
// @Produce json
// @Param request body CreateWarrantyRequest true "Warranty data"
// @Success 201 {object} response.Response{data=domain.Warranty}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /warranties [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateWarrantyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	warranty, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, warranty)
}

// Claim handles POST /api/v1/warranties/:id/claim
// @Summary Open warranty claim
// @Tags Warranties
// @Accept json
// @Produce json
// @Param id path int true "Warranty ID"
// @Param request body ClaimRequest true "Claim details"
// @Success 200 {object} response.Response{data=domain.Warranty}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /warranties/{id}/claim [post]
func (h *Handler) Claim(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid warranty ID")
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	warranty, err := h.service.Claim(c.Request.Context(), id, &req)
	if err != nil {
		claimError(c, err)
		return
	}

	response.Success(c, http.StatusOK, warranty)
}

// Extend handles POST /api/v1/warranties/:id/extend
// @Summary Extend warranty
// @Tags Warranties
// @Accept json
// @Produce json
// @Param id path int true "Warranty ID"
// @Param request body ExtendRequest true "Extension details"
// @Success 200 {object} response.Response{data=domain.Warranty}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /warranties/{id}/extend [post]
func (h *Handler) Extend(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid warranty ID")
		return
	}

	var req ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	warranty, err := h.service.Extend(c.Request.Context(), id, &req)
	if err != nil {
		claimError(c, err)
		return
	}

	response.Success(c, http.StatusOK, warranty)
}

func claimError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrWarrantyNotFound):
		response.Error(c, http.StatusNotFound, "WARRANTY_NOT_FOUND", "Warranty not found")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Warranty status transition not allowed")
	default:
		serviceError(c, err)
	}
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
