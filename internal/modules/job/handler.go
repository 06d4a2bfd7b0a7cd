package job

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/pkg/validator"
	"motortrack/internal/repository"
)

// Handler handles job HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates job handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/jobs
// @Summary List jobs
// @Description List repair jobs with optional search, status and priority filters
// @Tags Jobs
// @Produce json
// @Param search query string false "Case-insensitive substring match on job number, description, company name"
// @Param status query string false "Filter by status" Enums(all, pending, in_progress, completed, delivered, under_warranty)
// @Param priority query string false "Filter by priority" Enums(all, low, normal, high, urgent)
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /jobs [get]
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	jobs, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Jobs:  jobs,
		Total: len(jobs),
	})
}

// Get handles GET /api/v1/jobs/:id
// @Summary Get job by ID
// @Tags Jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Response{data=domain.Job}
// @Failure 404 {object} response.Response
// @Router /jobs/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			response.Error(c, http.StatusNotFound, "JOB_NOT_FOUND", "Job not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, job)
}

// Create handles POST /api/v1/jobs
// @Summary Create job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param request body CreateJobRequest true "Job data"
// @Success 201 {object} response.Response{data=domain.Job}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /jobs [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	job, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, job)
}

// Update handles PATCH /api/v1/jobs/:id
// @Summary Update job
// @Description Partial update; status changes must follow the allowed transitions
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Fields to update"
// @Success 200 {object} response.Response{data=domain.Job}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /jobs/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid job ID")
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	job, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			response.Error(c, http.StatusNotFound, "JOB_NOT_FOUND", "Job not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Job status transition not allowed")
		default:
			serviceError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, job)
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
