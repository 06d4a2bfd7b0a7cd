package company

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/pkg/validator"
	"motortrack/internal/repository"
)

// Handler handles company HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates company handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/companies
// @Summary List companies
// @Description List client companies with optional search and status filter
// @Tags Companies
// @Produce json
// @Param search query string false "Case-insensitive substring match on name, contact name, email"
// @Param status query string false "Filter by status" Enums(all, active, inactive, payment_due, overdue)
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /companies [get]
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	companies, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Companies: companies,
		Total:     len(companies),
	})
}

// Get handles GET /api/v1/companies/:id
// @Summary Get company by ID
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} response.Response{data=domain.Company}
// @Failure 404 {object} response.Response
// @Router /companies/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	company, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "COMPANY_NOT_FOUND", "Company not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// Create handles POST /api/v1/companies
// @Summary Create company
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body CreateCompanyRequest true "Company data"
// @Success 201 {object} response.Response{data=domain.Company}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /companies [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	company, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, company)
}

// Update handles PATCH /api/v1/companies/:id
// @Summary Update company
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} response.Response{data=domain.Company}
// @Failure 404 {object} response.Response
// @Router /companies/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	company, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			response.Error(c, http.StatusNotFound, "COMPANY_NOT_FOUND", "Company not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
