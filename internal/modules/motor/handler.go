package motor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/pkg/validator"
	"motortrack/internal/repository"
)

// Handler handles motor HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates motor handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/motors
// @Summary List motors
// @Description List tracked motors with optional search, type and company filters
// @Tags Motors
// @Produce json
// @Param search query string false "Case-insensitive substring match on motor id, manufacturer, model, serial number"
// @Param type query string false "Filter by type" Enums(all, AC, DC, Servo, Generator, Turbine)
// @Param company_id query int false "Filter by owning company"
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /motors [get]
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Search: c.Query("search"),
		Type:   c.Query("type"),
	}
	if v := c.Query("company_id"); v != "" && v != "all" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company_id filter")
			return
		}
		f.CompanyID = id
	}

	motors, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Motors: motors,
		Total:  len(motors),
	})
}

// Get handles GET /api/v1/motors/:id
// @Summary Get motor by ID
// @Tags Motors
// @Produce json
// @Param id path int true "Motor ID"
// @Success 200 {object} response.Response{data=domain.Motor}
// @Failure 404 {object} response.Response
// @Router /motors/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid motor ID")
		return
	}

	motor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrMotorNotFound) {
			response.Error(c, http.StatusNotFound, "MOTOR_NOT_FOUND", "Motor not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, motor)
}

// Create handles POST /api/v1/motors
// @Summary Register motor
// @Tags Motors
// @Accept json
// @Produce json
// @Param request body CreateMotorRequest true "Motor data"
// @Success 201 {object} response.Response{data=domain.Motor}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /motors [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMotorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	motor, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, motor)
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
