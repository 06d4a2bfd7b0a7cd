package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/domain"
	"motortrack/internal/pkg/response"
	"motortrack/internal/repository"
)

// ListResponse wraps a user collection
type ListResponse struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

// Handler handles user HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates user handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/users
// @Summary List users
// @Description List active workshop staff; pass all=true to include deactivated accounts
// @Tags Users
// @Produce json
// @Param role query string false "Filter by role" Enums(technician)
// @Param all query bool false "Include deactivated accounts"
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	var (
		users []domain.User
		err   error
	)
	switch {
	case c.Query("role") == string(domain.RoleTechnician):
		users, err = h.service.Technicians(c.Request.Context())
	case c.Query("all") == "true":
		users, err = h.service.Users(c.Request.Context())
	default:
		users, err = h.service.Active(c.Request.Context())
	}
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Users: users,
		Total: len(users),
	})
}

// Get handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.Response{data=domain.User}
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, user)
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
