package invoice

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"motortrack/internal/pkg/response"
	"motortrack/internal/pkg/validator"
	"motortrack/internal/repository"
)

// Handler handles invoice HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates invoice handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/invoices
// @Summary List invoices
// @Description List invoices with optional search and status filter
// @Tags Invoices
// @Produce json
// @Param search query string false "Case-insensitive substring match on invoice number, company name, job number"
// @Param status query string false "Filter by status" Enums(all, draft, sent, paid, overdue, cancelled)
// @Success 200 {object} response.Response{data=ListResponse}
// @Failure 500 {object} response.Response
// @Router /invoices [get]
func (h *Handler) List(c *gin.Context) {
	f := Filters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	invoices, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Invoices: invoices,
		Total:    len(invoices),
	})
}

// GetStats handles GET /api/v1/invoices/stats
// @Summary Invoice summary stats
// @Description Outstanding, collected-this-month and overdue totals
// @Tags Invoices
// @Produce json
// @Success 200 {object} response.Response{data=Stats}
// @Failure 500 {object} response.Response
// @Router /invoices/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// Get handles GET /api/v1/invoices/:id
// @Summary Get invoice by ID
// @Tags Invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} response.Response{data=domain.Invoice}
// @Failure 404 {object} response.Response
// @Router /invoices/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid invoice ID")
		return
	}

	invoice, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrInvoiceNotFound) {
			response.Error(c, http.StatusNotFound, "INVOICE_NOT_FOUND", "Invoice not found")
			return
		}
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, invoice)
}

// Create handles POST /api/v1/invoices
// @Summary Create invoice
// @Tags Invoices
// @Accept json
// @Produce json
// @Param request body CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} response.Response{data=domain.Invoice}
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /invoices [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	invoice, err := h.service.Add(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, invoice)
}

// UpdateStatus handles PATCH /api/v1/invoices/:id/status
// @Summary Update invoice status
// @Description Status changes must follow the allowed transitions; moving to paid stamps payment details
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param request body UpdateStatusRequest true "Status change"
// @Success 200 {object} response.Response{data=domain.Invoice}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid invoice ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	invoice, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvoiceNotFound):
			response.Error(c, http.StatusNotFound, "INVOICE_NOT_FOUND", "Invoice not found")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Invoice status transition not allowed")
		default:
			serviceError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, invoice)
}

func serviceError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSchemaMissing) {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_MISSING", err.Error())
		return
	}
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
