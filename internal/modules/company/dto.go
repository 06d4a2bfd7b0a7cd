package company

import "motortrack/internal/domain"

// CreateCompanyRequest represents a new client company
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactName string `json:"contact_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`

	PaymentTerms int    `json:"payment_terms" validate:"omitempty,min=1"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive payment_due overdue"`
}

// UpdateCompanyRequest represents a partial company update
type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	ContactName  *string `json:"contact_name"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	PaymentTerms *int    `json:"payment_terms" validate:"omitempty,min=1"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive payment_due overdue"`
}

// ListResponse represents the filtered company collection
type ListResponse struct {
	Companies []domain.Company `json:"companies"`
	Total     int              `json:"total"`
}
