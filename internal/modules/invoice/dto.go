package invoice

import (
	"time"

	"motortrack/internal/domain"
)

// CreateInvoiceRequest represents a new billing document
type CreateInvoiceRequest struct {
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	JobID         int64  `json:"job_id" validate:"required"`
	CompanyID     int64  `json:"company_id" validate:"required"`

	Subtotal    float64 `json:"subtotal" validate:"required"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount" validate:"required"`

	Status    string    `json:"status" validate:"omitempty,oneof=draft sent paid overdue cancelled"`
	IssueDate time.Time `json:"issue_date" validate:"required"`
	DueDate   time.Time `json:"due_date" validate:"required"`

	PaymentTerms int    `json:"payment_terms" validate:"omitempty,min=1"`
	Notes        string `json:"notes"`
}

// UpdateStatusRequest represents an invoice status change. Payment
// details accompany the move to paid.
type UpdateStatusRequest struct {
	Status           string     `json:"status" validate:"required,oneof=draft sent paid overdue cancelled"`
	PaidDate         *time.Time `json:"paid_date"`
	PaymentMethod    string     `json:"payment_method"`
	PaymentReference string     `json:"payment_reference"`
}

// ListResponse represents the filtered invoice collection
type ListResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
	Total    int              `json:"total"`
}

// Stats summarizes the billing position.
type Stats struct {
	Outstanding        float64 `json:"outstanding"`
	CollectedThisMonth float64 `json:"collected_this_month"`
	OverdueAmount      float64 `json:"overdue_amount"`
}
