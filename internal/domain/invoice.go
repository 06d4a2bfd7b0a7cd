package domain

import "time"

// InvoiceStatus represents billing status
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice represents a billing document for a job.
type Invoice struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	InvoiceNumber string `gorm:"not null" json:"invoice_number"`
	JobID         int64  `gorm:"not null;index" json:"job_id"`
	CompanyID     int64  `gorm:"not null;index" json:"company_id"`

	Subtotal    float64 `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxAmount   float64 `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount"`
	TotalAmount float64 `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	Status    InvoiceStatus `gorm:"type:varchar(20);not null;default:draft" json:"status"`
	IssueDate time.Time     `gorm:"not null" json:"issue_date"`
	DueDate   time.Time     `gorm:"not null" json:"due_date"`
	PaidDate  *time.Time    `json:"paid_date,omitempty"`

	PaymentMethod    string `json:"payment_method,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`
	PaymentTerms     int    `gorm:"not null;default:30" json:"payment_terms"`
	Notes            string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

// IsPastDue reports the derived display condition: the due date has
// passed and the invoice is not paid. Distinct from the stored "overdue"
// status, which is never written automatically.
func (i *Invoice) IsPastDue(now time.Time) bool {
	return i.DueDate.Before(now) && i.Status != InvoicePaid
}
