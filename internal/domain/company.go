package domain

import "time"

// CompanyStatus represents company account status
type CompanyStatus string

const (
	CompanyActive     CompanyStatus = "active"
	CompanyInactive   CompanyStatus = "inactive"
	CompanyPaymentDue CompanyStatus = "payment_due"
	CompanyOverdue    CompanyStatus = "overdue"
)

// Company represents a B2B client of the repair workshop.
// MotorCount and ActiveJobs are counters maintained by the repository
// layer; status is independent of them.
type Company struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	ContactName string `gorm:"not null" json:"contact_name"`
	Email       string `gorm:"not null" json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`

	PaymentTerms int           `gorm:"not null;default:30" json:"payment_terms"`
	Status       CompanyStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`

	MotorCount int `gorm:"not null;default:0" json:"motor_count"`
	ActiveJobs int `gorm:"not null;default:0" json:"active_jobs"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActive returns true if the company is an active client
func (c *Company) IsActive() bool {
	return c.Status == CompanyActive
}
