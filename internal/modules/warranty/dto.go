package warranty

import (
	"time"

	"motortrack/internal/domain"
)

// CreateWarrantyRequest represents a new warranty on completed job work
type CreateWarrantyRequest struct {
	JobID     int64 `json:"job_id" validate:"required"`
	CompanyID int64 `json:"company_id" validate:"required"`
	MotorID   int64 `json:"motor_id" validate:"required"`

	WorkDescription string    `json:"work_description" validate:"required"`
	WarrantyStart   time.Time `json:"warranty_start" validate:"required"`
	WarrantyEnd     time.Time `json:"warranty_end" validate:"required"`
	WarrantyPeriod  int       `json:"warranty_period" validate:"required,min=1"`

	Notes string `json:"notes"`
}

// ClaimRequest opens a claim against a warranty
type ClaimRequest struct {
	Description string `json:"description" validate:"required"`
}

// ExtendRequest extends a warranty, keeping the original end date as an
// audit trail
type ExtendRequest struct {
	Months int    `json:"months" validate:"required,min=1"`
	Reason string `json:"reason" validate:"required"`
}

// ListResponse represents the filtered warranty collection
type ListResponse struct {
	Warranties []domain.Warranty `json:"warranties"`
	Total      int               `json:"total"`
}

// Stats summarizes warranty coverage.
type Stats struct {
	Active            int `json:"active"`
	ExpiringSoon      int `json:"expiring_soon"`
	ClaimsThisYear    int `json:"claims_this_year"`
	AvgWarrantyPeriod int `json:"avg_warranty_period"`
}
