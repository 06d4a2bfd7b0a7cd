package domain

import "time"

// WarrantyStatus represents warranty lifecycle status
type WarrantyStatus string

const (
	WarrantyActive   WarrantyStatus = "active"
	WarrantyExpired  WarrantyStatus = "expired"
	WarrantyClaimed  WarrantyStatus = "claimed"
	WarrantyExtended WarrantyStatus = "extended"
)

// ClaimStatus represents the state of a warranty claim
type ClaimStatus string

const (
	ClaimNone     ClaimStatus = "none"
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimDenied   ClaimStatus = "denied"
)

// Warranty represents a time-bounded guarantee attached to completed job
// work. OriginalEndDate, ExtensionReason and ExtensionMonths form the
// audit trail for extensions.
type Warranty struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	JobID     int64 `gorm:"not null;index" json:"job_id"`
	CompanyID int64 `gorm:"not null;index" json:"company_id"`
	MotorID   int64 `gorm:"column:motor_id;not null;index" json:"motor_id"`

	WorkDescription string    `gorm:"not null" json:"work_description"`
	WarrantyStart   time.Time `gorm:"not null" json:"warranty_start"`
	WarrantyEnd     time.Time `gorm:"not null" json:"warranty_end"`
	WarrantyPeriod  int       `gorm:"not null" json:"warranty_period"`

	Status      WarrantyStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	ClaimStatus ClaimStatus    `gorm:"type:varchar(10);not null;default:none" json:"claim_status"`

	LastInspection   *time.Time `json:"last_inspection,omitempty"`
	ClaimDate        *time.Time `json:"claim_date,omitempty"`
	ClaimDescription string     `json:"claim_description,omitempty"`
	ClaimResolution  string     `json:"claim_resolution,omitempty"`

	OriginalEndDate *time.Time `json:"original_end_date,omitempty"`
	ExtensionReason string     `json:"extension_reason,omitempty"`
	ExtensionMonths int        `gorm:"not null;default:0" json:"extension_months"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Motor   *Motor   `gorm:"foreignKey:MotorID" json:"motor,omitempty"`
	Job     *Job     `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
