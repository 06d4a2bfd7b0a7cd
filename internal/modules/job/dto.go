package job

import (
	"time"

	"motortrack/internal/domain"
)

// CreateJobRequest represents a new repair job
type CreateJobRequest struct {
	JobNumber   string `json:"job_number" validate:"required"`
	CompanyID   int64  `json:"company_id" validate:"required"`
	MotorID     int64  `json:"motor_id" validate:"required"`
	Description string `json:"description" validate:"required"`

	Status   string `json:"status" validate:"omitempty,oneof=pending in_progress completed delivered under_warranty"`
	Priority string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`

	EstimatedCost float64 `json:"estimated_cost"`
	LaborRate     float64 `json:"labor_rate"`

	StartDate    *time.Time `json:"start_date"`
	DueDate      *time.Time `json:"due_date"`
	TechnicianID *int64     `json:"technician_id"`
}

// UpdateJobRequest represents a partial job update. Status changes are
// validated against the allowed transitions.
type UpdateJobRequest struct {
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in_progress completed delivered under_warranty"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low normal high urgent"`

	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
	LaborRate     *float64 `json:"labor_rate"`
	LaborHours    *float64 `json:"labor_hours"`
	PartsCost     *float64 `json:"parts_cost"`

	StartDate     *time.Time `json:"start_date"`
	DueDate       *time.Time `json:"due_date"`
	CompletedDate *time.Time `json:"completed_date"`
	DeliveryDate  *time.Time `json:"delivery_date"`

	TechnicianID *int64 `json:"technician_id"`
}

// ListResponse represents the filtered job collection
type ListResponse struct {
	Jobs  []domain.Job `json:"jobs"`
	Total int          `json:"total"`
}
