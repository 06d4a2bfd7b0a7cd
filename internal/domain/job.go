package domain

import "time"

// JobStatus represents repair job status
type JobStatus string

const (
	JobPending       JobStatus = "pending"
	JobInProgress    JobStatus = "in_progress"
	JobCompleted     JobStatus = "completed"
	JobDelivered     JobStatus = "delivered"
	JobUnderWarranty JobStatus = "under_warranty"
)

// JobPriority represents repair job priority
type JobPriority string

const (
	PriorityLow    JobPriority = "low"
	PriorityNormal JobPriority = "normal"
	PriorityHigh   JobPriority = "high"
	PriorityUrgent JobPriority = "urgent"
)

// Job represents a unit of repair work against one motor for one company.
type Job struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	JobNumber string `gorm:"not null" json:"job_number"`
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	MotorID   int64  `gorm:"column:motor_id;not null;index" json:"motor_id"`

	Description string      `gorm:"not null" json:"description"`
	Status      JobStatus   `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Priority    JobPriority `gorm:"type:varchar(10);not null;default:normal" json:"priority"`

	EstimatedCost float64 `gorm:"type:decimal(12,2)" json:"estimated_cost,omitempty"`
	ActualCost    float64 `gorm:"type:decimal(12,2)" json:"actual_cost,omitempty"`
	LaborRate     float64 `gorm:"type:decimal(8,2)" json:"labor_rate,omitempty"`
	LaborHours    float64 `gorm:"type:decimal(8,2)" json:"labor_hours,omitempty"`
	PartsCost     float64 `gorm:"type:decimal(12,2)" json:"parts_cost,omitempty"`

	StartDate     *time.Time `json:"start_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`

	TechnicianID       *int64 `json:"technician_id,omitempty"`
	ProgressPercentage int    `gorm:"not null;default:0" json:"progress_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display
	Company    *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Motor      *Motor   `gorm:"foreignKey:MotorID" json:"motor,omitempty"`
	Technician *User    `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
}

// IsActive returns true while the job still occupies the workshop
func (j *Job) IsActive() bool {
	return j.Status == JobPending || j.Status == JobInProgress
}

// ProgressForStatus maps a job status to its display progress percentage.
// Unknown statuses map to 0.
func ProgressForStatus(s JobStatus) int {
	switch s {
	case JobPending:
		return 10
	case JobInProgress:
		return 50
	case JobCompleted:
		return 85
	case JobDelivered, JobUnderWarranty:
		return 100
	default:
		return 0
	}
}
