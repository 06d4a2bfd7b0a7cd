package motor

import (
	"time"

	"motortrack/internal/domain"
)

// CreateMotorRequest represents a new tracked motor. Fields mirror the
// multi-tab registration form: identity, electrical and mechanical
// specs, then condition and location.
type CreateMotorRequest struct {
	CompanyID int64  `json:"company_id" validate:"required"`
	MotorID   string `json:"motor_id" validate:"required"`

	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Type         string `json:"type" validate:"required,oneof=AC DC Servo Generator Turbine"`

	Voltage        string `json:"voltage"`
	Amperage       string `json:"amperage"`
	Power          string `json:"power"`
	Phase          string `json:"phase" validate:"omitempty,oneof=single three"`
	Frequency      string `json:"frequency"`
	ConnectionType string `json:"connection_type"`

	RPM             string `json:"rpm"`
	FrameSize       string `json:"frame_size"`
	MountingType    string `json:"mounting_type"`
	InsulationClass string `json:"insulation_class"`
	DutyCycle       string `json:"duty_cycle"`
	Environment     string `json:"environment"`

	Condition      string     `json:"condition" validate:"omitempty,oneof=excellent good fair poor"`
	Location       string     `json:"location"`
	TechnicalNotes string     `json:"technical_notes"`
	LastService    *time.Time `json:"last_service"`
}

// ListResponse represents the filtered motor collection
type ListResponse struct {
	Motors []domain.Motor `json:"motors"`
	Total  int            `json:"total"`
}
