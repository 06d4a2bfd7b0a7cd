package domain

import "time"

// MotorType represents motor classification
type MotorType string

const (
	MotorAC        MotorType = "AC"
	MotorDC        MotorType = "DC"
	MotorServo     MotorType = "Servo"
	MotorGenerator MotorType = "Generator"
	MotorTurbine   MotorType = "Turbine"
)

// MotorCondition represents assessed motor condition
type MotorCondition string

const (
	ConditionExcellent MotorCondition = "excellent"
	ConditionGood      MotorCondition = "good"
	ConditionFair      MotorCondition = "fair"
	ConditionPoor      MotorCondition = "poor"
)

// MotorPhase represents electrical phase
type MotorPhase string

const (
	PhaseSingle MotorPhase = "single"
	PhaseThree  MotorPhase = "three"
)

// Motor represents a piece of equipment owned by a company.
// MotorID is the customer-supplied identifier, unique per company by
// convention only; nothing enforces it globally.
type Motor struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	CompanyID int64  `gorm:"not null;index" json:"company_id"`
	MotorID   string `gorm:"column:motor_id;not null" json:"motor_id"`

	Manufacturer string    `json:"manufacturer,omitempty"`
	Model        string    `json:"model,omitempty"`
	SerialNumber string    `json:"serial_number,omitempty"`
	Type         MotorType `gorm:"type:varchar(20);not null" json:"type"`

	// Electrical specs
	Voltage        string     `json:"voltage,omitempty"`
	Amperage       string     `json:"amperage,omitempty"`
	Power          string     `json:"power,omitempty"`
	Phase          MotorPhase `gorm:"type:varchar(10)" json:"phase,omitempty"`
	Frequency      string     `json:"frequency,omitempty"`
	ConnectionType string     `json:"connection_type,omitempty"`

	// Mechanical specs
	RPM             string `json:"rpm,omitempty"`
	FrameSize       string `json:"frame_size,omitempty"`
	MountingType    string `json:"mounting_type,omitempty"`
	InsulationClass string `json:"insulation_class,omitempty"`
	DutyCycle       string `json:"duty_cycle,omitempty"`
	Environment     string `json:"environment,omitempty"`

	Condition      MotorCondition `gorm:"type:varchar(20);not null;default:good" json:"condition"`
	Location       string         `json:"location,omitempty"`
	TechnicalNotes string         `json:"technical_notes,omitempty"`
	LastService    *time.Time     `json:"last_service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined for display
	Company *Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
