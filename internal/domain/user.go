package domain

import "time"

// UserRole represents workshop staff role
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleTechnician UserRole = "technician"
	RoleViewer     UserRole = "viewer"
)

// User represents a member of the workshop staff.
type User struct {
	ID       int64    `gorm:"primaryKey" json:"id"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	Name     string   `gorm:"not null" json:"name"`
	Role     UserRole `gorm:"type:varchar(20);not null;default:viewer" json:"role"`
	Phone    string   `json:"phone,omitempty"`
	IsActive bool     `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
