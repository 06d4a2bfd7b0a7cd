package repository

import (
	"context"

	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type MotorRepository struct {
	db *gorm.DB
}

func NewMotorRepository(db *gorm.DB) *MotorRepository {
	return &MotorRepository{db: db}
}

// List returns all motors with their owning company attached, newest
// first.
func (r *MotorRepository) List(ctx context.Context) ([]domain.Motor, error) {
	var motors []domain.Motor
	err := r.db.WithContext(ctx).
		Preload("Company").
		Order("created_at DESC").
		Find(&motors).Error
	return motors, normalizeErr(err)
}

// GetByID fetches a motor by its ID
func (r *MotorRepository) GetByID(ctx context.Context, id int64) (*domain.Motor, error) {
	var motor domain.Motor
	err := r.db.WithContext(ctx).
		Preload("Company").
		First(&motor, id).Error
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &motor, nil
}

// Create inserts a new motor and increments the owning company's motor
// counter in the same transaction.
func (r *MotorRepository) Create(ctx context.Context, motor *domain.Motor) error {
	if motor.Condition == "" {
		motor.Condition = domain.ConditionGood
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(motor).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Company{}).
			Where("id = ?", motor.CompanyID).
			UpdateColumn("motor_count", gorm.Expr("motor_count + 1")).Error
	})
	return normalizeErr(err)
}
