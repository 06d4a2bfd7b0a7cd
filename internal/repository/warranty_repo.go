package repository

import (
	"context"

	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type WarrantyRepository struct {
	db *gorm.DB
}

func NewWarrantyRepository(db *gorm.DB) *WarrantyRepository {
	return &WarrantyRepository{db: db}
}

// List returns all warranties with company, motor and job attached,
// newest first.
func (r *WarrantyRepository) List(ctx context.Context) ([]domain.Warranty, error) {
	var warranties []domain.Warranty
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Motor").
		Preload("Job").
		Order("created_at DESC").
		Find(&warranties).Error
	return warranties, normalizeErr(err)
}

// GetByID fetches a warranty by its ID
func (r *WarrantyRepository) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	var warranty domain.Warranty
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Motor").
		Preload("Job").
		First(&warranty, id).Error
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &warranty, nil
}

// Create inserts a new warranty.
func (r *WarrantyRepository) Create(ctx context.Context, warranty *domain.Warranty) error {
	if warranty.Status == "" {
		warranty.Status = domain.WarrantyActive
	}
	if warranty.ClaimStatus == "" {
		warranty.ClaimStatus = domain.ClaimNone
	}
	return normalizeErr(r.db.WithContext(ctx).Create(warranty).Error)
}

// Update applies the given fields to a warranty and returns the
// persisted row.
func (r *WarrantyRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Warranty, error) {
	var warranty domain.Warranty
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Warranty{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&warranty, id).Error
	})
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &warranty, nil
}
