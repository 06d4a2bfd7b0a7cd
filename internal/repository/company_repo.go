package repository

import (
	"context"

	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns all companies, newest first.
func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var companies []domain.Company
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&companies).Error
	return companies, normalizeErr(err)
}

// GetByID fetches a company by its ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &company, nil
}

// Create inserts a new company and fills in the server-assigned id and
// timestamps. Status defaults to active, payment terms to 30 days.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if company.Status == "" {
		company.Status = domain.CompanyActive
	}
	if company.PaymentTerms == 0 {
		company.PaymentTerms = 30
	}
	return normalizeErr(r.db.WithContext(ctx).Create(company).Error)
}

// Update applies the given fields to a company and returns the persisted
// row.
func (r *CompanyRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Company, error) {
	var company domain.Company
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Company{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&company, id).Error
	})
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &company, nil
}
