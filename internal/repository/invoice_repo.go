package repository

import (
	"context"

	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// List returns all invoices with company and job attached, newest first.
func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Job").
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, normalizeErr(err)
}

// GetByID fetches an invoice by its ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Job").
		First(&invoice, id).Error
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &invoice, nil
}

// Create inserts a new invoice.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.Status == "" {
		invoice.Status = domain.InvoiceDraft
	}
	if invoice.PaymentTerms == 0 {
		invoice.PaymentTerms = 30
	}
	return normalizeErr(r.db.WithContext(ctx).Create(invoice).Error)
}

// Update applies the given fields to an invoice and returns the
// persisted row.
func (r *InvoiceRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Invoice{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&invoice, id).Error
	})
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &invoice, nil
}
