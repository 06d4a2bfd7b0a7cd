package invoice

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines invoice data access
type Repository interface {
	List(ctx context.Context) ([]domain.Invoice, error)
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	Create(ctx context.Context, invoice *domain.Invoice) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Invoice, error)
}

// CompanyDirectory resolves company display projections.
type CompanyDirectory interface {
	Lookup(id int64) *domain.Company
}

// JobDirectory resolves job display projections.
type JobDirectory interface {
	Lookup(id int64) *domain.Job
}

// Service owns the invoice snapshot cache and mutation rules.
type Service struct {
	repo      Repository
	companies CompanyDirectory
	jobs      JobDirectory
	cache     *store.Collection[domain.Invoice]
	now       func() time.Time
}

// NewService creates invoice service
func NewService(repo Repository, companies CompanyDirectory, jobs JobDirectory) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		jobs:      jobs,
		cache:     store.NewCollection[domain.Invoice](),
		now:       time.Now,
	}
}

// Invoices returns the cached collection, refreshing it when stale.
func (s *Service) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	if s.cache.Stale() {
		invoices, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(invoices)
	}
	return s.cache.Snapshot(), nil
}

// List returns invoices passing the given filters.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Invoice, error) {
	invoices, err := s.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(invoices, f), nil
}

// GetByID returns an invoice by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	invoice, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	return invoice, err
}

// Stats summarizes the billing position at the current time.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	invoices, err := s.Invoices(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(invoices, s.now()), nil
}

// Add creates an invoice, resolves company and job projections from the
// related caches, and prepends the result.
func (s *Service) Add(ctx context.Context, req *CreateInvoiceRequest) (*domain.Invoice, error) {
	invoice := &domain.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		JobID:         req.JobID,
		CompanyID:     req.CompanyID,
		Subtotal:      req.Subtotal,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   req.TotalAmount,
		Status:        domain.InvoiceStatus(req.Status),
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		PaymentTerms:  req.PaymentTerms,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	invoice.Company = s.companies.Lookup(invoice.CompanyID)
	invoice.Job = s.jobs.Lookup(invoice.JobID)
	s.cache.Prepend(*invoice)

	return invoice, nil
}

// UpdateStatus moves an invoice along the allowed transitions. Moving
// to paid stamps the paid date (defaulting to now) and payment details.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *UpdateStatusRequest) (*domain.Invoice, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := domain.InvoiceStatus(req.Status)
	if next != current.Status && !current.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]any{"status": next}
	if next == domain.InvoicePaid {
		paidDate := s.now()
		if req.PaidDate != nil {
			paidDate = *req.PaidDate
		}
		updates["paid_date"] = paidDate
		if req.PaymentMethod != "" {
			updates["payment_method"] = req.PaymentMethod
		}
		if req.PaymentReference != "" {
			updates["payment_reference"] = req.PaymentReference
		}
	}

	invoice, err := s.repo.Update(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}

	// Keep the display projections the stored row does not carry.
	invoice.Company = current.Company
	invoice.Job = current.Job

	s.cache.Patch(
		func(i domain.Invoice) bool { return i.ID == id },
		func(i *domain.Invoice) { *i = *invoice },
	)
	return invoice, nil
}
