package dashboard

import (
	"context"
	"time"

	"motortrack/internal/domain"
)

// CompanySource provides the cached company collection.
type CompanySource interface {
	Companies(ctx context.Context) ([]domain.Company, error)
}

// JobSource provides the cached job collection.
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

// InvoiceSource provides the cached invoice collection.
type InvoiceSource interface {
	Invoices(ctx context.Context) ([]domain.Invoice, error)
}

// Service computes dashboard aggregates from the entity caches. It
// holds no state of its own; each request reads whatever the sources
// currently serve.
type Service struct {
	companies CompanySource
	jobs      JobSource
	invoices  InvoiceSource
	now       func() time.Time
}

// NewService creates dashboard service
func NewService(companies CompanySource, jobs JobSource, invoices InvoiceSource) *Service {
	return &Service{
		companies: companies,
		jobs:      jobs,
		invoices:  invoices,
		now:       time.Now,
	}
}

// Stats assembles the dashboard aggregate payload.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	companies, err := s.companies.Companies(ctx)
	if err != nil {
		return Stats{}, err
	}
	jobs, err := s.jobs.Jobs(ctx)
	if err != nil {
		return Stats{}, err
	}
	invoices, err := s.invoices.Invoices(ctx)
	if err != nil {
		return Stats{}, err
	}

	now := s.now()
	return Stats{
		ActiveCompanies: ActiveCompanyCount(companies),
		TotalMotors:     TotalMotors(companies),
		JobsThisMonth:   JobsThisMonth(jobs, now),
		ActiveJobs:      ActiveJobCount(jobs),
		MonthlyRevenue:  MonthlyRevenue(invoices, now),
		PendingInvoices: PendingInvoiceCount(invoices),
	}, nil
}
