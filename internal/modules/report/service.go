package report

import (
	"context"
	"time"

	"motortrack/internal/domain"
)

// Overview is the analytics payload for the reports page.
type Overview struct {
	RevenueTrend []MonthlyPoint    `json:"revenue_trend"`
	MotorTypes   []TypeCount       `json:"motor_types"`
	TopCustomers []CustomerRevenue `json:"top_customers"`
	Technicians  []TechnicianStats `json:"technicians"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

// CompanySource provides the cached company collection.
type CompanySource interface {
	Companies(ctx context.Context) ([]domain.Company, error)
}

// MotorSource provides the cached motor collection.
type MotorSource interface {
	Motors(ctx context.Context) ([]domain.Motor, error)
}

// JobSource provides the cached job collection.
type JobSource interface {
	Jobs(ctx context.Context) ([]domain.Job, error)
}

// InvoiceSource provides the cached invoice collection.
type InvoiceSource interface {
	Invoices(ctx context.Context) ([]domain.Invoice, error)
}

// UserSource provides the cached user collection.
type UserSource interface {
	Users(ctx context.Context) ([]domain.User, error)
}

// Service assembles analytics from the entity caches.
type Service struct {
	companies CompanySource
	motors    MotorSource
	jobs      JobSource
	invoices  InvoiceSource
	users     UserSource
	now       func() time.Time
}

// NewService creates report service
func NewService(companies CompanySource, motors MotorSource, jobs JobSource, invoices InvoiceSource, users UserSource) *Service {
	return &Service{
		companies: companies,
		motors:    motors,
		jobs:      jobs,
		invoices:  invoices,
		users:     users,
		now:       time.Now,
	}
}

// Overview assembles the full analytics payload.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	companies, err := s.companies.Companies(ctx)
	if err != nil {
		return nil, err
	}
	motors, err := s.motors.Motors(ctx)
	if err != nil {
		return nil, err
	}
	jobs, err := s.jobs.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoices.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Users(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &Overview{
		RevenueTrend: RevenueTrend(invoices, jobs, now),
		MotorTypes:   MotorTypeDistribution(motors),
		TopCustomers: TopCustomers(companies, invoices, jobs),
		Technicians:  TechnicianPerformance(jobs, users, now),
		GeneratedAt:  now,
	}, nil
}
