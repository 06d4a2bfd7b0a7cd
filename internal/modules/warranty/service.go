package warranty

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines warranty data access
type Repository interface {
	List(ctx context.Context) ([]domain.Warranty, error)
	GetByID(ctx context.Context, id int64) (*domain.Warranty, error)
	Create(ctx context.Context, warranty *domain.Warranty) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Warranty, error)
}

// CompanyDirectory resolves company display projections.
type CompanyDirectory interface {
	Lookup(id int64) *domain.Company
}

// MotorDirectory resolves motor display projections.
type MotorDirectory interface {
	Lookup(id int64) *domain.Motor
}

// JobDirectory resolves job display projections.
type JobDirectory interface {
	Lookup(id int64) *domain.Job
}

// Service owns the warranty snapshot cache and mutation rules.
type Service struct {
	repo      Repository
	companies CompanyDirectory
	motors    MotorDirectory
	jobs      JobDirectory
	cache     *store.Collection[domain.Warranty]
	now       func() time.Time
}

// NewService creates warranty service
func NewService(repo Repository, companies CompanyDirectory, motors MotorDirectory, jobs JobDirectory) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		motors:    motors,
		jobs:      jobs,
		cache:     store.NewCollection[domain.Warranty](),
		now:       time.Now,
	}
}

// Warranties returns the cached collection, refreshing it when stale.
func (s *Service) Warranties(ctx context.Context) ([]domain.Warranty, error) {
	if s.cache.Stale() {
		warranties, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(warranties)
	}
	return s.cache.Snapshot(), nil
}

// List returns warranties passing the given filters.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Warranty, error) {
	warranties, err := s.Warranties(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(warranties, f), nil
}

// GetByID returns a warranty by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	warranty, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWarrantyNotFound
	}
	return warranty, err
}

// Stats summarizes warranty coverage at the current time.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	warranties, err := s.Warranties(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(warranties, s.now()), nil
}

// Add creates a warranty, resolves the display projections from the
// related caches, and prepends the result.
func (s *Service) Add(ctx context.Context, req *CreateWarrantyRequest) (*domain.Warranty, error) {
	warranty := &domain.Warranty{
		JobID:           req.JobID,
		CompanyID:       req.CompanyID,
		MotorID:         req.MotorID,
		WorkDescription: req.WorkDescription,
		WarrantyStart:   req.WarrantyStart,
		WarrantyEnd:     req.WarrantyEnd,
		WarrantyPeriod:  req.WarrantyPeriod,
		Notes:           req.Notes,
	}
	if err := s.repo.Create(ctx, warranty); err != nil {
		return nil, err
	}

	warranty.Company = s.companies.Lookup(warranty.CompanyID)
	warranty.Motor = s.motors.Lookup(warranty.MotorID)
	warranty.Job = s.jobs.Lookup(warranty.JobID)
	s.cache.Prepend(*warranty)

	return warranty, nil
}

// Claim opens a claim: status moves to claimed, the claim goes to
// pending review with the date stamped.
func (s *Service) Claim(ctx context.Context, id int64, req *ClaimRequest) (*domain.Warranty, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(domain.WarrantyClaimed) {
		return nil, ErrInvalidTransition
	}

	return s.apply(ctx, current, map[string]any{
		"status":            domain.WarrantyClaimed,
		"claim_status":      domain.ClaimPending,
		"claim_date":        s.now(),
		"claim_description": req.Description,
	})
}

// Extend pushes the warranty end date out by the given number of
// months. The first extension records the original end date; months
// accumulate across extensions.
func (s *Service) Extend(ctx context.Context, id int64, req *ExtendRequest) (*domain.Warranty, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != domain.WarrantyExtended && !current.Status.CanTransitionTo(domain.WarrantyExtended) {
		return nil, ErrInvalidTransition
	}

	updates := map[string]any{
		"status":           domain.WarrantyExtended,
		"warranty_end":     current.WarrantyEnd.AddDate(0, req.Months, 0),
		"extension_reason": req.Reason,
		"extension_months": current.ExtensionMonths + req.Months,
	}
	if current.OriginalEndDate == nil {
		updates["original_end_date"] = current.WarrantyEnd
	}
	return s.apply(ctx, current, updates)
}

func (s *Service) apply(ctx context.Context, current *domain.Warranty, updates map[string]any) (*domain.Warranty, error) {
	warranty, err := s.repo.Update(ctx, current.ID, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWarrantyNotFound
	}
	if err != nil {
		return nil, err
	}

	warranty.Company = current.Company
	warranty.Motor = current.Motor
	warranty.Job = current.Job

	s.cache.Patch(
		func(w domain.Warranty) bool { return w.ID == current.ID },
		func(w *domain.Warranty) { *w = *warranty },
	)
	return warranty, nil
}
