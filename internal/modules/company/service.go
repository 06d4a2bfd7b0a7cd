package company

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines company data access
type Repository interface {
	List(ctx context.Context) ([]domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Company, error)
}

// Service owns the company snapshot cache and mutation rules.
type Service struct {
	repo  Repository
	cache *store.Collection[domain.Company]
}

// NewService creates company service
func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: store.NewCollection[domain.Company](),
	}
}

// Companies returns the cached collection, refreshing it first when
// stale. A failed refresh empties the cache and is surfaced to the
// caller; the next call retries.
func (s *Service) Companies(ctx context.Context) ([]domain.Company, error) {
	if s.cache.Stale() {
		companies, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(companies)
	}
	return s.cache.Snapshot(), nil
}

// List returns companies passing the given filters.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Company, error) {
	companies, err := s.Companies(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(companies, f), nil
}

// GetByID returns a company by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	return company, err
}

// Add creates a company and prepends it to the snapshot. On failure the
// snapshot is left untouched and the error propagates to the caller.
func (s *Service) Add(ctx context.Context, req *CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		Name:         req.Name,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		PaymentTerms: req.PaymentTerms,
		Status:       domain.CompanyStatus(req.Status),
	}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	s.cache.Prepend(*company)
	return company, nil
}

// Update applies a partial update and patches the snapshot in place.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateCompanyRequest) (*domain.Company, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactName != nil {
		updates["contact_name"] = *req.ContactName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.PaymentTerms != nil {
		updates["payment_terms"] = *req.PaymentTerms
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}

	company, err := s.repo.Update(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cache.Patch(
		func(c domain.Company) bool { return c.ID == id },
		func(c *domain.Company) { *c = *company },
	)
	return company, nil
}

// Lookup resolves a company from the snapshot only, for display
// projections on related entities. A cache miss returns nil.
func (s *Service) Lookup(id int64) *domain.Company {
	for _, c := range s.cache.Snapshot() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// Invalidate marks the snapshot stale. Related modules call this after
// mutations that move the server-maintained counters.
func (s *Service) Invalidate() {
	s.cache.Invalidate()
}
