package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines user data access
type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service owns the user snapshot cache. Users are read-only through the
// API; the cache only refreshes when stale.
type Service struct {
	repo  Repository
	cache *store.Collection[domain.User]
}

// NewService creates user service
func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: store.NewCollection[domain.User](),
	}
}

// Users returns the cached collection, refreshing it when stale.
func (s *Service) Users(ctx context.Context) ([]domain.User, error) {
	if s.cache.Stale() {
		users, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(users)
	}
	return s.cache.Snapshot(), nil
}

// Active returns users still on staff. Deactivated accounts stay in the
// table for historical job attribution but are hidden from pickers.
func (s *Service) Active(ctx context.Context) ([]domain.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.IsActive {
			active = append(active, u)
		}
	}
	return active, nil
}

// Technicians returns active users with the technician role, for
// assignment pickers.
func (s *Service) Technicians(ctx context.Context) ([]domain.User, error) {
	users, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	technicians := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == domain.RoleTechnician {
			technicians = append(technicians, u)
		}
	}
	return technicians, nil
}

// GetByID returns a user by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// Lookup resolves a user from the snapshot only, for display projections
// on related entities.
func (s *Service) Lookup(id int64) *domain.User {
	for _, u := range s.cache.Snapshot() {
		if u.ID == id {
			return &u
		}
	}
	return nil
}
