package motor

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines motor data access
type Repository interface {
	List(ctx context.Context) ([]domain.Motor, error)
	GetByID(ctx context.Context, id int64) (*domain.Motor, error)
	Create(ctx context.Context, motor *domain.Motor) error
}

// CompanyDirectory resolves company display projections from the company
// module's cache and invalidates it when the motor counter moves.
type CompanyDirectory interface {
	Lookup(id int64) *domain.Company
	Invalidate()
}

// Service owns the motor snapshot cache and mutation rules.
type Service struct {
	repo      Repository
	companies CompanyDirectory
	cache     *store.Collection[domain.Motor]
}

// NewService creates motor service
func NewService(repo Repository, companies CompanyDirectory) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		cache:     store.NewCollection[domain.Motor](),
	}
}

// Motors returns the cached collection, refreshing it when stale.
func (s *Service) Motors(ctx context.Context) ([]domain.Motor, error) {
	if s.cache.Stale() {
		motors, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(motors)
	}
	return s.cache.Snapshot(), nil
}

// List returns motors passing the given filters.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Motor, error) {
	motors, err := s.Motors(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(motors, f), nil
}

// GetByID returns a motor by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Motor, error) {
	motor, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMotorNotFound
	}
	return motor, err
}

// Add creates a motor, resolves the company display projection from the
// company cache instead of refetching, and prepends the result. On
// failure the snapshot is left untouched and the error propagates.
func (s *Service) Add(ctx context.Context, req *CreateMotorRequest) (*domain.Motor, error) {
	motor := &domain.Motor{
		CompanyID:       req.CompanyID,
		MotorID:         req.MotorID,
		Manufacturer:    req.Manufacturer,
		Model:           req.Model,
		SerialNumber:    req.SerialNumber,
		Type:            domain.MotorType(req.Type),
		Voltage:         req.Voltage,
		Amperage:        req.Amperage,
		Power:           req.Power,
		Phase:           domain.MotorPhase(req.Phase),
		Frequency:       req.Frequency,
		ConnectionType:  req.ConnectionType,
		RPM:             req.RPM,
		FrameSize:       req.FrameSize,
		MountingType:    req.MountingType,
		InsulationClass: req.InsulationClass,
		DutyCycle:       req.DutyCycle,
		Environment:     req.Environment,
		Condition:       domain.MotorCondition(req.Condition),
		Location:        req.Location,
		TechnicalNotes:  req.TechnicalNotes,
		LastService:     req.LastService,
	}
	if err := s.repo.Create(ctx, motor); err != nil {
		return nil, err
	}

	motor.Company = s.companies.Lookup(motor.CompanyID)
	s.cache.Prepend(*motor)

	// The motor counter on the company moved.
	s.companies.Invalidate()

	return motor, nil
}

// Lookup resolves a motor from the snapshot only, for display
// projections on related entities.
func (s *Service) Lookup(id int64) *domain.Motor {
	for _, m := range s.cache.Snapshot() {
		if m.ID == id {
			return &m
		}
	}
	return nil
}
