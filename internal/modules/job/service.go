package job

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motortrack/internal/domain"
	"motortrack/internal/store"
)

// Repository defines job data access
type Repository interface {
	List(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, id int64, updates map[string]any) (*domain.Job, error)
}

// CompanyDirectory resolves company display projections and invalidates
// the company cache when the active-jobs counter moves.
type CompanyDirectory interface {
	Lookup(id int64) *domain.Company
	Invalidate()
}

// MotorDirectory resolves motor display projections.
type MotorDirectory interface {
	Lookup(id int64) *domain.Motor
}

// UserDirectory resolves technician display projections.
type UserDirectory interface {
	Lookup(id int64) *domain.User
}

// Service owns the job snapshot cache and mutation rules.
type Service struct {
	repo      Repository
	companies CompanyDirectory
	motors    MotorDirectory
	users     UserDirectory
	cache     *store.Collection[domain.Job]
}

// NewService creates job service
func NewService(repo Repository, companies CompanyDirectory, motors MotorDirectory, users UserDirectory) *Service {
	return &Service{
		repo:      repo,
		companies: companies,
		motors:    motors,
		users:     users,
		cache:     store.NewCollection[domain.Job](),
	}
}

// Jobs returns the cached collection, refreshing it when stale.
func (s *Service) Jobs(ctx context.Context) ([]domain.Job, error) {
	if s.cache.Stale() {
		jobs, err := s.repo.List(ctx)
		if err != nil {
			s.cache.Fail(err)
			return nil, err
		}
		s.cache.Replace(jobs)
	}
	return s.cache.Snapshot(), nil
}

// List returns jobs passing the given filters.
func (s *Service) List(ctx context.Context, f Filters) ([]domain.Job, error) {
	jobs, err := s.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(jobs, f), nil
}

// GetByID returns a job by ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	return job, err
}

// Add creates a job, resolves company, motor and technician projections
// from the related caches, and prepends the result. Progress is derived
// from the initial status.
func (s *Service) Add(ctx context.Context, req *CreateJobRequest) (*domain.Job, error) {
	job := &domain.Job{
		JobNumber:     req.JobNumber,
		CompanyID:     req.CompanyID,
		MotorID:       req.MotorID,
		Description:   req.Description,
		Status:        domain.JobStatus(req.Status),
		Priority:      domain.JobPriority(req.Priority),
		EstimatedCost: req.EstimatedCost,
		LaborRate:     req.LaborRate,
		StartDate:     req.StartDate,
		DueDate:       req.DueDate,
		TechnicianID:  req.TechnicianID,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}

	job.Company = s.companies.Lookup(job.CompanyID)
	job.Motor = s.motors.Lookup(job.MotorID)
	if job.TechnicianID != nil {
		job.Technician = s.users.Lookup(*job.TechnicianID)
	}
	s.cache.Prepend(*job)

	if job.IsActive() {
		s.companies.Invalidate()
	}

	return job, nil
}

// Update applies a partial update, enforcing status transitions, and
// patches the snapshot in place. Progress follows a status change.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateJobRequest) (*domain.Job, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Status != nil {
		next := domain.JobStatus(*req.Status)
		if next != current.Status {
			if !current.Status.CanTransitionTo(next) {
				return nil, ErrInvalidTransition
			}
			updates["status"] = next
			updates["progress_percentage"] = domain.ProgressForStatus(next)
		}
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if req.EstimatedCost != nil {
		updates["estimated_cost"] = *req.EstimatedCost
	}
	if req.ActualCost != nil {
		updates["actual_cost"] = *req.ActualCost
	}
	if req.LaborRate != nil {
		updates["labor_rate"] = *req.LaborRate
	}
	if req.LaborHours != nil {
		updates["labor_hours"] = *req.LaborHours
	}
	if req.PartsCost != nil {
		updates["parts_cost"] = *req.PartsCost
	}
	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.CompletedDate != nil {
		updates["completed_date"] = *req.CompletedDate
	}
	if req.DeliveryDate != nil {
		updates["delivery_date"] = *req.DeliveryDate
	}
	if req.TechnicianID != nil {
		updates["technician_id"] = *req.TechnicianID
	}
	if len(updates) == 0 {
		return current, nil
	}

	job, err := s.repo.Update(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cache.Patch(
		func(j domain.Job) bool { return j.ID == id },
		func(j *domain.Job) { *j = *job },
	)

	if current.IsActive() != job.IsActive() {
		s.companies.Invalidate()
	}

	return job, nil
}

// Lookup resolves a job from the snapshot only, for display projections
// on related entities.
func (s *Service) Lookup(id int64) *domain.Job {
	for _, j := range s.cache.Snapshot() {
		if j.ID == id {
			return &j
		}
	}
	return nil
}
