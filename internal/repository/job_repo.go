package repository

import (
	"context"

	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List returns all jobs with company, motor and technician attached,
// newest first.
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Motor").
		Preload("Technician").
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, normalizeErr(err)
}

// GetByID fetches a job by its ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("Motor").
		Preload("Technician").
		First(&job, id).Error
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &job, nil
}

// Create inserts a new job. While the job counts as active it is added
// to the owning company's active_jobs counter, in the same transaction.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.Status == "" {
		job.Status = domain.JobPending
	}
	if job.Priority == "" {
		job.Priority = domain.PriorityNormal
	}
	job.ProgressPercentage = domain.ProgressForStatus(job.Status)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		if !job.IsActive() {
			return nil
		}
		return tx.Model(&domain.Company{}).
			Where("id = ?", job.CompanyID).
			UpdateColumn("active_jobs", gorm.Expr("active_jobs + 1")).Error
	})
	return normalizeErr(err)
}

// Update applies the given fields to a job and returns the persisted row
// with its relations attached. The owning company's active_jobs counter
// is adjusted when the job enters or leaves an active status.
func (r *JobRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Job, error) {
	var job domain.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.Job
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Job{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Preload("Company").Preload("Motor").Preload("Technician").First(&job, id).Error; err != nil {
			return err
		}

		wasActive, isActive := current.IsActive(), job.IsActive()
		if wasActive == isActive {
			return nil
		}
		delta := 1
		if wasActive {
			delta = -1
		}
		return tx.Model(&domain.Company{}).
			Where("id = ?", job.CompanyID).
			UpdateColumn("active_jobs", gorm.Expr("active_jobs + ?", delta)).Error
	})
	if err != nil {
		return nil, normalizeErr(err)
	}
	return &job, nil
}
