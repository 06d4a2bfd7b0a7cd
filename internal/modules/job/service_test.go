package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) List(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepository) Create(ctx context.Context, job *domain.Job) error {
	args := m.Called(ctx, job)
	if job != nil {
		job.ID = 201 // simulate DB insert
		if job.Status == "" {
			job.Status = domain.JobPending
		}
		job.ProgressPercentage = domain.ProgressForStatus(job.Status)
	}
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Job, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

type fakeCompanyDirectory struct {
	companies   map[int64]*domain.Company
	invalidated int
}

func (d *fakeCompanyDirectory) Lookup(id int64) *domain.Company { return d.companies[id] }
func (d *fakeCompanyDirectory) Invalidate()                     { d.invalidated++ }

type fakeMotorDirectory struct {
	motors map[int64]*domain.Motor
}

func (d *fakeMotorDirectory) Lookup(id int64) *domain.Motor { return d.motors[id] }

type fakeUserDirectory struct {
	users map[int64]*domain.User
}

func (d *fakeUserDirectory) Lookup(id int64) *domain.User { return d.users[id] }

func newTestService(repo Repository) (*Service, *fakeCompanyDirectory) {
	companies := &fakeCompanyDirectory{companies: map[int64]*domain.Company{
		1: {ID: 1, Name: "Northside Paper Mill"},
	}}
	motors := &fakeMotorDirectory{motors: map[int64]*domain.Motor{
		10: {ID: 10, MotorID: "NPM-PUMP-01"},
	}}
	users := &fakeUserDirectory{users: map[int64]*domain.User{
		3: {ID: 3, Name: "Marcus Webb"},
	}}
	return NewService(repo, companies, motors, users), companies
}

func TestAddResolvesProjectionsAndInvalidatesCounters(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("List", mock.Anything).Return([]domain.Job{}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc, companies := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Jobs(ctx)
	assert.NoError(t, err)

	tech := int64(3)
	created, err := svc.Add(ctx, &CreateJobRequest{
		JobNumber:    "J-2025-0150",
		CompanyID:    1,
		MotorID:      10,
		Description:  "Rewind stator",
		Status:       "pending",
		Priority:     "high",
		TechnicianID: &tech,
	})
	assert.NoError(t, err)
	assert.Equal(t, 10, created.ProgressPercentage)
	assert.Equal(t, "Northside Paper Mill", created.Company.Name)
	assert.Equal(t, "NPM-PUMP-01", created.Motor.MotorID)
	assert.Equal(t, "Marcus Webb", created.Technician.Name)

	// An active job moves the company counter; the company cache must go stale.
	assert.Equal(t, 1, companies.invalidated)

	jobs, err := svc.Jobs(ctx)
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	repo.AssertExpectations(t)
}

func TestAddFailurePropagatesAndLeavesCacheAlone(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("List", mock.Anything).Return([]domain.Job{{ID: 1}}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrInvalidData).Once()

	svc, companies := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Jobs(ctx)
	assert.NoError(t, err)

	_, err = svc.Add(ctx, &CreateJobRequest{JobNumber: "J-X", CompanyID: 1, MotorID: 10, Description: "x", Status: "pending", Priority: "normal"})
	assert.Error(t, err)
	assert.Zero(t, companies.invalidated)

	jobs, err := svc.Jobs(ctx)
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestUpdateEnforcesTransitions(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, Status: domain.JobPending}, nil).Once()

	svc, _ := newTestService(repo)
	status := "completed"
	_, err := svc.Update(context.Background(), 2, &UpdateJobRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update")
}

func TestUpdateStatusSetsProgress(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, Status: domain.JobInProgress}, nil).Once()
	repo.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(u map[string]any) bool {
		return u["status"] == domain.JobCompleted && u["progress_percentage"] == 85
	})).Return(&domain.Job{ID: 2, Status: domain.JobCompleted, ProgressPercentage: 85}, nil).Once()

	svc, companies := newTestService(repo)
	status := "completed"
	job, err := svc.Update(context.Background(), 2, &UpdateJobRequest{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, 85, job.ProgressPercentage)

	// in_progress -> completed leaves the workshop: counter moved.
	assert.Equal(t, 1, companies.invalidated)
	repo.AssertExpectations(t)
}

func TestUpdateWithoutActivityChangeKeepsCompanyCacheFresh(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.Job{ID: 2, Status: domain.JobInProgress}, nil).Once()
	repo.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(u map[string]any) bool {
		return u["description"] == "Scope grew"
	})).Return(&domain.Job{ID: 2, Status: domain.JobInProgress, Description: "Scope grew"}, nil).Once()

	svc, companies := newTestService(repo)
	desc := "Scope grew"
	_, err := svc.Update(context.Background(), 2, &UpdateJobRequest{Description: &desc})
	assert.NoError(t, err)
	assert.Zero(t, companies.invalidated)
}

func TestUpdateNotFound(t *testing.T) {
	repo := new(MockJobRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	svc, _ := newTestService(repo)
	desc := "x"
	_, err := svc.Update(context.Background(), 404, &UpdateJobRequest{Description: &desc})
	assert.ErrorIs(t, err, ErrJobNotFound)
}
