package warranty

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type MockWarrantyRepository struct {
	mock.Mock
}

func (m *MockWarrantyRepository) List(ctx context.Context) ([]domain.Warranty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Warranty), args.Error(1)
}

func (m *MockWarrantyRepository) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warranty), args.Error(1)
}

func (m *MockWarrantyRepository) Create(ctx context.Context, warranty *domain.Warranty) error {
	args := m.Called(ctx, warranty)
	if warranty != nil {
		warranty.ID = 501 // simulate DB insert
		if warranty.Status == "" {
			warranty.Status = domain.WarrantyActive
		}
		if warranty.ClaimStatus == "" {
			warranty.ClaimStatus = domain.ClaimNone
		}
	}
	return args.Error(0)
}

func (m *MockWarrantyRepository) Update(ctx context.Context, id int64, updates map[string]any) (*domain.Warranty, error) {
	args := m.Called(ctx, id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warranty), args.Error(1)
}

type stubDirectory struct{}

func (stubDirectory) Lookup(int64) *domain.Company { return nil }

type stubMotorDir struct{}

func (stubMotorDir) Lookup(int64) *domain.Motor { return nil }

type stubJobDir struct{}

func (stubJobDir) Lookup(int64) *domain.Job { return nil }

func newTestService(repo Repository) *Service {
	return NewService(repo, stubDirectory{}, stubMotorDir{}, stubJobDir{})
}

func TestAddDefaultsToActiveNoClaim(t *testing.T) {
	repo := new(MockWarrantyRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newTestService(repo)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Add(context.Background(), &CreateWarrantyRequest{
		JobID:           1,
		CompanyID:       1,
		MotorID:         1,
		WorkDescription: "Rewind and bearing replacement",
		WarrantyStart:   start,
		WarrantyEnd:     start.AddDate(0, 12, 0),
		WarrantyPeriod:  12,
	})
	assert.NoError(t, err)
	assert.Equal(t, domain.WarrantyActive, created.Status)
	assert.Equal(t, domain.ClaimNone, created.ClaimStatus)
	repo.AssertExpectations(t)
}

func TestClaimStampsPendingReview(t *testing.T) {
	repo := new(MockWarrantyRepository)
	current := &domain.Warranty{ID: 7, Status: domain.WarrantyActive}
	repo.On("GetByID", mock.Anything, int64(7)).Return(current, nil).Once()

	fixed := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	repo.On("Update", mock.Anything, int64(7), mock.MatchedBy(func(u map[string]any) bool {
		return u["status"] == domain.WarrantyClaimed &&
			u["claim_status"] == domain.ClaimPending &&
			u["claim_date"] == fixed &&
			u["claim_description"] == "Bearing noise returned"
	})).Return(&domain.Warranty{ID: 7, Status: domain.WarrantyClaimed, ClaimStatus: domain.ClaimPending, ClaimDate: &fixed}, nil).Once()

	svc := newTestService(repo)
	svc.now = func() time.Time { return fixed }

	warranty, err := svc.Claim(context.Background(), 7, &ClaimRequest{Description: "Bearing noise returned"})
	assert.NoError(t, err)
	assert.Equal(t, domain.WarrantyClaimed, warranty.Status)
	repo.AssertExpectations(t)
}

func TestClaimRejectedOnExpired(t *testing.T) {
	repo := new(MockWarrantyRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Warranty{ID: 7, Status: domain.WarrantyExpired}, nil).Once()

	svc := newTestService(repo)
	_, err := svc.Claim(context.Background(), 7, &ClaimRequest{Description: "x"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update")
}

func TestExtendRecordsOriginalEndDateOnce(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := new(MockWarrantyRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Warranty{
		ID: 3, Status: domain.WarrantyActive, WarrantyEnd: end,
	}, nil).Once()

	repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(u map[string]any) bool {
		return u["status"] == domain.WarrantyExtended &&
			u["warranty_end"] == end.AddDate(0, 6, 0) &&
			u["extension_months"] == 6 &&
			u["original_end_date"] == end
	})).Return(&domain.Warranty{ID: 3, Status: domain.WarrantyExtended, ExtensionMonths: 6, OriginalEndDate: &end}, nil).Once()

	svc := newTestService(repo)
	warranty, err := svc.Extend(context.Background(), 3, &ExtendRequest{Months: 6, Reason: "Goodwill after early claim"})
	assert.NoError(t, err)
	assert.Equal(t, 6, warranty.ExtensionMonths)
	repo.AssertExpectations(t)
}

func TestExtendAccumulatesAndKeepsOriginalDate(t *testing.T) {
	original := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	extendedEnd := original.AddDate(0, 6, 0)
	repo := new(MockWarrantyRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Warranty{
		ID: 3, Status: domain.WarrantyExtended, WarrantyEnd: extendedEnd,
		ExtensionMonths: 6, OriginalEndDate: &original,
	}, nil).Once()

	repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(u map[string]any) bool {
		_, hasOriginal := u["original_end_date"]
		return u["warranty_end"] == extendedEnd.AddDate(0, 3, 0) &&
			u["extension_months"] == 9 &&
			!hasOriginal
	})).Return(&domain.Warranty{ID: 3, Status: domain.WarrantyExtended, ExtensionMonths: 9, OriginalEndDate: &original}, nil).Once()

	svc := newTestService(repo)
	warranty, err := svc.Extend(context.Background(), 3, &ExtendRequest{Months: 3, Reason: "Second extension"})
	assert.NoError(t, err)
	assert.Equal(t, 9, warranty.ExtensionMonths)
	repo.AssertExpectations(t)
}

func TestExtendRejectedOnExpired(t *testing.T) {
	repo := new(MockWarrantyRepository)
	repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Warranty{ID: 3, Status: domain.WarrantyExpired}, nil).Once()

	svc := newTestService(repo)
	_, err := svc.Extend(context.Background(), 3, &ExtendRequest{Months: 1, Reason: "x"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClaimNotFound(t *testing.T) {
	repo := new(MockWarrantyRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := newTestService(repo)
	_, err := svc.Claim(context.Background(), 404, &ClaimRequest{Description: "x"})
	assert.ErrorIs(t, err, ErrWarrantyNotFound)
}
