package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"motortrack/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func staffFixture() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Olga Petrova", Role: domain.RoleAdmin, IsActive: true},
		{ID: 2, Name: "Marcus Webb", Role: domain.RoleTechnician, IsActive: true},
		{ID: 3, Name: "Elena Vargas", Role: domain.RoleTechnician, IsActive: true},
		{ID: 4, Name: "Former Tech", Role: domain.RoleTechnician, IsActive: false},
	}
}

func TestActiveHidesDeactivatedAccounts(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return(staffFixture(), nil).Once()

	svc := NewService(repo)
	active, err := svc.Active(context.Background())
	assert.NoError(t, err)
	assert.Len(t, active, 3)
	for _, u := range active {
		assert.True(t, u.IsActive)
	}
}

func TestTechniciansFiltersRoleAndActivity(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return(staffFixture(), nil).Once()

	svc := NewService(repo)
	technicians, err := svc.Technicians(context.Background())
	assert.NoError(t, err)
	assert.Len(t, technicians, 2)
	for _, u := range technicians {
		assert.Equal(t, domain.RoleTechnician, u.Role)
	}
}

func TestLookupResolvesFromSnapshotOnly(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return(staffFixture(), nil).Once()

	svc := NewService(repo)

	// Before populating, lookups miss.
	assert.Nil(t, svc.Lookup(2))

	_, err := svc.Users(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Marcus Webb", svc.Lookup(2).Name)
	repo.AssertNumberOfCalls(t, "List", 1)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewService(repo)
	_, err := svc.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
