package warranty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"motortrack/internal/domain"
)

func warrantyFixture(now time.Time) []domain.Warranty {
	claimThisYear := now.AddDate(0, -2, 0)
	claimLastYear := now.AddDate(-1, 0, 0)
	return []domain.Warranty{
		{
			ID: 1, Status: domain.WarrantyActive, WarrantyPeriod: 12,
			WarrantyEnd: now.AddDate(0, 0, 20),
			Job:         &domain.Job{JobNumber: "J-2025-0137"},
			Company:     &domain.Company{Name: "Crestline Quarry"},
			Motor:       &domain.Motor{MotorID: "CQ-CRUSH-01"},
		},
		{
			ID: 2, Status: domain.WarrantyActive, WarrantyPeriod: 6,
			WarrantyEnd: now.AddDate(0, 6, 0),
		},
		{
			ID: 3, Status: domain.WarrantyClaimed, WarrantyPeriod: 12,
			WarrantyEnd: now.AddDate(0, 1, 0), ClaimDate: &claimThisYear,
		},
		{
			ID: 4, Status: domain.WarrantyClaimed, WarrantyPeriod: 24,
			WarrantyEnd: now.AddDate(0, -6, 0), ClaimDate: &claimLastYear,
		},
		{
			ID: 5, Status: domain.WarrantyExpired, WarrantyPeriod: 6,
			WarrantyEnd: now.AddDate(0, -3, 0),
		},
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	warranties := warrantyFixture(time.Now())
	assert.Equal(t, warranties, Filter(warranties, Filters{}))
}

func TestFilterByStatus(t *testing.T) {
	warranties := warrantyFixture(time.Now())

	active := Filter(warranties, Filters{Status: "active"})
	assert.Len(t, active, 2)

	assert.Len(t, Filter(warranties, Filters{Status: "all"}), 5)
}

func TestFilterSearchAcrossJoins(t *testing.T) {
	warranties := warrantyFixture(time.Now())

	byJob := Filter(warranties, Filters{Search: "0137"})
	assert.Len(t, byJob, 1)
	assert.Equal(t, int64(1), byJob[0].ID)

	byCompany := Filter(warranties, Filters{Search: "crestline"})
	assert.Len(t, byCompany, 1)

	byMotor := Filter(warranties, Filters{Search: "cq-crush"})
	assert.Len(t, byMotor, 1)

	// Warranties without projections must not match or panic.
	assert.Empty(t, Filter(warranties[1:2], Filters{Search: "crestline"}))
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	stats := ComputeStats(warrantyFixture(now), now)

	assert.Equal(t, 2, stats.Active)
	// Only warranty 1 ends within the 30-day window.
	assert.Equal(t, 1, stats.ExpiringSoon)
	// Warranty 4's claim was last year.
	assert.Equal(t, 1, stats.ClaimsThisYear)
	// (12+6+12+24+6)/5 = 12.
	assert.Equal(t, 12, stats.AvgWarrantyPeriod)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now())
	assert.Zero(t, stats.Active)
	assert.Zero(t, stats.AvgWarrantyPeriod)
}
