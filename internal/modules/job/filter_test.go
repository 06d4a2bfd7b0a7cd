package job

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motortrack/internal/domain"
)

func jobFixture() []domain.Job {
	northside := &domain.Company{ID: 1, Name: "Northside Paper Mill"}
	harbor := &domain.Company{ID: 2, Name: "Harbor Cold Storage"}
	return []domain.Job{
		{ID: 1, JobNumber: "J-2025-0141", Description: "Rewind stator", Status: domain.JobInProgress, Priority: domain.PriorityHigh, Company: northside},
		{ID: 2, JobNumber: "J-2025-0142", Description: "Vibration analysis", Status: domain.JobPending, Priority: domain.PriorityNormal, Company: harbor},
		{ID: 3, JobNumber: "J-2025-0137", Description: "Replace commutator", Status: domain.JobCompleted, Priority: domain.PriorityUrgent, Company: nil},
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	jobs := jobFixture()
	assert.Equal(t, jobs, Filter(jobs, Filters{}))
}

func TestFilterByStatusAndPriority(t *testing.T) {
	byStatus := Filter(jobFixture(), Filters{Status: "pending"})
	assert.Len(t, byStatus, 1)
	assert.Equal(t, int64(2), byStatus[0].ID)

	byPriority := Filter(jobFixture(), Filters{Priority: "urgent"})
	assert.Len(t, byPriority, 1)
	assert.Equal(t, int64(3), byPriority[0].ID)

	assert.Len(t, Filter(jobFixture(), Filters{Status: "all", Priority: "all"}), 3)
}

func TestFilterSearchMatchesCompanyName(t *testing.T) {
	out := Filter(jobFixture(), Filters{Search: "harbor"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestFilterSearchMatchesJobNumberAndDescription(t *testing.T) {
	byNumber := Filter(jobFixture(), Filters{Search: "0137"})
	assert.Len(t, byNumber, 1)
	assert.Equal(t, int64(3), byNumber[0].ID)

	byDescription := Filter(jobFixture(), Filters{Search: "stator"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, int64(1), byDescription[0].ID)
}

func TestFilterSearchMissingProjection(t *testing.T) {
	// Job 3 has no joined company; a company-name term must not panic
	// and must not match it.
	out := Filter(jobFixture(), Filters{Search: "paper mill"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterComposesWithAnd(t *testing.T) {
	out := Filter(jobFixture(), Filters{Search: "j-2025", Status: "in_progress", Priority: "high"})
	assert.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	assert.Empty(t, Filter(jobFixture(), Filters{Search: "j-2025", Status: "in_progress", Priority: "low"}))
}
