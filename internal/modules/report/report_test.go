package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"motortrack/internal/domain"
)

func TestRevenueTrendWindowsSixMonths(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	paidApr := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	paidJun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	paidOld := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC) // outside window
	invoices := []domain.Invoice{
		{Status: domain.InvoicePaid, TotalAmount: 500, PaidDate: &paidApr},
		{Status: domain.InvoicePaid, TotalAmount: 300, PaidDate: &paidJun},
		{Status: domain.InvoicePaid, TotalAmount: 999, PaidDate: &paidOld},
		{Status: domain.InvoiceSent, TotalAmount: 777},
	}
	jobs := []domain.Job{
		{CreatedAt: time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)},
		{CreatedAt: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
	}

	trend := RevenueTrend(invoices, jobs, now)
	assert.Len(t, trend, 6)
	assert.Equal(t, "2024-01", trend[0].Month)
	assert.Equal(t, "2024-06", trend[5].Month)

	assert.Equal(t, float64(0), trend[0].Revenue)
	assert.Equal(t, 1, trend[0].Jobs)

	// April is index 3 in a Jan..Jun window.
	assert.Equal(t, float64(500), trend[3].Revenue)
	assert.Equal(t, 2, trend[3].Jobs)

	assert.Equal(t, float64(300), trend[5].Revenue)
}

func TestMotorTypeDistributionSorted(t *testing.T) {
	motors := []domain.Motor{
		{Type: domain.MotorAC},
		{Type: domain.MotorAC},
		{Type: domain.MotorAC},
		{Type: domain.MotorDC},
		{Type: domain.MotorServo},
	}
	dist := MotorTypeDistribution(motors)
	assert.Len(t, dist, 3)
	assert.Equal(t, TypeCount{Type: domain.MotorAC, Count: 3}, dist[0])
}

func TestTopCustomersRankedByPaidRevenue(t *testing.T) {
	companies := []domain.Company{
		{ID: 1, Name: "Northside Paper Mill"},
		{ID: 2, Name: "Harbor Cold Storage"},
		{ID: 3, Name: "Crestline Quarry"},
	}
	invoices := []domain.Invoice{
		{CompanyID: 1, Status: domain.InvoicePaid, TotalAmount: 100},
		{CompanyID: 2, Status: domain.InvoicePaid, TotalAmount: 400},
		{CompanyID: 2, Status: domain.InvoicePaid, TotalAmount: 100},
		{CompanyID: 3, Status: domain.InvoiceSent, TotalAmount: 9999}, // unpaid does not count
	}
	jobs := []domain.Job{
		{CompanyID: 1}, {CompanyID: 2}, {CompanyID: 2},
	}

	top := TopCustomers(companies, invoices, jobs)
	assert.Len(t, top, 2, "companies with no paid revenue are excluded")
	assert.Equal(t, int64(2), top[0].CompanyID)
	assert.Equal(t, float64(500), top[0].Revenue)
	assert.Equal(t, 2, top[0].Jobs)
	assert.Equal(t, int64(1), top[1].CompanyID)
}

func TestTopCustomersCapsAtFive(t *testing.T) {
	companies := make([]domain.Company, 8)
	invoices := make([]domain.Invoice, 8)
	for i := range companies {
		companies[i] = domain.Company{ID: int64(i + 1), Name: string(rune('A' + i))}
		invoices[i] = domain.Invoice{CompanyID: int64(i + 1), Status: domain.InvoicePaid, TotalAmount: float64((i + 1) * 10)}
	}
	top := TopCustomers(companies, invoices, nil)
	assert.Len(t, top, 5)
	assert.Equal(t, int64(8), top[0].CompanyID)
}

func TestTechnicianPerformanceThisYearOnly(t *testing.T) {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	thisYear := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	tech1, tech2 := int64(1), int64(2)

	jobs := []domain.Job{
		{TechnicianID: &tech1, CompletedDate: &thisYear, LaborHours: 10},
		{TechnicianID: &tech1, CompletedDate: &thisYear, LaborHours: 6},
		{TechnicianID: &tech1, CompletedDate: &lastYear, LaborHours: 99},
		{TechnicianID: &tech2, CompletedDate: &thisYear, LaborHours: 4},
		{TechnicianID: nil, CompletedDate: &thisYear, LaborHours: 8},
		{TechnicianID: &tech2, CompletedDate: nil},
	}
	users := []domain.User{
		{ID: 1, Name: "Marcus Webb"},
		{ID: 2, Name: "Elena Vargas"},
	}

	perf := TechnicianPerformance(jobs, users, now)
	assert.Len(t, perf, 2)
	assert.Equal(t, "Marcus Webb", perf[0].Name)
	assert.Equal(t, 2, perf[0].CompletedJobs)
	assert.Equal(t, float64(16), perf[0].LaborHours)
	assert.Equal(t, 1, perf[1].CompletedJobs)
}
