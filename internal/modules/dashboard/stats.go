package dashboard

import (
	"time"

	"motortrack/internal/domain"
	"motortrack/internal/pkg/dates"
)

// Stats is the dashboard aggregate payload.
type Stats struct {
	ActiveCompanies int     `json:"active_companies"`
	TotalMotors     int     `json:"total_motors"`
	JobsThisMonth   int     `json:"jobs_this_month"`
	ActiveJobs      int     `json:"active_jobs"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	PendingInvoices int     `json:"pending_invoices"`
}

// ActiveCompanyCount counts companies with active status.
func ActiveCompanyCount(companies []domain.Company) int {
	count := 0
	for i := range companies {
		if companies[i].IsActive() {
			count++
		}
	}
	return count
}

// TotalMotors sums the per-company motor counters.
func TotalMotors(companies []domain.Company) int {
	total := 0
	for i := range companies {
		total += companies[i].MotorCount
	}
	return total
}

// JobsThisMonth counts jobs created in the calendar month of now.
func JobsThisMonth(jobs []domain.Job, now time.Time) int {
	count := 0
	for i := range jobs {
		if dates.SameMonth(jobs[i].CreatedAt, now) {
			count++
		}
	}
	return count
}

// ActiveJobCount counts jobs in an active status.
func ActiveJobCount(jobs []domain.Job) int {
	count := 0
	for i := range jobs {
		if jobs[i].IsActive() {
			count++
		}
	}
	return count
}

// MonthlyRevenue sums invoices paid in the calendar month of now.
func MonthlyRevenue(invoices []domain.Invoice, now time.Time) float64 {
	var total float64
	for i := range invoices {
		inv := &invoices[i]
		if inv.Status == domain.InvoicePaid && inv.PaidDate != nil && dates.SameMonth(*inv.PaidDate, now) {
			total += inv.TotalAmount
		}
	}
	return total
}

// PendingInvoiceCount counts invoices awaiting payment.
func PendingInvoiceCount(invoices []domain.Invoice) int {
	count := 0
	for i := range invoices {
		if invoices[i].Status == domain.InvoiceSent || invoices[i].Status == domain.InvoiceOverdue {
			count++
		}
	}
	return count
}
