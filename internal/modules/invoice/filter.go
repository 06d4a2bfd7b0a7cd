package invoice

import (
	"strings"
	"time"

	"motortrack/internal/domain"
	"motortrack/internal/pkg/dates"
)

// Filters compose with AND semantics; "all" or empty bypasses the
// status filter.
type Filters struct {
	Search string
	Status string
}

// Filter returns the invoices passing every active predicate.
func Filter(invoices []domain.Invoice, f Filters) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if !matchesSearch(inv, f.Search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(inv.Status) != f.Status {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// Search matches case-insensitively against the invoice number, the
// joined company name and the joined job number.
func matchesSearch(inv domain.Invoice, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(inv.InvoiceNumber), term) {
		return true
	}
	if inv.Company != nil && strings.Contains(strings.ToLower(inv.Company.Name), term) {
		return true
	}
	return inv.Job != nil && strings.Contains(strings.ToLower(inv.Job.JobNumber), term)
}

// ComputeStats summarizes the billing position at the given time:
// outstanding (sent and overdue invoices), collected this calendar
// month, and the amount sitting in the stored overdue status.
func ComputeStats(invoices []domain.Invoice, now time.Time) Stats {
	var s Stats
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoiceSent:
			s.Outstanding += inv.TotalAmount
		case domain.InvoiceOverdue:
			s.Outstanding += inv.TotalAmount
			s.OverdueAmount += inv.TotalAmount
		case domain.InvoicePaid:
			if inv.PaidDate != nil && dates.SameMonth(*inv.PaidDate, now) {
				s.CollectedThisMonth += inv.TotalAmount
			}
		}
	}
	return s
}
