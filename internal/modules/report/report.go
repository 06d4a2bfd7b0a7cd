package report

import (
	"sort"
	"time"

	"motortrack/internal/domain"
	"motortrack/internal/pkg/dates"
)

// MonthlyPoint is one month of the revenue trend.
type MonthlyPoint struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Jobs    int     `json:"jobs"`
}

// TypeCount is one slice of the motor type distribution.
type TypeCount struct {
	Type  domain.MotorType `json:"type"`
	Count int              `json:"count"`
}

// CustomerRevenue is one row of the top-customer ranking.
type CustomerRevenue struct {
	CompanyID int64   `json:"company_id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
	Jobs      int     `json:"jobs"`
}

// TechnicianStats summarizes one technician's completed work.
type TechnicianStats struct {
	TechnicianID  int64   `json:"technician_id"`
	Name          string  `json:"name"`
	CompletedJobs int     `json:"completed_jobs"`
	LaborHours    float64 `json:"labor_hours"`
}

const trendMonths = 6

// RevenueTrend returns paid revenue and job creation counts per month
// for the last six months ending at now, oldest first. Months with no
// activity still appear with zeros.
func RevenueTrend(invoices []domain.Invoice, jobs []domain.Job, now time.Time) []MonthlyPoint {
	trend := make([]MonthlyPoint, 0, trendMonths)
	index := make(map[string]int, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := m.Format("2006-01")
		index[key] = len(trend)
		trend = append(trend, MonthlyPoint{Month: key})
	}

	for i := range invoices {
		inv := &invoices[i]
		if inv.Status != domain.InvoicePaid || inv.PaidDate == nil {
			continue
		}
		if pos, ok := index[inv.PaidDate.Format("2006-01")]; ok {
			trend[pos].Revenue += inv.TotalAmount
		}
	}
	for i := range jobs {
		if pos, ok := index[jobs[i].CreatedAt.Format("2006-01")]; ok {
			trend[pos].Jobs++
		}
	}
	return trend
}

// MotorTypeDistribution counts motors per type, largest first.
func MotorTypeDistribution(motors []domain.Motor) []TypeCount {
	counts := make(map[domain.MotorType]int)
	for i := range motors {
		counts[motors[i].Type]++
	}

	dist := make([]TypeCount, 0, len(counts))
	for t, n := range counts {
		dist = append(dist, TypeCount{Type: t, Count: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Type < dist[j].Type
	})
	return dist
}

const topCustomerLimit = 5

// TopCustomers ranks companies by paid revenue, highest first, keeping
// at most five rows. Job counts cover all jobs, not just billed ones.
func TopCustomers(companies []domain.Company, invoices []domain.Invoice, jobs []domain.Job) []CustomerRevenue {
	byCompany := make(map[int64]*CustomerRevenue, len(companies))
	for i := range companies {
		c := &companies[i]
		byCompany[c.ID] = &CustomerRevenue{CompanyID: c.ID, Name: c.Name}
	}

	for i := range invoices {
		inv := &invoices[i]
		if inv.Status != domain.InvoicePaid {
			continue
		}
		if row, ok := byCompany[inv.CompanyID]; ok {
			row.Revenue += inv.TotalAmount
		}
	}
	for i := range jobs {
		if row, ok := byCompany[jobs[i].CompanyID]; ok {
			row.Jobs++
		}
	}

	ranked := make([]CustomerRevenue, 0, len(byCompany))
	for _, row := range byCompany {
		if row.Revenue > 0 {
			ranked = append(ranked, *row)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > topCustomerLimit {
		ranked = ranked[:topCustomerLimit]
	}
	return ranked
}

// TechnicianPerformance summarizes completed jobs per technician this
// year, most completed first. Jobs without an assigned technician are
// skipped.
func TechnicianPerformance(jobs []domain.Job, users []domain.User, now time.Time) []TechnicianStats {
	names := make(map[int64]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}

	byTech := make(map[int64]*TechnicianStats)
	for i := range jobs {
		j := &jobs[i]
		if j.TechnicianID == nil || j.CompletedDate == nil {
			continue
		}
		if !dates.SameYear(*j.CompletedDate, now) {
			continue
		}
		row, ok := byTech[*j.TechnicianID]
		if !ok {
			row = &TechnicianStats{TechnicianID: *j.TechnicianID, Name: names[*j.TechnicianID]}
			byTech[*j.TechnicianID] = row
		}
		row.CompletedJobs++
		row.LaborHours += j.LaborHours
	}

	ranked := make([]TechnicianStats, 0, len(byTech))
	for _, row := range byTech {
		ranked = append(ranked, *row)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].CompletedJobs != ranked[j].CompletedJobs {
			return ranked[i].CompletedJobs > ranked[j].CompletedJobs
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
