package warranty

import (
	"math"
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

// Filter returns the warranties passing every active predicate.
func Filter(warranties []domain.Warranty, f Filters) []domain.Warranty {
	out := make([]domain.Warranty, 0, len(warranties))
	for _, w := range warranties {
		if !matchesSearch(w, f.Search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(w.Status) != f.Status {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Search matches case-insensitively against the joined job number,
// company name and customer motor tag.
func matchesSearch(w domain.Warranty, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if w.Job != nil && strings.Contains(strings.ToLower(w.Job.JobNumber), term) {
		return true
	}
	if w.Company != nil && strings.Contains(strings.ToLower(w.Company.Name), term) {
		return true
	}
	return w.Motor != nil && strings.Contains(strings.ToLower(w.Motor.MotorID), term)
}

// ComputeStats summarizes coverage at the given time: active count,
// warranties expiring within 30 days, claims opened this calendar year,
// and the average warranty period in months.
func ComputeStats(warranties []domain.Warranty, now time.Time) Stats {
	var s Stats
	var periodSum int
	for _, w := range warranties {
		periodSum += w.WarrantyPeriod

		if w.Status == domain.WarrantyActive {
			s.Active++
			remaining := dates.DaysUntil(now, w.WarrantyEnd)
			if remaining > 0 && remaining <= 30 {
				s.ExpiringSoon++
			}
		}
		if w.Status == domain.WarrantyClaimed && w.ClaimDate != nil && dates.SameYear(*w.ClaimDate, now) {
			s.ClaimsThisYear++
		}
	}
	if len(warranties) > 0 {
		s.AvgWarrantyPeriod = int(math.Round(float64(periodSum) / float64(len(warranties))))
	}
	return s
}
