package job

import (
	"strings"

	"motortrack/internal/domain"
)

// Filters compose with AND semantics; "all" or empty bypasses a
// category filter.
type Filters struct {
	Search   string
	Status   string
	Priority string
}

// Filter returns the jobs passing every active predicate.
func Filter(jobs []domain.Job, f Filters) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if !matchesSearch(j, f.Search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(j.Status) != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != "all" && string(j.Priority) != f.Priority {
			continue
		}
		out = append(out, j)
	}
	return out
}

// Search matches case-insensitively against the job number, description
// and the joined company name. A missing projection matches nothing.
func matchesSearch(j domain.Job, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(j.JobNumber), term) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Description), term) {
		return true
	}
	return j.Company != nil && strings.Contains(strings.ToLower(j.Company.Name), term)
}
