package company

import (
	"strings"

	"motortrack/internal/domain"
)

// Filters are applied in memory against the cached collection with AND
// semantics. "all" or empty bypasses a category filter.
type Filters struct {
	Search string
	Status string
}

// Filter returns the companies passing every active predicate.
func Filter(companies []domain.Company, f Filters) []domain.Company {
	out := make([]domain.Company, 0, len(companies))
	for _, c := range companies {
		if !matchesSearch(c, f.Search) {
			continue
		}
		if !matchesStatus(c, f.Status) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Search matches case-insensitively against name, contact name and
// email. An empty term matches everything.
func matchesSearch(c domain.Company, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.ContactName), term) ||
		strings.Contains(strings.ToLower(c.Email), term)
}

func matchesStatus(c domain.Company, status string) bool {
	return status == "" || status == "all" || string(c.Status) == status
}
