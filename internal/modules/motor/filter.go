package motor

import (
	"strings"

	"motortrack/internal/domain"
)

// Filters compose with AND semantics; "all", empty, or zero bypasses a
// category filter.
type Filters struct {
	Search    string
	Type      string
	CompanyID int64
}

// Filter returns the motors passing every active predicate.
func Filter(motors []domain.Motor, f Filters) []domain.Motor {
	out := make([]domain.Motor, 0, len(motors))
	for _, m := range motors {
		if !matchesSearch(m, f.Search) {
			continue
		}
		if f.Type != "" && f.Type != "all" && string(m.Type) != f.Type {
			continue
		}
		if f.CompanyID != 0 && m.CompanyID != f.CompanyID {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Search matches case-insensitively against the customer motor tag,
// manufacturer, model and serial number.
func matchesSearch(m domain.Motor, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(m.MotorID), term) ||
		strings.Contains(strings.ToLower(m.Manufacturer), term) ||
		strings.Contains(strings.ToLower(m.Model), term) ||
		strings.Contains(strings.ToLower(m.SerialNumber), term)
}
