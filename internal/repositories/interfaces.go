package repositories

import "time"

// ===== SHARED FILTER STRUCTS =====

// DateRangeFilters bounds attendance queries; the zero value means unbounded.
type DateRangeFilters struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// IsZero reports whether no bounds were supplied.
func (f DateRangeFilters) IsZero() bool {
	return f.From.IsZero() && f.To.IsZero()
}
