// Package query is the in-memory query engine shared by every list page:
// a conjunction of predicate filters followed by fixed-size pagination.
package query

import (
	"strings"

	"krishi-dashboard/internal/records"
)

// FilterAll is the sentinel meaning "do not filter on this dimension".
// Category and status values are lowercase identifiers, so the sentinel
// cannot collide with a real value.
const FilterAll = "all"

// FilterState is the per-page filter selection. It is owned by one page,
// created at mount and thrown away on navigation.
type FilterState struct {
	Search   string
	Category string
	Status   string
}

// NewFilterState returns the match-all default state.
func NewFilterState() FilterState {
	return FilterState{
		Search:   "",
		Category: FilterAll,
		Status:   FilterAll,
	}
}

// Reset restores the match-all defaults.
func (s *FilterState) Reset() {
	*s = NewFilterState()
}

// IsDefault reports whether the state matches every record.
func (s FilterState) IsDefault() bool {
	return s.Search == "" && s.Category == FilterAll && s.Status == FilterAll
}

// Apply filters the collection with all three predicates ANDed. The result
// is a fresh slice preserving the input's relative order; the input is never
// mutated. An empty result is valid output, not a failure.
func Apply(recs []records.Record, state FilterState) []records.Record {
	out := make([]records.Record, 0, len(recs))
	search := strings.ToLower(strings.TrimSpace(state.Search))
	for _, rec := range recs {
		if !matchesSearch(rec, search) {
			continue
		}
		if state.Category != FilterAll && rec.Category != state.Category {
			continue
		}
		if state.Status != FilterAll && rec.Status != state.Status {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch reports whether any searchable field of rec contains the
// lowercased search text. Empty search text matches everything.
func matchesSearch(rec records.Record, search string) bool {
	if search == "" {
		return true
	}
	for _, v := range rec.SearchValues() {
		if strings.Contains(strings.ToLower(v), search) {
			return true
		}
	}
	return false
}
