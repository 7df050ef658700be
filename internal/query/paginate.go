// internal/query/paginate.go
package query

import "krishi-dashboard/internal/records"

// PageState is the per-page pagination cursor.
type PageState struct {
	Current int
	Size    int
}

// NewPageState starts at page 1 with the given size.
func NewPageState(size int) PageState {
	return PageState{Current: 1, Size: size}
}

// Page is one window over a filtered collection. Current is the page the
// window actually shows, after clamping.
type Page struct {
	Items        []records.Record
	TotalPages   int
	TotalRecords int
	Current      int
}

// TotalPages computes the page count for n records: at least 1, even for an
// empty collection.
func TotalPages(n, size int) int {
	if size <= 0 {
		return 1
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp constrains a requested page into [1, totalPages].
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices the collection into the requested fixed-size window.
// An out-of-range request degrades to the nearest valid page rather than
// returning an empty slice or an error. Same inputs always yield the same
// window.
func Paginate(recs []records.Record, state PageState) Page {
	size := state.Size
	if size <= 0 {
		size = 1
	}
	total := TotalPages(len(recs), size)
	current := Clamp(state.Current, total)

	start := (current - 1) * size
	end := start + size
	if start > len(recs) {
		start = len(recs)
	}
	if end > len(recs) {
		end = len(recs)
	}

	items := make([]records.Record, end-start)
	copy(items, recs[start:end])

	return Page{
		Items:        items,
		TotalPages:   total,
		TotalRecords: len(recs),
		Current:      current,
	}
}
