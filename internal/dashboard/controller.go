// Package dashboard owns the page-level state machines of the admin console.
// Each list page gets one Controller driving the shared pipeline: fetch,
// normalize, filter, paginate, resolve. Controllers are created on page mount
// and thrown away on navigation; nothing here outlives a page except the
// preference store.
package dashboard

import (
	"context"
	"sync"

	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/common/metrics"
	"krishi-dashboard/internal/i18n"
	"krishi-dashboard/internal/query"
	"krishi-dashboard/internal/records"
)

// LoadFunc fetches one raw collection from the backend.
type LoadFunc func(ctx context.Context) ([]map[string]interface{}, error)

// Controller is the state machine behind one list page.
type Controller struct {
	mu      sync.Mutex
	typ     records.RecordType
	load    LoadFunc
	catalog *i18n.Catalog
	log     logger.Logger

	collection []records.Record
	filter     query.FilterState
	page       query.PageState

	// seq implements the ignore-late-arrival policy: each Load call takes
	// the next sequence number, and a completion whose number is no longer
	// current is discarded wholesale.
	seq     uint64
	loading bool
	lastErr error
}

// NewController builds a controller for one record type.
func NewController(typ records.RecordType, load LoadFunc, catalog *i18n.Catalog, pageSize int, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Controller{
		typ:     typ,
		load:    load,
		catalog: catalog,
		log:     log,
		filter:  query.NewFilterState(),
		page:    query.NewPageState(pageSize),
	}
}

// Load fetches and normalizes the collection. Safe to call concurrently; if
// a newer Load has started by the time this one's response arrives, the
// response is dropped so a slow early fetch can never overwrite a newer one.
// On failure the existing collection is left untouched.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	raws, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		metrics.StaleResponsesDiscarded.WithLabelValues(string(c.typ)).Inc()
		c.log.Debug("stale fetch response discarded", map[string]interface{}{
			"recordType": string(c.typ),
			"sequence":   seq,
			"current":    c.seq,
		})
		return nil
	}
	c.loading = false
	if err != nil {
		c.lastErr = err
		c.log.Warn("collection load failed", map[string]interface{}{
			"recordType": string(c.typ),
			"error":      err.Error(),
		})
		return err
	}
	c.lastErr = nil
	c.collection = records.NormalizeAll(raws, c.typ, c.log)
	c.clampLocked()
	return nil
}

// Loading reports whether a fetch is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Err returns the error of the most recent completed load, if any.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Records returns a snapshot of the normalized collection.
func (c *Controller) Records() []records.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]records.Record, len(c.collection))
	copy(out, c.collection)
	return out
}

// Merge adds a freshly created record to the in-memory collection. Used
// after a successful draft submission. A record whose id is already present
// replaces the existing one, keeping ids unique per collection.
func (c *Controller) Merge(rec records.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.collection {
		if existing.ID == rec.ID {
			c.collection[i] = rec
			c.clampLocked()
			return
		}
	}
	c.collection = append(c.collection, rec)
	c.clampLocked()
}

// SetSearch updates the free-text filter and re-clamps the page.
func (c *Controller) SetSearch(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Search = text
	c.clampLocked()
}

// SetCategory updates the category filter and re-clamps the page.
func (c *Controller) SetCategory(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Category = category
	c.clampLocked()
}

// SetStatus updates the status filter and re-clamps the page.
func (c *Controller) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Status = status
	c.clampLocked()
}

// Reset restores the match-all filter defaults and returns to page 1.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter.Reset()
	c.page.Current = 1
}

// Filter returns the current filter selection.
func (c *Controller) Filter() query.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetPage jumps to a page, clamping silently at the bounds.
func (c *Controller) SetPage(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Current = n
	c.clampLocked()
}

// NextPage advances one page, stopping at the last.
func (c *Controller) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Current++
	c.clampLocked()
}

// PrevPage steps back one page, stopping at the first.
func (c *Controller) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Current--
	c.clampLocked()
}

func (c *Controller) clampLocked() {
	filtered := query.Apply(c.collection, c.filter)
	total := query.TotalPages(len(filtered), c.page.Size)
	c.page.Current = query.Clamp(c.page.Current, total)
}

// Row is one display-resolved record: locale fields rendered for the active
// language, raw fields passed through untouched.
type Row struct {
	ID     string
	Type   records.RecordType
	Fields map[string]string
	Raw    map[string]interface{}
}

// View is what the UI renders for the current filter and page selection.
type View struct {
	Rows          []Row
	CurrentPage   int
	TotalPages    int
	FilteredCount int
	TotalRecords  int
}

// Visible resolves the current page for the given language. Resolution
// happens at call time from the normalized collection, so a language switch
// needs no reload.
func (c *Controller) Visible(lang string) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := query.Apply(c.collection, c.filter)
	page := query.Paginate(filtered, c.page)
	c.page.Current = page.Current
	metrics.QueriesExecuted.WithLabelValues(string(c.typ)).Inc()

	rows := make([]Row, 0, len(page.Items))
	for _, rec := range page.Items {
		fields := make(map[string]string, len(rec.LocaleKeys))
		for field, key := range rec.LocaleKeys {
			fields[field] = c.catalog.Resolve(key, lang, nil)
		}
		rows = append(rows, Row{
			ID:     rec.ID,
			Type:   rec.Type,
			Fields: fields,
			Raw:    rec.RawFields,
		})
	}

	return View{
		Rows:          rows,
		CurrentPage:   page.Current,
		TotalPages:    page.TotalPages,
		FilteredCount: page.TotalRecords,
		TotalRecords:  len(c.collection),
	}
}
