package dashboard

import (
	"sync"

	"krishi-dashboard/internal/i18n"
	"krishi-dashboard/internal/records"
)

// Catalog keys of the stock message templates, one per broadcast alert type.
var stockTemplates = map[string]string{
	records.AlertTypeWeather: "alertsPage.templates.heavyRain",
	records.AlertTypePest:    "alertsPage.templates.pestOutbreak",
	records.AlertTypeMarket:  "alertsPage.templates.priceUpdate",
}

// TemplateStore holds the alert message templates. Edits are in-memory only
// and scoped to the session; the stock catalog text is the baseline.
type TemplateStore struct {
	mu      sync.RWMutex
	catalog *i18n.Catalog
	edits   map[string]string
}

// NewTemplateStore builds a store over the loaded catalog.
func NewTemplateStore(catalog *i18n.Catalog) *TemplateStore {
	return &TemplateStore{
		catalog: catalog,
		edits:   make(map[string]string),
	}
}

// Types lists the alert types that carry a stock template.
func (t *TemplateStore) Types() []string {
	return []string{records.AlertTypeWeather, records.AlertTypePest, records.AlertTypeMarket}
}

// Body returns the template text for one alert type in the given language.
// An edited body wins over the catalog; {param} placeholders stay verbatim
// until Render substitutes them.
func (t *TemplateStore) Body(alertType, lang string) string {
	t.mu.RLock()
	edited, ok := t.edits[alertType]
	t.mu.RUnlock()
	if ok {
		return edited
	}
	key, ok := stockTemplates[alertType]
	if !ok {
		return ""
	}
	return t.catalog.Resolve(key, lang, nil)
}

// Edit replaces the template body for one alert type.
func (t *TemplateStore) Edit(alertType, body string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.edits[alertType] = body
}

// Revert drops the session edit, restoring the catalog text.
func (t *TemplateStore) Revert(alertType string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.edits, alertType)
}

// Render fills a template's placeholders and returns the message text ready
// for an AlertDraft.
func (t *TemplateStore) Render(alertType, lang string, args map[string]interface{}) string {
	t.mu.RLock()
	edited, ok := t.edits[alertType]
	t.mu.RUnlock()
	if ok {
		return i18n.Interpolate(edited, args)
	}
	key, found := stockTemplates[alertType]
	if !found {
		return ""
	}
	return t.catalog.Resolve(key, lang, args)
}
