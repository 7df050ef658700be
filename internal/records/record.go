// internal/records/record.go
package records

// RecordType tags the six list-page collections.
type RecordType string

const (
	TypeFarmer      RecordType = "farmer"
	TypeAlert       RecordType = "alert"
	TypeScheme      RecordType = "scheme"
	TypeReport      RecordType = "report"
	TypeOutbreak    RecordType = "outbreak"
	TypeMarketPrice RecordType = "market_price"
)

// Alert categories.
const (
	AlertTypeWeather  = "weather"
	AlertTypePest     = "pest"
	AlertTypeMarket   = "market"
	AlertTypeScheme   = "scheme"
	AlertTypeAdvisory = "advisory"
)

// Alert and report delivery statuses.
const (
	StatusDelivered  = "delivered"
	StatusProcessing = "processing"
	StatusFailed     = "failed"
	StatusCompleted  = "completed"
)

// Farmer and scheme lifecycle statuses.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
	StatusNew      = "new"
	StatusClosed   = "closed"
)

// Outbreak statuses.
const (
	OutbreakActive     = "active"
	OutbreakControlled = "controlled"
	OutbreakMonitoring = "monitoring"
	OutbreakTreatment  = "treatment"
)

// Market price trends (the status dimension of price records).
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// Record is the uniform internal shape every list page operates on.
// LocaleKeys holds a translation-catalog key per display field; keys absent
// from the catalog render verbatim, so backend-supplied literals (farmer
// names, composed alert titles) flow through the same path. RawFields keeps
// non-localized data (phone numbers, dates, numeric amounts) untouched.
type Record struct {
	ID         string                 `json:"id"`
	Type       RecordType             `json:"type"`
	Category   string                 `json:"category"`
	Status     string                 `json:"status"`
	LocaleKeys map[string]string      `json:"localeKeys"`
	RawFields  map[string]interface{} `json:"rawFields"`
}

// SearchValues returns the strings free-text search matches against: the
// record id, the locale-key values of the type's searchable display fields,
// and its searchable raw string fields.
func (r Record) SearchValues() []string {
	spec, ok := typeSpecs[r.Type]
	if !ok {
		return []string{r.ID}
	}
	out := make([]string, 0, len(spec.searchFields)+1)
	out = append(out, r.ID)
	for _, f := range spec.searchFields {
		if key, ok := r.LocaleKeys[f]; ok {
			out = append(out, key)
			continue
		}
		if v, ok := r.RawFields[f].(string); ok {
			out = append(out, v)
		}
	}
	return out
}
