// Package data embeds the development datasets the devserver serves and the
// examples/tests draw from. The fixtures mirror the shapes the real backend
// returns; they pass through the normalizer like any other payload.
package data

import (
	"embed"
	"encoding/json"
	"fmt"

	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/records"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

var fixtureFiles = map[records.RecordType]string{
	records.TypeFarmer:      "fixtures/farmers.json",
	records.TypeAlert:       "fixtures/alerts.json",
	records.TypeScheme:      "fixtures/schemes.json",
	records.TypeReport:      "fixtures/reports.json",
	records.TypeOutbreak:    "fixtures/outbreaks.json",
	records.TypeMarketPrice: "fixtures/market_prices.json",
}

// Raw returns the raw fixture collection for one record type, as the backend
// would serve it.
func Raw(typ records.RecordType) ([]map[string]interface{}, error) {
	file, ok := fixtureFiles[typ]
	if !ok {
		return nil, fmt.Errorf("no fixture for record type %q", typ)
	}
	blob, err := fixtureFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", file, err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", file, err)
	}
	return out, nil
}

// Normalized loads one fixture collection through the normalizer. Invalid
// fixtures are rejected the same way invalid backend records are.
func Normalized(typ records.RecordType, log logger.Logger) ([]records.Record, error) {
	raws, err := Raw(typ)
	if err != nil {
		return nil, err
	}
	return records.NormalizeAll(raws, typ, log), nil
}

// Districts returns the district list the filter selects over.
func Districts() ([]string, error) {
	blob, err := fixtureFS.ReadFile("fixtures/districts.json")
	if err != nil {
		return nil, fmt.Errorf("reading districts fixture: %w", err)
	}
	var out []string
	if err := json.Unmarshal(blob, &out); err != nil {
		return nil, fmt.Errorf("parsing districts fixture: %w", err)
	}
	return out, nil
}

// PestReport aggregates the outbreak fixtures into the locality -> count map
// the /api/pest-report endpoint serves.
func PestReport() (map[string]int, error) {
	raws, err := Raw(records.TypeOutbreak)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for _, raw := range raws {
		district, _ := raw["district"].(string)
		if district == "" {
			continue
		}
		out[district]++
	}
	return out, nil
}
