// internal/records/schema.go
package records

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// typeSpec describes how raw backend records of one type map onto the
// uniform Record shape.
type typeSpec struct {
	schemaJSON string
	schema     *gojsonschema.Schema

	idField       string
	categoryField string
	statusField   string

	// localeFields maps display field -> catalog key prefix. An empty prefix
	// means the raw value already is the key (or a literal that renders
	// verbatim through the never-blank fallback).
	localeFields map[string]string

	// rawFields are carried into RawFields untouched when present.
	rawFields []string

	// searchFields name the fields free-text search covers.
	searchFields []string
}

var typeSpecs = map[RecordType]*typeSpec{
	TypeFarmer: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "name", "district", "village", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"name": {"type": "string", "minLength": 1},
				"district": {"type": "string", "minLength": 1},
				"village": {"type": "string", "minLength": 1},
				"status": {"enum": ["active", "pending", "inactive"]},
				"phone": {"type": "string"},
				"email": {"type": "string"},
				"landSize": {"type": ["string", "number"]},
				"crops": {"type": "array", "items": {"type": "string"}},
				"registrationDate": {"type": "string"},
				"kccNumber": {"type": "string"}
			}
		}`,
		idField:       "id",
		categoryField: "district",
		statusField:   "status",
		localeFields: map[string]string{
			"name":     "",
			"district": "districts",
			"village":  "villages",
		},
		rawFields:    []string{"phone", "email", "landSize", "crops", "registrationDate", "kccNumber"},
		searchFields: []string{"name", "village", "district"},
	},
	TypeAlert: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "title", "message", "type", "priority", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"title": {"type": "string", "minLength": 1},
				"message": {"type": "string", "minLength": 1},
				"type": {"enum": ["weather", "pest", "market", "scheme", "advisory"]},
				"priority": {"enum": ["low", "medium", "high", "critical"]},
				"status": {"enum": ["delivered", "processing", "failed"]},
				"districts": {"type": "array", "items": {"type": "string"}},
				"recipients": {"type": "number"},
				"deliveryRate": {"type": "number"},
				"sentAt": {"type": "string"}
			}
		}`,
		idField:       "id",
		categoryField: "type",
		statusField:   "status",
		localeFields: map[string]string{
			"title":    "",
			"message":  "",
			"type":     "alertsPage.types",
			"priority": "alertsPage.priority",
			"status":   "alertsPage.status",
		},
		rawFields:    []string{"districts", "recipients", "deliveryRate", "sentAt"},
		searchFields: []string{"title", "message"},
	},
	TypeScheme: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "name", "category", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"name": {"type": "string", "minLength": 1},
				"category": {"enum": ["incomeSupport", "insurance", "soilHealth", "credit", "sustainableAgriculture"]},
				"status": {"enum": ["active", "new", "closed"]},
				"beneficiaries": {"type": "number"},
				"budget": {"type": ["string", "number"]},
				"deadline": {"type": "string"},
				"launchedOn": {"type": "string"}
			}
		}`,
		idField:       "id",
		categoryField: "category",
		statusField:   "status",
		localeFields: map[string]string{
			"name":     "schemes.data.names",
			"category": "schemes.data.categories",
			"status":   "schemes.status",
		},
		rawFields:    []string{"beneficiaries", "budget", "deadline", "launchedOn"},
		searchFields: []string{"name"},
	},
	TypeReport: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "title", "type", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"title": {"type": "string", "minLength": 1},
				"type": {"enum": ["registration", "analytics", "pest", "market", "schemes"]},
				"status": {"enum": ["completed", "processing", "failed"]},
				"generatedAt": {"type": "string"},
				"format": {"enum": ["PDF", "Excel", "CSV"]},
				"size": {"type": "string"},
				"dateRange": {"type": "object"}
			}
		}`,
		idField:       "id",
		categoryField: "type",
		statusField:   "status",
		localeFields: map[string]string{
			"title":  "",
			"type":   "reports.types",
			"status": "reports.status",
		},
		rawFields:    []string{"generatedAt", "format", "size", "dateRange"},
		searchFields: []string{"title"},
	},
	TypeOutbreak: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "pest", "crop", "district", "severity", "status"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"pest": {"type": "string", "minLength": 1},
				"crop": {"type": "string", "minLength": 1},
				"district": {"type": "string", "minLength": 1},
				"severity": {"enum": ["low", "medium", "high"]},
				"status": {"enum": ["active", "controlled", "monitoring", "treatment"]},
				"affectedArea": {"type": ["string", "number"]},
				"reportedAt": {"type": "string"}
			}
		}`,
		idField:       "id",
		categoryField: "severity",
		statusField:   "status",
		localeFields: map[string]string{
			"pest":     "pestTracking.data.pests",
			"crop":     "pestTracking.data.crops",
			"district": "districts",
			"severity": "pestTracking.severity",
			"status":   "pestTracking.status",
		},
		rawFields:    []string{"affectedArea", "reportedAt"},
		searchFields: []string{"pest", "crop", "district"},
	},
	TypeMarketPrice: {
		schemaJSON: `{
			"type": "object",
			"required": ["id", "commodity", "market", "price", "trend"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"commodity": {"type": "string", "minLength": 1},
				"market": {"type": "string", "minLength": 1},
				"price": {"type": "number"},
				"unit": {"type": "string"},
				"change": {"type": "number"},
				"trend": {"enum": ["rising", "falling", "stable"]},
				"recordedAt": {"type": "string"}
			}
		}`,
		idField:       "id",
		categoryField: "commodity",
		statusField:   "trend",
		localeFields: map[string]string{
			"commodity": "market.commodities",
			"market":    "districts",
			"trend":     "market.trend",
		},
		rawFields:    []string{"price", "unit", "change", "recordedAt"},
		searchFields: []string{"commodity", "market"},
	},
}

func init() {
	for typ, spec := range typeSpecs {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(spec.schemaJSON))
		if err != nil {
			panic(fmt.Sprintf("records: schema for %s does not compile: %v", typ, err))
		}
		spec.schema = schema
	}
}

// Types lists every record type with a registered schema.
func Types() []RecordType {
	return []RecordType{TypeFarmer, TypeAlert, TypeScheme, TypeReport, TypeOutbreak, TypeMarketPrice}
}
