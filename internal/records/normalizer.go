// internal/records/normalizer.go
package records

import (
	"fmt"
	"strings"

	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/common/metrics"

	"github.com/xeipuuv/gojsonschema"
)

// Normalize maps one raw backend record onto the uniform Record shape.
// It is a pure function: the input map is never mutated. A record missing a
// required field or carrying a value outside its enumeration fails with a
// SCHEMA_MISMATCH error; there is no partial-render coercion.
func Normalize(raw map[string]interface{}, typ RecordType) (Record, error) {
	spec, ok := typeSpecs[typ]
	if !ok {
		return Record{}, apperrors.NewSchemaMismatchError(string(typ), "unknown record type")
	}

	result, err := spec.schema.Validate(gojsonschema.NewGoLoader(raw))
	if err != nil {
		return Record{}, apperrors.NewSchemaMismatchError(string(typ), err.Error())
	}
	if !result.Valid() {
		return Record{}, apperrors.NewSchemaMismatchError(string(typ), describeErrors(result))
	}

	rec := Record{
		ID:         stringField(raw, spec.idField),
		Type:       typ,
		Category:   stringField(raw, spec.categoryField),
		Status:     stringField(raw, spec.statusField),
		LocaleKeys: make(map[string]string, len(spec.localeFields)),
		RawFields:  make(map[string]interface{}, len(spec.rawFields)),
	}

	for field, prefix := range spec.localeFields {
		value := stringField(raw, field)
		if value == "" {
			continue
		}
		if prefix == "" {
			rec.LocaleKeys[field] = value
		} else {
			rec.LocaleKeys[field] = prefix + "." + value
		}
	}

	for _, field := range spec.rawFields {
		if v, ok := raw[field]; ok {
			rec.RawFields[field] = v
		}
	}

	return rec, nil
}

// NormalizeAll maps a raw collection, excluding invalid records. Rejections
// are logged and counted; they never abort the rest of the collection.
func NormalizeAll(raws []map[string]interface{}, typ RecordType, log logger.Logger) []Record {
	out := make([]Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := Normalize(raw, typ)
		if err != nil {
			metrics.RecordsRejected.WithLabelValues(string(typ)).Inc()
			if log != nil {
				log.Warn("record rejected by normalizer", map[string]interface{}{
					"recordType": string(typ),
					"index":      i,
					"error":      err.Error(),
				})
			}
			continue
		}
		metrics.RecordsNormalized.WithLabelValues(string(typ)).Inc()
		out = append(out, rec)
	}
	return out
}

func describeErrors(result *gojsonschema.Result) string {
	parts := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}

func stringField(raw map[string]interface{}, field string) string {
	if field == "" {
		return ""
	}
	switch v := raw[field].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
