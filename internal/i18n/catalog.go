// Package i18n owns the translation catalogs and the localized field
// resolver. Catalogs are JSON bundles embedded at build time, one per
// supported language, flattened to dotted keys at load.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/common/metrics"
	"krishi-dashboard/internal/records"
)

//go:embed locales/*.json
var localeFS embed.FS

// Languages lists the supported language codes, base language first.
var Languages = []string{"en", "hi", "ta", "te", "ml", "or", "mr", "kn"}

// FallbackLanguage is the fixed fallback catalog.
const FallbackLanguage = "en"

// Catalog holds the per-language key tables. Immutable after Load.
type Catalog struct {
	tables map[string]map[string]string
	log    logger.Logger
}

// Load reads and flattens every embedded catalog. A malformed bundle is a
// startup failure, not a render-time one.
func Load(log logger.Logger) (*Catalog, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	tables := make(map[string]map[string]string, len(Languages))
	for _, lang := range Languages {
		raw, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, apperrors.NewCatalogInvalidError(lang, err)
		}
		var nested map[string]interface{}
		if err := json.Unmarshal(raw, &nested); err != nil {
			return nil, apperrors.NewCatalogInvalidError(lang, err)
		}
		flat := make(map[string]string)
		flatten("", nested, flat)
		tables[lang] = flat
	}
	return &Catalog{tables: tables, log: log}, nil
}

func flatten(prefix string, nested map[string]interface{}, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]interface{}:
			flatten(key, val, out)
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}

// Has reports whether lang is a loaded catalog.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.tables[lang]
	return ok
}

// Keys returns the sorted key set of one language's table.
func (c *Catalog) Keys(lang string) []string {
	table := c.tables[lang]
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve turns a dotted key into display text for the given language.
// Lookup order: exact key in lang, then the fallback catalog, then the key
// itself verbatim. It never returns empty and never fails; a missing
// translation must not hide data. {param} placeholders are substituted from
// args; unresolved placeholders stay verbatim.
func (c *Catalog) Resolve(key, lang string, args map[string]interface{}) string {
	if table, ok := c.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return Interpolate(text, args)
		}
	}
	if lang != FallbackLanguage {
		if text, ok := c.tables[FallbackLanguage][key]; ok {
			return Interpolate(text, args)
		}
	}
	metrics.TranslationMisses.WithLabelValues(lang).Inc()
	c.log.Debug("translation miss", map[string]interface{}{
		"key":      key,
		"language": lang,
	})
	return key
}

// ResolveField resolves one display field of a record through its locale
// key. Fields without a locale key fall back to the raw field rendered as
// text, keeping the never-blank policy for data the catalog cannot know
// (phone numbers, amounts).
func (c *Catalog) ResolveField(rec records.Record, field, lang string) string {
	if key, ok := rec.LocaleKeys[field]; ok {
		return c.Resolve(key, lang, nil)
	}
	if v, ok := rec.RawFields[field]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// Interpolate substitutes {param} placeholders from args. Placeholders with
// no matching arg stay verbatim.
func Interpolate(text string, args map[string]interface{}) string {
	if len(args) == 0 {
		return text
	}
	out := text
	for name, value := range args {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return out
}

// KeyParity verifies every catalog carries the identical key set. The
// translation bundles are hand-maintained; this is the build check that
// keeps them from drifting.
func (c *Catalog) KeyParity() error {
	base := c.Keys(FallbackLanguage)
	for _, lang := range Languages {
		if lang == FallbackLanguage {
			continue
		}
		keys := c.Keys(lang)
		if len(keys) != len(base) {
			return fmt.Errorf("catalog %q has %d keys, %q has %d", lang, len(keys), FallbackLanguage, len(base))
		}
		for i := range base {
			if keys[i] != base[i] {
				return fmt.Errorf("catalog %q diverges from %q at key %q", lang, FallbackLanguage, keys[i])
			}
		}
	}
	return nil
}
