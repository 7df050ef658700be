// Package prefs persists the two cross-page user preferences: the active
// interface language and the sidebar-collapsed flag. Everything else in the
// dashboard is page-local state and deliberately not stored here.
package prefs

import (
	"context"

	"krishi-dashboard/internal/common/config"
	"krishi-dashboard/internal/common/logger"
)

// Store keys.
const (
	keyLanguage = "language"
	keySidebar  = "sidebar_collapsed"
)

// Store reads and writes user preferences.
type Store interface {
	Language(ctx context.Context) (string, error)
	SetLanguage(ctx context.Context, lang string) error
	SidebarCollapsed(ctx context.Context) (bool, error)
	SetSidebarCollapsed(ctx context.Context, collapsed bool) error
}

// Preferences resolves stored values against configuration, degrading an
// unknown or unset language to the configured default instead of failing.
type Preferences struct {
	store      Store
	defaultLng string
	validLangs map[string]bool
	log        logger.Logger
}

// New wraps a Store with the degradation policy.
func New(store Store, cfg config.I18nConfig, languages []string, log logger.Logger) *Preferences {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	valid := make(map[string]bool, len(languages))
	for _, l := range languages {
		valid[l] = true
	}
	return &Preferences{
		store:      store,
		defaultLng: cfg.DefaultLanguage,
		validLangs: valid,
		log:        log,
	}
}

// Language returns the active language. A store failure or a stored code
// outside the supported set both degrade to the default; neither is fatal.
func (p *Preferences) Language(ctx context.Context) string {
	lang, err := p.store.Language(ctx)
	if err != nil {
		p.log.Warn("preference read failed, using default language", map[string]interface{}{
			"error":   err.Error(),
			"default": p.defaultLng,
		})
		return p.defaultLng
	}
	if !p.validLangs[lang] {
		if lang != "" {
			p.log.Warn("stored language not supported, using default", map[string]interface{}{
				"stored":  lang,
				"default": p.defaultLng,
			})
		}
		return p.defaultLng
	}
	return lang
}

// SetLanguage persists a language change. Unsupported codes are rejected
// before they reach the store.
func (p *Preferences) SetLanguage(ctx context.Context, lang string) error {
	if !p.validLangs[lang] {
		p.log.Warn("refusing to persist unsupported language", map[string]interface{}{
			"language": lang,
		})
		return nil
	}
	return p.store.SetLanguage(ctx, lang)
}

// SidebarCollapsed returns the stored flag, defaulting to expanded.
func (p *Preferences) SidebarCollapsed(ctx context.Context) bool {
	collapsed, err := p.store.SidebarCollapsed(ctx)
	if err != nil {
		return false
	}
	return collapsed
}

// SetSidebarCollapsed persists the sidebar flag.
func (p *Preferences) SetSidebarCollapsed(ctx context.Context, collapsed bool) error {
	return p.store.SetSidebarCollapsed(ctx, collapsed)
}
