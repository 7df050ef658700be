// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	API     APIConfig     `mapstructure:"api"`
	I18n    I18nConfig    `mapstructure:"i18n"`
	Query   QueryConfig   `mapstructure:"query"`
	Prefs   PrefsConfig   `mapstructure:"prefs"`
	Logging LoggingConfig `mapstructure:"logging"`
	Dev     DevConfig     `mapstructure:"dev"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the core at the agriculture backend.
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// I18nConfig controls catalog languages. Fallback is fixed to the base
// catalog; Default is only the initial preference when none is persisted.
type I18nConfig struct {
	DefaultLanguage  string `mapstructure:"default_language"`
	FallbackLanguage string `mapstructure:"fallback_language"`
}

// QueryConfig holds list-page query defaults.
type QueryConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// PrefsConfig selects the preference store backend.
type PrefsConfig struct {
	Backend string      `mapstructure:"backend"` // "memory" or "redis"
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// DevConfig configures the local stand-in backend server.
type DevConfig struct {
	Port int `mapstructure:"port"`
}

func validateConfig(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must be set")
	}
	if cfg.Query.PageSize <= 0 {
		return fmt.Errorf("query.page_size must be positive, got %d", cfg.Query.PageSize)
	}
	if cfg.I18n.FallbackLanguage == "" {
		return fmt.Errorf("i18n.fallback_language must be set")
	}
	switch cfg.Prefs.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("prefs.backend must be 'memory' or 'redis', got %q", cfg.Prefs.Backend)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "krishi-dashboard"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:5000"
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 30000
	}
	if cfg.I18n.DefaultLanguage == "" {
		cfg.I18n.DefaultLanguage = "en"
	}
	if cfg.I18n.FallbackLanguage == "" {
		cfg.I18n.FallbackLanguage = "en"
	}
	if cfg.Query.PageSize == 0 {
		cfg.Query.PageSize = 5
	}
	if cfg.Prefs.Backend == "" {
		cfg.Prefs.Backend = "memory"
	}
	if cfg.Prefs.Redis.Address == "" {
		cfg.Prefs.Redis.Address = "localhost:6379"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Dev.Port == 0 {
		cfg.Dev.Port = 5000
	}
}
