// cmd/dashboard/main.go
//
// Headless console session over the dashboard core: loads every collection
// through the backend client and the embedded datasets, then prints the first
// page of each list in the preferred language. Useful for smoke-checking a
// deployment without a UI attached.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"krishi-dashboard/internal/api"
	"krishi-dashboard/internal/common/config"
	"krishi-dashboard/internal/common/kvstore"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/dashboard"
	"krishi-dashboard/internal/i18n"
	"krishi-dashboard/internal/prefs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	catalog, err := i18n.Load(log)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, cleanup, err := buildPrefStore(ctx, cfg)
	if err != nil {
		zapLog.Fatal("preference store init failed", zap.Error(err))
	}
	defer cleanup()

	preferences := prefs.New(store, cfg.I18n, i18n.Languages, log)
	lang := preferences.Language(ctx)

	client := api.NewClient(cfg.API, log)
	pages := dashboard.NewPages(client, catalog, cfg.Query.PageSize, log)
	if err := pages.LoadAll(ctx); err != nil {
		log.Warn("some collections failed to load", map[string]interface{}{
			"error": err.Error(),
		})
	}

	printPage(catalog, lang, "farmers.title", pages.Farmers)
	printPage(catalog, lang, "alertsPage.title", pages.Alerts)
	printPage(catalog, lang, "schemes.title", pages.Schemes)
	printPage(catalog, lang, "reports.title", pages.Reports)
	printPage(catalog, lang, "pestTracking.title", pages.Outbreaks)
	printPage(catalog, lang, "market.title", pages.MarketPrices)
}

func buildPrefStore(ctx context.Context, cfg *config.Config) (prefs.Store, func(), error) {
	if cfg.Prefs.Backend != "redis" {
		return prefs.NewMemoryStore(), func() {}, nil
	}
	client, err := kvstore.NewRedis(cfg.Prefs.Redis)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, nil, err
	}
	return prefs.NewRedisStore(client), func() { client.Close() }, nil
}

func printPage(catalog *i18n.Catalog, lang, titleKey string, c *dashboard.Controller) {
	view := c.Visible(lang)
	fmt.Printf("\n== %s ==\n", catalog.Resolve(titleKey, lang, nil))
	if err := c.Err(); err != nil {
		fmt.Printf("  %s: %v\n", catalog.Resolve("common.error", lang, nil), err)
		return
	}
	for _, row := range view.Rows {
		fmt.Printf("  [%s]", row.ID)
		for field, value := range row.Fields {
			fmt.Printf(" %s=%s", field, value)
		}
		fmt.Println()
	}
	fmt.Println("  " + catalog.Resolve("common.pageOf", lang, map[string]interface{}{
		"page":  view.CurrentPage,
		"total": view.TotalPages,
	}))
}
