// cmd/devserver/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"krishi-dashboard/internal/common/config"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/devserver"
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

	zapLog.Info("Starting devserver...",
		zap.String("environment", cfg.App.Environment),
		zap.Int("port", cfg.Dev.Port),
	)

	server, err := devserver.New(log)
	if err != nil {
		zapLog.Fatal("devserver init failed", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Dev.Port),
		Handler: server.Handler(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("devserver failed", zap.Error(err))
		}
	}()
	zapLog.Info("Devserver listening", zap.String("addr", httpServer.Addr))

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping devserver...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down devserver", zap.Error(err))
	}

	zapLog.Info("Devserver stopped gracefully")
}
