package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaultpass/passkit/internal/config"
	"github.com/vaultpass/passkit/internal/crypto"
	"github.com/vaultpass/passkit/internal/handler"
	"github.com/vaultpass/passkit/internal/metrics"
	"github.com/vaultpass/passkit/internal/middleware"
	"github.com/vaultpass/passkit/internal/repository"
	"github.com/vaultpass/passkit/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Usage recording and the stats endpoint need a database.
	var usageStore service.UsageStore
	var usageHandler *handler.UsageHandler
	if cfg.DatabaseDSN == "" {
		slog.Info("DATABASE_DSN not set, usage statistics disabled")
	} else if db, err := repository.NewDB(ctx, cfg.DatabaseDSN); err != nil {
		slog.Warn("database connection failed, usage statistics disabled", "error", err)
	} else {
		defer db.Close()
		usageStore = repository.NewUsageRepository(db)
		usageHandler = handler.NewUsageHandler(service.NewUsageService(usageStore))
	}

	genService := service.NewGeneratorService(crypto.SystemSource(), usageStore, m)
	strengthService := service.NewStrengthService(m)

	r := handler.NewRouter(handler.RouterConfig{
		Generator:      handler.NewGeneratorHandler(genService),
		Strength:       handler.NewStrengthHandler(strengthService),
		Usage:          usageHandler,
		Metrics:        m,
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.CORSOrigins,
		RateLimit:      middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
