package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/vaultpass/passkit/internal/crypto"
	"github.com/vaultpass/passkit/internal/metrics"
	"github.com/vaultpass/passkit/internal/middleware"
)

// RouterConfig wires handlers and cross-cutting concerns into the API router.
type RouterConfig struct {
	Generator *GeneratorHandler
	Strength  *StrengthHandler
	// Usage is optional; /api/v1/stats is only mounted when it is set.
	Usage *UsageHandler

	Metrics        *metrics.Metrics
	JWTSecret      string
	AllowedOrigins []string
	// RateLimit guards the generate and evaluate endpoints when non-nil.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter builds the API router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	})

	r.Use(c.Handler)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(cfg.Metrics))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if cfg.RateLimit != nil {
			r.Use(cfg.RateLimit)
		}
		r.Post("/api/v1/generate", cfg.Generator.HandleGenerate)
		r.Post("/api/v1/evaluate", cfg.Strength.HandleEvaluate)
	})

	if cfg.Usage != nil {
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret, crypto.ScopeStatsRead))
			r.Get("/api/v1/stats", cfg.Usage.HandleStats)
		})
	}

	return r
}
