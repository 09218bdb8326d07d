package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sekammas/sekammas/apps/website/internal/handlers"
	mw "github.com/sekammas/sekammas/apps/website/internal/middleware"
)

type Deps struct {
	Pages    *handlers.Pages
	Assets   *mw.Assets
	Logger   *zap.Logger
	Registry *prometheus.Registry
}

// NewRouter wires middleware and routes.
func NewRouter(d Deps) (http.Handler, error) {
	metrics, err := mw.NewMetrics(d.Registry)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Logger(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Handler)
	r.Use(middleware.Compress(5))

	r.Handle("/static/*", http.StripPrefix("/static", d.Assets))
	r.Get("/", d.Pages.LandingPage)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	return r, nil
}
