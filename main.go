package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/sekammas/sekammas/apps/website/internal/config"
	"github.com/sekammas/sekammas/apps/website/internal/content"
	"github.com/sekammas/sekammas/apps/website/internal/handlers"
	"github.com/sekammas/sekammas/apps/website/internal/logger"
	mw "github.com/sekammas/sekammas/apps/website/internal/middleware"
	"github.com/sekammas/sekammas/apps/website/internal/server"
	"github.com/sekammas/sekammas/apps/website/public"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("website stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}
	site = site.WithContactURL(cfg.ContactURL)

	pages, err := handlers.NewPages(site, cfg.SiteURL, logger.Scope(zl, "pages"))
	if err != nil {
		return err
	}

	staticFS, err := public.StaticFS()
	if err != nil {
		return err
	}
	assets := mw.NewAssets(staticFS, "/static")
	pages.WithAssetURL(assets.URL)

	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	h, err := server.NewRouter(server.Deps{
		Pages:    pages,
		Assets:   assets,
		Logger:   logger.Scope(zl, "http"),
		Registry: reg,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl.Info("starting website",
		zap.String("addr", cfg.Addr()),
		zap.String("environment", cfg.Environment),
		zap.String("contact_url", site.Contact.LinkURL),
	)
	return server.Run(ctx, server.Options{
		Addr:            cfg.Addr(),
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		IdleTimeout:     cfg.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, h, zl)
}
