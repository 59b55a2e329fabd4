package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"starmoon.ai/storefront-web/internal/catalog"
	"starmoon.ai/storefront-web/internal/config"
	"starmoon.ai/storefront-web/internal/i18n"
	mw "starmoon.ai/storefront-web/internal/middleware"
	"starmoon.ai/storefront-web/locales"
)

func main() {
	cfg, err := config.Load(os.Getenv, os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	logger, err := mw.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := newApp(cfg, logger)
	if err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.routes(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()
	logger.Info("web listening",
		zap.String("addr", cfg.Addr),
		zap.Bool("dev", cfg.DevMode),
		zap.String("catalog", app.catalog.Source()),
		zap.Int("products", app.catalog.Len()),
		zap.Strings("locales", app.bundle.Supported()),
	)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// app holds the immutable state shared by all requests.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	bundle  *i18n.Bundle
	views   *views
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	for _, issue := range cat.Validate() {
		logger.Warn("catalog issue",
			zap.String("slug", issue.Slug),
			zap.String("field", issue.Field),
			zap.String("severity", string(issue.Severity)),
			zap.String("detail", issue.Message),
		)
	}

	bundle, err := i18n.Load(locales.FS, cfg.DefaultLocale, cfg.Locales)
	if err != nil {
		return nil, err
	}

	v, err := newViews(cfg.TemplatesDir, cfg.DevMode)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: logger, catalog: cat, bundle: bundle, views: v}, nil
}
