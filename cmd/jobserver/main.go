// Package main runs the jobs API server.
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
	"time"

	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/api"
	"github.com/sarkarihub/govjobs/internal/cache"
	"github.com/sarkarihub/govjobs/internal/config"
	"github.com/sarkarihub/govjobs/internal/details"
	"github.com/sarkarihub/govjobs/internal/fetcher"
	"github.com/sarkarihub/govjobs/internal/logging"
	"github.com/sarkarihub/govjobs/internal/notify"
	"github.com/sarkarihub/govjobs/internal/refresh"
	"github.com/sarkarihub/govjobs/internal/scrape"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", syncErr)
		}
	}()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := cache.NewStore(cfg.Cache.Path, cfg.Cache.MaxJobs, logger.Named("cache"))
	store.Hydrate()

	pageFetcher := fetcher.New(fetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	})
	scraper := scrape.New(pageFetcher, logger.Named("scrape"))
	extractor := details.New(pageFetcher, logger.Named("details"))

	var notifier notify.Provider = &notify.NoOpProvider{}
	if cfg.Notify.Provider == "pubsub" {
		pubsubNotifier, err := notify.NewPubSubProvider(ctx, cfg.Notify.ProjectID, cfg.Notify.TopicName)
		if err != nil {
			logger.Warn("pubsub notifier init failed, continuing without", zap.Error(err))
		} else {
			notifier = pubsubNotifier
		}
	}
	defer func() {
		if closeErr := notifier.Close(); closeErr != nil {
			logger.Warn("notifier close failed", zap.Error(closeErr))
		}
	}()

	scheduler := refresh.New(store, scraper, notifier, refresh.Config{
		Interval: cfg.RefreshInterval(),
	}, logger.Named("refresh"))

	apiServer := api.NewServer(ctx, store, scheduler, extractor, cfg.Cache.MaxJobs, logger.Named("api"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           apiServer.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
