// Package main scrapes all sources in repeated passes and emits a jobs.json
// snapshot, optionally uploading it to blob storage.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/config"
	"github.com/sarkarihub/govjobs/internal/fetcher"
	"github.com/sarkarihub/govjobs/internal/jobs"
	"github.com/sarkarihub/govjobs/internal/logging"
	"github.com/sarkarihub/govjobs/internal/scrape"
	"github.com/sarkarihub/govjobs/internal/snapshot"
	"github.com/sarkarihub/govjobs/internal/storage"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	outPath := flag.String("out", "jobs.json", "Output file path")
	targetCount := flag.Int("target", 5000, "Stop once this many unique jobs are collected")
	maxRuntime := flag.Duration("max-runtime", 15*time.Minute, "Overall time budget")
	retrySleep := flag.Duration("retry-sleep", 20*time.Second, "Pause between passes")
	maxPasses := flag.Int("max-passes", 10, "Maximum scrape passes")
	upload := flag.Bool("upload", false, "Upload the snapshot to the configured blob store")
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
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scraper := scrape.New(fetcher.New(fetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	}), logger.Named("scrape"))

	records := collect(ctx, scraper, cfg.Cache.MaxJobs, *targetCount, *maxRuntime, *retrySleep, *maxPasses, logger)

	payload := snapshot.BuildJobsPayload(records, time.Now())
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Fatal("encode snapshot failed", zap.Error(err))
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Fatal("write snapshot failed", zap.String("path", *outPath), zap.Error(err))
	}
	logger.Info("snapshot written", zap.String("path", *outPath), zap.Int("jobs", payload.Count))

	if !*upload {
		return
	}
	store, err := storage.NewProvider(ctx, cfg.Storage.Provider, cfg.Storage.GCSBucket, cfg.Storage.LocalDir)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}
	object := path.Join(cfg.Storage.Prefix, "jobs.json")
	uri, err := store.PutObject(ctx, object, "application/json", bytes.NewReader(data))
	if err != nil {
		logger.Fatal("snapshot upload failed", zap.String("object", object), zap.Error(err))
	}
	logger.Info("snapshot uploaded", zap.String("uri", uri))
}

// collect runs full scrape passes until the target count is reached, growth
// stalls for two consecutive passes, or the time budget runs out. Records
// from earlier passes win dedupe ties.
func collect(
	ctx context.Context,
	scraper *scrape.Scraper,
	maxJobs, targetCount int,
	maxRuntime, retrySleep time.Duration,
	maxPasses int,
	logger *zap.Logger,
) []jobs.Record {
	start := time.Now()
	var all []jobs.Record
	noGrowthRounds := 0

	for pass := 1; pass <= maxPasses; pass++ {
		if time.Since(start) > maxRuntime {
			break
		}
		var fresh []jobs.Record
		for _, src := range scrape.Sources() {
			if ctx.Err() != nil {
				return all
			}
			fresh = append(fresh, scraper.ScrapePage(ctx, src)...)
		}
		merged := jobs.DedupeAndSort(append(append([]jobs.Record(nil), all...), fresh...), maxJobs)
		if len(merged) == len(all) {
			noGrowthRounds++
		} else {
			noGrowthRounds = 0
		}
		all = merged
		logger.Info("scrape pass complete", zap.Int("pass", pass), zap.Int("jobs", len(all)))

		if len(all) >= targetCount || noGrowthRounds >= 2 {
			break
		}
		if time.Since(start)+retrySleep > maxRuntime {
			break
		}
		select {
		case <-ctx.Done():
			return all
		case <-time.After(retrySleep):
		}
	}
	return all
}
