// Package main fetches detail pages for a previously generated jobs snapshot
// and emits a jobsDetails.json map keyed by post URL.
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
	"github.com/sarkarihub/govjobs/internal/details"
	"github.com/sarkarihub/govjobs/internal/fetcher"
	"github.com/sarkarihub/govjobs/internal/jobs"
	"github.com/sarkarihub/govjobs/internal/logging"
	"github.com/sarkarihub/govjobs/internal/snapshot"
	"github.com/sarkarihub/govjobs/internal/storage"
)

func main() {
	cfgPath := flag.String("config", "", "Path to config file")
	jobsPath := flag.String("jobs", "jobs.json", "Path to the jobs snapshot to read")
	outPath := flag.String("out", "jobsDetails.json", "Output file path")
	limit := flag.Int("limit", 0, "Maximum number of detail pages to fetch (0 = no limit)")
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

	records, err := loadJobs(*jobsPath)
	if err != nil {
		logger.Fatal("load jobs snapshot failed", zap.String("path", *jobsPath), zap.Error(err))
	}

	extractor := details.New(fetcher.New(fetcher.Config{
		UserAgent: cfg.HTTP.UserAgent,
		Timeout:   cfg.FetchTimeout(),
	}), logger.Named("details"))

	detailsMap := buildDetailsMap(ctx, extractor, records, *limit, logger)

	payload := snapshot.BuildDetailsPayload(detailsMap, time.Now())
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Fatal("encode snapshot failed", zap.Error(err))
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Fatal("write snapshot failed", zap.String("path", *outPath), zap.Error(err))
	}
	logger.Info("details snapshot written", zap.String("path", *outPath), zap.Int("details", payload.Count))

	if !*upload {
		return
	}
	store, err := storage.NewProvider(ctx, cfg.Storage.Provider, cfg.Storage.GCSBucket, cfg.Storage.LocalDir)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}
	object := path.Join(cfg.Storage.Prefix, "jobsDetails.json")
	uri, err := store.PutObject(ctx, object, "application/json", bytes.NewReader(data))
	if err != nil {
		logger.Fatal("snapshot upload failed", zap.String("object", object), zap.Error(err))
	}
	logger.Info("snapshot uploaded", zap.String("uri", uri))
}

// loadJobs reads a jobs snapshot file, accepting both the wrapped payload
// shape and a bare record array.
func loadJobs(jobsPath string) ([]jobs.Record, error) {
	data, err := os.ReadFile(jobsPath)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}
	var payload snapshot.JobsPayload
	if err := json.Unmarshal(data, &payload); err == nil && payload.Jobs != nil {
		return payload.Jobs, nil
	}
	var records []jobs.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode jobs file: %w", err)
	}
	return records, nil
}

// buildDetailsMap extracts details for each unique post URL, in snapshot
// order, stopping at limit when one is set.
func buildDetailsMap(
	ctx context.Context,
	extractor *details.Extractor,
	records []jobs.Record,
	limit int,
	logger *zap.Logger,
) map[string]jobs.Details {
	detailsMap := make(map[string]jobs.Details)
	fetched := 0
	for _, record := range records {
		if ctx.Err() != nil {
			break
		}
		if record.URL == "" {
			continue
		}
		if _, ok := detailsMap[record.URL]; ok {
			continue
		}
		detailsMap[record.URL] = extractor.Extract(ctx, record.URL)
		fetched++
		if fetched%100 == 0 {
			logger.Info("details progress", zap.Int("fetched", fetched))
		}
		if limit > 0 && fetched >= limit {
			break
		}
	}
	return detailsMap
}
