// Package refresh runs the periodic scrape loop that keeps the cache fresh.
package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/cache"
	"github.com/sarkarihub/govjobs/internal/jobs"
	"github.com/sarkarihub/govjobs/internal/metrics"
	"github.com/sarkarihub/govjobs/internal/notify"
	"github.com/sarkarihub/govjobs/internal/scrape"
)

// PageScraper produces records for one configured source page.
type PageScraper interface {
	ScrapePage(ctx context.Context, src scrape.Source) []jobs.Record
}

// Config tunes the scheduler.
type Config struct {
	// Interval is the pause between the end of one cycle and the start of
	// the next.
	Interval time.Duration
	// Sources overrides the built-in source list. Leave nil for the default.
	Sources []scrape.Source
}

// Scheduler owns the background refresh loop. It starts at most once, on
// first demand, and then runs for the life of the process.
type Scheduler struct {
	store    *cache.Store
	scraper  PageScraper
	notifier notify.Provider
	sources  []scrape.Source
	interval time.Duration
	logger   *zap.Logger

	startOnce sync.Once
}

// New constructs a Scheduler.
func New(store *cache.Store, scraper PageScraper, notifier notify.Provider, cfg Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = &notify.NoOpProvider{}
	}
	sources := cfg.Sources
	if sources == nil {
		sources = scrape.Sources()
	}
	metrics.Init()
	return &Scheduler{
		store:    store,
		scraper:  scraper,
		notifier: notifier,
		sources:  sources,
		interval: cfg.Interval,
		logger:   logger,
	}
}

// Start launches the refresh loop. Safe to call from any number of request
// goroutines; only the first call has an effect.
func (s *Scheduler) Start(ctx context.Context) {
	s.startOnce.Do(func() {
		s.logger.Info("refresh scheduler starting",
			zap.Duration("interval", s.interval),
			zap.Int("sources", len(s.sources)),
		)
		go s.loop(ctx)
	})
}

func (s *Scheduler) loop(ctx context.Context) {
	for {
		s.runCycle(ctx)
		select {
		case <-ctx.Done():
			s.logger.Info("refresh scheduler stopping", zap.Error(ctx.Err()))
			return
		case <-time.After(s.interval):
		}
	}
}

// runCycle scrapes every source in order, publishing partial progress to the
// cache after each page so readers see new records immediately. The cache is
// only marked fully loaded after the final page.
func (s *Scheduler) runCycle(ctx context.Context) {
	start := time.Now()
	cycleID := uuid.NewString()

	s.store.SetRefreshing(true)
	defer s.store.SetRefreshing(false)

	var accumulated []jobs.Record
	for i, src := range s.sources {
		if ctx.Err() != nil {
			metrics.ObserveCycle("canceled", time.Since(start))
			return
		}
		records := s.scraper.ScrapePage(ctx, src)
		status := "ok"
		if len(records) == 0 {
			status = "empty"
		}
		metrics.ObservePage(src.Label, status)

		accumulated = append(accumulated, records...)
		s.store.Replace(accumulated, i == len(s.sources)-1)
	}

	metrics.SetCachedJobs(s.store.Len())
	metrics.ObserveCycle("ok", time.Since(start))

	if err := s.notifier.Publish(ctx, cycleID); err != nil {
		s.logger.Warn("cycle notification failed", zap.String("cycle_id", cycleID), zap.Error(err))
	}
	s.logger.Info("refresh cycle complete",
		zap.String("cycle_id", cycleID),
		zap.Int("cached_jobs", s.store.Len()),
		zap.Duration("duration", time.Since(start)),
	)
}
