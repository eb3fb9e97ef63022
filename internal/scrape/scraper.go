package scrape

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// Fetcher retrieves the raw body of a listing page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Scraper turns configured source pages into job records. Failures never
// escape a page: a fetch or parse problem is logged and the page contributes
// zero records.
type Scraper struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// New constructs a Scraper.
func New(fetcher Fetcher, logger *zap.Logger) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{fetcher: fetcher, logger: logger}
}

// ScrapePage fetches one source page and applies its configured strategy.
func (s *Scraper) ScrapePage(ctx context.Context, src Source) []jobs.Record {
	body, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		s.logger.Error("page fetch failed",
			zap.String("url", src.URL),
			zap.String("label", src.Label),
			zap.Error(err),
		)
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.logger.Error("page parse failed", zap.String("url", src.URL), zap.Error(err))
		return nil
	}

	var records []jobs.Record
	switch src.Strategy {
	case StrategyTable:
		records = parseTablePage(doc, src)
	case StrategySearch:
		records = parseSearchPage(doc, src)
	case StrategyHeading:
		records = parseHeadingPage(doc, src)
	default:
		s.logger.Warn("unknown parse strategy", zap.String("strategy", string(src.Strategy)))
	}
	s.logger.Info("page scraped",
		zap.String("url", src.URL),
		zap.Int("records", len(records)),
	)
	return records
}
