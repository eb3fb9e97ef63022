// Package details turns a single post page into a best-effort structured
// result. Extraction is layered: structured key/value tables first, then
// labelled plain-text lines, then heading-delimited sections, then a link
// pass. Earlier passes win; later passes only fill what is still empty.
package details

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// Fetcher retrieves the raw body of a post page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Extractor fetches and parses post pages. It holds no per-call state and is
// safe for concurrent use.
type Extractor struct {
	fetcher Fetcher
	logger  *zap.Logger
}

// New constructs an Extractor.
func New(fetcher Fetcher, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{fetcher: fetcher, logger: logger}
}

// Extract fetches jobURL and runs the extraction passes. Failures degrade,
// never error: an empty URL, a fetch failure, or an unparsable body all
// produce a result carrying only the URL.
func (e *Extractor) Extract(ctx context.Context, jobURL string) jobs.Details {
	d := jobs.Details{URL: jobURL}
	if jobURL == "" {
		return d
	}
	body, err := e.fetcher.Fetch(ctx, jobURL)
	if err != nil {
		e.logger.Error("details fetch failed", zap.String("url", jobURL), zap.Error(err))
		return d
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		e.logger.Error("details parse failed", zap.String("url", jobURL), zap.Error(err))
		return d
	}
	extract(doc, &d)
	return d
}

// extract runs every pass over an already parsed document. Split out so tests
// can exercise the heuristics without a fetch.
func extract(doc *goquery.Document, d *jobs.Details) {
	// Script and style text would pollute the plain-text passes.
	doc.Find("script, style").Remove()

	lines := pageLines(doc)

	applyTableFields(doc, d)
	d.ImportantDatesTable = importantDatesTable(doc)
	applyLineFields(lines, d)
	applySections(doc, d)
	applyLinks(doc, lines, d)
}
