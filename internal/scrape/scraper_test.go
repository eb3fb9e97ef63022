package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

func TestScrapePage(t *testing.T) {
	t.Parallel()

	html := `<table><tr>
	  <td>01-03-2026</td><td>XYZ Board</td><td>Officer</td>
	  <td>Graduate</td><td>ADV/1</td><td>15-03-2026</td>
	  <td><a href="/articles/officer/">Get Details</a></td>
	</tr></table>`
	fetcher := &fakeFetcher{body: []byte(html)}
	s := New(fetcher, zap.NewNop())

	src := Source{URL: "https://www.freejobalert.com/government-jobs/", Label: "Govt Jobs", Strategy: StrategyTable}
	records := s.ScrapePage(context.Background(), src)

	require.Len(t, records, 1)
	require.Equal(t, "Officer", records[0].Title)
	require.Equal(t, []string{src.URL}, fetcher.urls)
}

func TestScrapePageFetchFailureYieldsNoRecords(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	s := New(fetcher, nil)

	records := s.ScrapePage(context.Background(), Source{URL: "https://example.com/", Label: "X", Strategy: StrategyTable})
	require.Empty(t, records)
}

func TestScrapePageUnknownStrategy(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{body: []byte("<html></html>")}
	s := New(fetcher, zap.NewNop())

	records := s.ScrapePage(context.Background(), Source{URL: "https://example.com/", Label: "X", Strategy: Strategy("mystery")})
	require.Empty(t, records)
}

func TestSourcesCoverEveryStrategy(t *testing.T) {
	t.Parallel()

	srcs := Sources()
	require.NotEmpty(t, srcs)

	counts := map[Strategy]int{}
	for _, src := range srcs {
		require.NotEmpty(t, src.URL)
		require.NotEmpty(t, src.Label)
		counts[src.Strategy]++
		if src.Strategy == StrategyHeading {
			require.NotEmpty(t, src.HeadingPhrase)
		}
	}
	require.Positive(t, counts[StrategyTable])
	require.Positive(t, counts[StrategySearch])
	require.Positive(t, counts[StrategyHeading])
}
