package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const searchBlockHTML = `<html><body>
<div class="org_tab">
  <span>RBI Jobs 2026</span>
  <table>
    <tr><td>Post Name</td><td>Office Attendant</td></tr>
    <tr><td>Qualification</td><td>10th Pass</td></tr>
    <tr><td>No. of Vacancy</td><td>578 Posts</td></tr>
    <tr><td>Location</td><td>Some City, Kerala</td></tr>
    <tr><td>Last Date to Apply</td><td>04-Feb-2026</td></tr>
    <tr><td><a href="/articles/rbi-office-attendant/">Apply Now</a></td></tr>
  </table>
</div>
</body></html>`

func TestParseSearchPage(t *testing.T) {
	t.Parallel()

	src := Source{URL: "https://www.freejobalert.com/search-jobs/jobs-in-kochi/", Label: "Kochi Jobs", Strategy: StrategySearch}
	records := parseSearchPage(mustDoc(t, searchBlockHTML), src)

	require.Len(t, records, 1)
	r := records[0]
	require.Equal(t, "RBI Jobs 2026 Office Attendant", r.Title)
	require.Equal(t, "RBI Jobs 2026", r.Board)
	require.Equal(t, "10th Pass", r.Qualification)
	require.Equal(t, "2026-02-04", r.LastDate)
	require.Equal(t, 578, r.PostCount)
	require.Equal(t, "Some City, Kerala", r.Location)
	require.Equal(t, "Kerala", r.State)
	require.Equal(t, "FreeJobAlert Kochi Jobs", r.Source)
	require.Equal(t, "https://www.freejobalert.com/articles/rbi-office-attendant/", r.URL)
}

func TestParseSearchPageForcedStateOverridesInference(t *testing.T) {
	t.Parallel()

	src := Source{URL: "https://example.com/", Label: "X", ForcedState: "Delhi"}
	records := parseSearchPage(mustDoc(t, searchBlockHTML), src)

	require.Len(t, records, 1)
	require.Equal(t, "Delhi", records[0].State)
}

func TestParseSearchPageTitleWhenPostNameContainsBoard(t *testing.T) {
	t.Parallel()

	html := `<div class="org_tab">
	  <span>SSC</span>
	  <table>
	    <tr><td>Post Name</td><td>SSC CGL Assistant</td></tr>
	    <tr><td><a href="/a">Apply Now</a></td></tr>
	  </table>
	</div>`
	records := parseSearchPage(mustDoc(t, html), Source{URL: "https://example.com/", Label: "X"})

	require.Len(t, records, 1)
	require.Equal(t, "SSC CGL Assistant", records[0].Title)
}

func TestParseSearchPageFallsBackToBoardTitle(t *testing.T) {
	t.Parallel()

	html := `<div class="org_tab">
	  <span>Some Organisation</span>
	  <table><tr><td><a href="/a">Apply Now</a></td></tr></table>
	</div>`
	records := parseSearchPage(mustDoc(t, html), Source{URL: "https://example.com/", Label: "X"})

	require.Len(t, records, 1)
	require.Equal(t, "Some Organisation", records[0].Title)
	require.Empty(t, records[0].LastDate)
	require.Zero(t, records[0].PostCount)
}
