package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

const (
	headingColTitle         = 1
	headingColBoard         = 2
	headingColQualification = 3
	headingColLastDate      = 4
	headingMinCells         = 5
)

// parseHeadingPage locates the first table following a heading whose text
// contains the source's heading phrase and extracts one record per row with
// enough cells. The page lists title before board, unlike the table layout.
func parseHeadingPage(doc *goquery.Document, src Source) []jobs.Record {
	table := tableAfterHeading(doc, src.HeadingPhrase)
	if table == nil {
		return nil
	}

	var records []jobs.Record
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cols := cellTexts(row, "td")
		if len(cols) < headingMinCells {
			return
		}
		jobURL := ""
		if href, ok := row.Find("a[href]").First().Attr("href"); ok {
			jobURL = resolveURL(src.URL, href)
		}
		records = append(records, jobs.Record{
			Title:         cols[headingColTitle],
			Board:         cols[headingColBoard],
			Qualification: cols[headingColQualification],
			LastDate:      parseDayMonthYear(cols[headingColLastDate]),
			Source:        src.Label,
			URL:           jobURL,
		})
	})
	return records
}

// tableAfterHeading walks headings and tables in document order and returns
// the first table after a matching h2/h3 heading.
func tableAfterHeading(doc *goquery.Document, phrase string) *goquery.Selection {
	if phrase == "" {
		return nil
	}
	var table *goquery.Selection
	matched := false
	doc.Find("h2, h3, table").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if goquery.NodeName(sel) == "table" {
			if matched {
				table = sel
				return false
			}
			return true
		}
		if strings.Contains(cleanText(sel.Text()), phrase) {
			matched = true
		}
		return true
	})
	return table
}
