package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// Column layout shared by the tabular listing pages: post date, board, title,
// qualification, advt no, last date.
const (
	tableColBoard         = 1
	tableColTitle         = 2
	tableColQualification = 3
	tableColLastDate      = 5
	tableMinCells         = 6
)

// parseTablePage extracts records from pages that list jobs in tables, one
// "Get Details" anchor per row. Rows with too few cells are skipped, never
// errored. A forced state on the source tags every row from the page.
func parseTablePage(doc *goquery.Document, src Source) []jobs.Record {
	var records []jobs.Record
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		if !strings.Contains(link.Text(), "Get Details") {
			return
		}
		row := link.Closest("tr")
		if row.Length() == 0 {
			return
		}
		cols := cellTexts(row, "th, td")
		if len(cols) < tableMinCells {
			return
		}
		title := cols[tableColTitle]
		jobURL := ""
		if href, ok := link.Attr("href"); ok {
			jobURL = resolveURL(src.URL, href)
		}
		records = append(records, jobs.Record{
			Title:         title,
			Board:         cols[tableColBoard],
			Qualification: cols[tableColQualification],
			LastDate:      parseDayMonthYear(cols[tableColLastDate]),
			Source:        "FreeJobAlert " + src.Label,
			URL:           jobURL,
			State:         src.ForcedState,
			PostCount:     postCountFromTitle(title),
		})
	})
	return records
}

func cellTexts(row *goquery.Selection, selector string) []string {
	var cols []string
	row.Find(selector).Each(func(_ int, cell *goquery.Selection) {
		cols = append(cols, cleanText(cell.Text()))
	})
	return cols
}
