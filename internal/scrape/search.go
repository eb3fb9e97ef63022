package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// parseSearchPage extracts records from "search jobs" style pages where each
// posting sits in a div.org_tab block: a short span label (the board), a
// two-column key/value table, and an "Apply Now" anchor.
func parseSearchPage(doc *goquery.Document, src Source) []jobs.Record {
	var records []jobs.Record
	doc.Find("div.org_tab").Each(func(_ int, block *goquery.Selection) {
		board := cleanText(block.Find("span").First().Text())

		fields := map[string]string{}
		block.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
			tds := row.Find("td")
			if tds.Length() != 2 {
				return
			}
			key := cleanText(tds.Eq(0).Text())
			fields[key] = cleanText(tds.Eq(1).Text())
		})

		jobURL := ""
		block.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			if !strings.Contains(link.Text(), "Apply Now") {
				return true
			}
			if href, ok := link.Attr("href"); ok {
				jobURL = resolveURL(src.URL, href)
			}
			return false
		})

		postName := fields["Post Name"]
		qualification := firstField(fields, "Qualification", "Qualifications")
		vacancy := firstField(fields, "No. of Vacancy", "No. of Vacancies", "Vacancies")
		location := fields["Location"]
		lastDateStr := firstField(fields, "Last Date to Apply", "Last Date")

		title := postName
		if board != "" && postName != "" && !strings.Contains(postName, board) {
			title = board + " " + postName
		}
		if title == "" {
			title = board
		}

		state := src.ForcedState
		if state == "" && location != "" {
			state = inferState(location)
		}

		source := "FreeJobAlert Search"
		if src.Label != "" {
			source = "FreeJobAlert " + src.Label
		}

		records = append(records, jobs.Record{
			Title:         title,
			Board:         board,
			Qualification: qualification,
			LastDate:      parseDayMonthNameYear(lastDateStr),
			Source:        source,
			URL:           jobURL,
			State:         state,
			PostCount:     postCountFromVacancy(vacancy),
			Location:      location,
		})
	})
	return records
}

func firstField(fields map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := fields[k]; v != "" {
			return v
		}
	}
	return ""
}
