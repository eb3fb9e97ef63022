// Package scrape converts fetched listing pages into normalized job records.
// Three interchangeable strategies cover the table, search-block, and
// heading-table layouts used by the source sites.
package scrape

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var (
	dayMonthNameYearRe = regexp.MustCompile(`(\d{1,2})-([A-Za-z]{3})-(\d{4})`)
	postCountRe        = regexp.MustCompile(`(?i)(\d[\d,]*)\s*Posts?`)
	integerRunRe       = regexp.MustCompile(`\d[\d,]*`)
	stateNoiseRe       = regexp.MustCompile(`(?i)\b(\w+ District|District|State)\b`)
)

// cleanText collapses all runs of whitespace to single spaces and trims.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// parseDayMonthYear coerces a dd-mm-yyyy string to ISO form. Coercion is
// strict-then-empty: any failure yields the empty sentinel, never a guess at
// an alternate format.
func parseDayMonthYear(raw string) string {
	t, err := time.Parse("2-1-2006", strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return t.Format(isoDate)
}

// parseDayMonthNameYear coerces a dd-Mon-yyyy string (e.g. "04-Feb-2026",
// possibly embedded in surrounding text) to ISO form, or the empty sentinel.
func parseDayMonthNameYear(raw string) string {
	m := dayMonthNameYearRe.FindStringSubmatch(raw)
	if m == nil {
		return ""
	}
	t, err := time.Parse("2-Jan-2006", m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return ""
	}
	return t.Format(isoDate)
}

// resolveURL makes href absolute relative to the page it was found on.
func resolveURL(pageURL, href string) string {
	if href == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// postCountFromTitle extracts the vacancy count from titles like
// "ABC Officer – 10 Posts". Zero means no count found.
func postCountFromTitle(title string) int {
	m := postCountRe.FindStringSubmatch(title)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// postCountFromVacancy extracts the first integer run from a vacancy string.
func postCountFromVacancy(vacancy string) int {
	m := integerRunRe.FindString(vacancy)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// inferState takes the trailing comma-separated segment of a location and
// strips the literal "District"/"State" tokens. No broader normalization is
// applied.
func inferState(location string) string {
	if !strings.Contains(location, ",") {
		return ""
	}
	parts := strings.Split(location, ",")
	candidate := strings.TrimSpace(parts[len(parts)-1])
	candidate = strings.TrimSpace(stateNoiseRe.ReplaceAllString(candidate, ""))
	return candidate
}
