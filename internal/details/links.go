package details

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

const (
	linkTypeOfficialWebsite      = "officialWebsite"
	linkTypeOfficialNotification = "officialNotification"

	officialWebsiteLabel      = "Official Website:"
	officialNotificationLabel = "Official Notification PDF :"
	notificationMissingStatus = "Official Notification PDF : N/A"

	maxOfficialSites = 2
	maxNotifications = 2
)

var (
	govAnchorRE  = regexp.MustCompile(`(?i)\.gov\.in\b`)
	bareDomainRE = regexp.MustCompile(`(?i)\b([a-z0-9.-]+\.(?:gov\.in|nic\.in|edu\.in|org|in))\b`)
)

// normalizeLinkURL makes a href or bare domain absolute with an https scheme.
func normalizeLinkURL(raw string) string {
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		return raw
	default:
		return "https://" + raw
	}
}

func domainFromURL(u string) string {
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	if i := strings.IndexByte(u, '/'); i >= 0 {
		return u[:i]
	}
	return u
}

// officialSiteURLs gathers up to two candidate official-site URLs: anchors
// labelled "official website", anchors whose text shows a .gov.in address,
// then bare domains from the page text restricted to a suffix allow-list.
func officialSiteURLs(doc *goquery.Document, pageText string) []string {
	var urls []string
	add := func(raw string) {
		u := normalizeLinkURL(raw)
		if u == "" {
			return
		}
		for _, seen := range urls {
			if seen == u {
				return
			}
		}
		urls = append(urls, u)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		text := strings.ToLower(strings.Join(strings.Fields(a.Text()), " "))
		if strings.Contains(text, "official") && strings.Contains(text, "website") {
			href, _ := a.Attr("href")
			add(href)
		}
	})
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if govAnchorRE.MatchString(a.Text()) {
			href, _ := a.Attr("href")
			add(href)
		}
	})
	for _, m := range bareDomainRE.FindAllStringSubmatch(pageText, -1) {
		add(m[1])
	}

	if len(urls) > maxOfficialSites {
		urls = urls[:maxOfficialSites]
	}
	return urls
}

// notificationURLs gathers up to two notification-PDF links. List items
// explicitly labelled "official notification pdf" are preferred; .pdf anchors
// with notification-flavoured surrounding text fill the remainder.
func notificationURLs(doc *goquery.Document) []string {
	var urls []string
	seen := func(u string) bool {
		for _, s := range urls {
			if s == u {
				return true
			}
		}
		return false
	}

	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := strings.ToLower(strings.Join(strings.Fields(li.Text()), " "))
		if !strings.Contains(text, "official notification pdf") {
			return
		}
		if href, ok := li.Find("a[href]").First().Attr("href"); ok {
			if u := normalizeLinkURL(href); u != "" && !seen(u) {
				urls = append(urls, u)
			}
		}
	})
	if len(urls) < maxNotifications {
		contextWords := []string{
			"official notification",
			"notification pdf",
			"notification",
			"advertisement",
			"detailed notification",
			"download",
		}
		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			u := normalizeLinkURL(href)
			if !strings.HasSuffix(strings.ToLower(u), ".pdf") || seen(u) {
				return true
			}
			container := a.Closest("li, p, div")
			if container.Length() == 0 {
				container = a.Parent()
			}
			context := strings.ToLower(strings.Join(strings.Fields(container.Text()), " "))
			for _, w := range contextWords {
				if strings.Contains(context, w) {
					urls = append(urls, u)
					break
				}
			}
			return len(urls) < maxNotifications
		})
	}

	if len(urls) > maxNotifications {
		urls = urls[:maxNotifications]
	}
	return urls
}

// applyLinks runs the link pass and fills the link-shaped fields.
func applyLinks(doc *goquery.Document, lines []string, d *jobs.Details) {
	if d.OfficialWebsite == "" {
		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			text := strings.ToLower(strings.Join(strings.Fields(a.Text()), " "))
			if strings.Contains(text, "official") && strings.Contains(text, "website") {
				d.OfficialWebsite, _ = a.Attr("href")
				return false
			}
			return true
		})
	}

	sites := officialSiteURLs(doc, strings.Join(lines, "\n"))
	notifications := notificationURLs(doc)

	var links []jobs.Link
	for _, site := range sites {
		links = append(links, jobs.Link{
			Type:    linkTypeOfficialWebsite,
			Label:   officialWebsiteLabel,
			Display: domainFromURL(site),
			URL:     site,
		})
	}
	for _, u := range notifications {
		links = append(links, jobs.Link{
			Type:    linkTypeOfficialNotification,
			Label:   officialNotificationLabel,
			Display: "CLICK HERE",
			URL:     u,
		})
	}

	d.OfficialWebsites = sites
	d.ImportantLinks = links
	if len(notifications) == 0 {
		d.OfficialNotificationStatus = notificationMissingStatus
	}
}
