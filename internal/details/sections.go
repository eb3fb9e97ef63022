package details

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// pageLines flattens the document into trimmed, non-empty text lines, one per
// text node. Scripts and styles must already be stripped.
func pageLines(doc *goquery.Document) []string {
	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				lines = append(lines, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return lines
}

// sectionByHeading finds the first h2..h5 heading containing any of the
// keywords (case-insensitive) and collects the text of every following list
// item and paragraph, in document order, until the next heading.
func sectionByHeading(doc *goquery.Document, keywords ...string) []string {
	var section []string
	inSection := false
	doc.Find("h2, h3, h4, h5, li, p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		name := goquery.NodeName(sel)
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if name == "li" || name == "p" {
			if inSection && text != "" {
				section = append(section, text)
			}
			return true
		}
		// Heading node.
		if inSection {
			return false
		}
		lower := strings.ToLower(text)
		for _, k := range keywords {
			if strings.Contains(lower, strings.ToLower(k)) {
				inSection = true
				break
			}
		}
		return true
	})
	return section
}

// applySections fills the list-shaped fields from heading-delimited blocks.
func applySections(doc *goquery.Document, d *jobs.Details) {
	if len(d.Eligibility) == 0 {
		d.Eligibility = sectionByHeading(doc, "Eligibility", "Essential Qualification", "Essential Qualifications")
	}
	if len(d.DesirableSkills) == 0 {
		d.DesirableSkills = sectionByHeading(doc, "Desirable Skills", "Desired Skills", "Desirable Qualification")
	}
	if len(d.Experience) == 0 {
		d.Experience = sectionByHeading(doc, "Experience", "Work Experience")
	}
	if len(d.SalaryDetails) == 0 {
		if sal := sectionByHeading(doc, "Salary", "Stipend", "Pay"); len(sal) > 0 {
			d.SalaryDetails = sal
			if d.Salary == "" {
				d.Salary = sal[0]
			}
		}
	}
	if len(d.ImportantDates) == 0 {
		d.ImportantDates = sectionByHeading(doc, "Important Dates", "Important Date")
	}
	if len(d.SelectionProcess) == 0 {
		d.SelectionProcess = sectionByHeading(doc, "Selection Process", "Selection")
	}
	if len(d.GeneralInstructions) == 0 {
		d.GeneralInstructions = sectionByHeading(doc, "General Information", "General Instructions", "Instructions")
	}
	if len(d.HowToApply) == 0 {
		d.HowToApply = sectionByHeading(doc, "How to Apply")
	}
	if len(d.AgeLimit) == 0 {
		d.AgeLimit = sectionByHeading(doc, "Age Limit")
	}
}
