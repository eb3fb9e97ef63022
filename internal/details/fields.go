package details

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// tableKeyFields folds the raw left-column labels seen on article pages into
// canonical field names. Keys are normalized: lowercased, whitespace collapsed.
var tableKeyFields = map[string]string{
	"company name":         "companyName",
	"name of company":      "companyName",
	"organization":         "companyName",
	"organisation":         "companyName",
	"post name":            "postName",
	"post names":           "postName",
	"name of post":         "postName",
	"no of posts":          "noOfPosts",
	"no. of posts":         "noOfPosts",
	"number of posts":      "noOfPosts",
	"advt no":              "advtNo",
	"advt. no":             "advtNo",
	"advertisement no":     "advtNo",
	"salary":               "salary",
	"pay scale":            "salary",
	"qualification":        "qualification",
	"age limit":            "ageLimit",
	"start date for apply": "startDate",
	"start date":           "startDate",
	"last date for apply":  "lastDate",
	"last date":            "lastDate",
	"official website":     "officialWebsite",
}

var embeddedDateRE = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)

func normalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// coerceDateValue rewrites an embedded dd-mm-yyyy (or dd/mm/yyyy) date to ISO
// form. Anything else, including an impossible calendar date, passes through
// untouched so the raw page text is still shown.
func coerceDateValue(raw string) string {
	m := embeddedDateRE.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	t, err := time.Parse("2-1-2006", m[1]+"-"+m[2]+"-"+m[3])
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}

// applyTableFields scans every table row with at least two cells as a
// key/value pair and fills canonical fields in document order. The first row
// to produce a value for a field wins.
func applyTableFields(doc *goquery.Document, d *jobs.Details) {
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
		})
		if len(cells) < 2 {
			return
		}
		key := normalizeKey(cells[0])
		var parts []string
		for _, c := range cells[1:] {
			if c != "" {
				parts = append(parts, c)
			}
		}
		val := strings.Join(parts, " ")
		if key == "" || val == "" {
			return
		}
		setField(d, tableKeyFields[key], val)
	})
}

// setField assigns val to the named canonical field when it is still unset.
func setField(d *jobs.Details, field, val string) {
	switch field {
	case "companyName":
		if d.CompanyName == "" {
			d.CompanyName = val
		}
	case "postName":
		if d.PostName == "" {
			d.PostName = val
		}
	case "noOfPosts":
		if d.NoOfPosts == "" {
			d.NoOfPosts = val
		}
	case "advtNo":
		if d.AdvtNo == "" {
			d.AdvtNo = val
		}
	case "salary":
		if d.Salary == "" {
			d.Salary = val
		}
	case "qualification":
		if d.Qualification == "" {
			d.Qualification = val
		}
	case "ageLimit":
		if len(d.AgeLimit) == 0 {
			d.AgeLimit = []string{val}
		}
	case "startDate":
		if d.StartDate == "" {
			d.StartDate = coerceDateValue(val)
		}
	case "lastDate":
		if d.LastDate == "" {
			d.LastDate = coerceDateValue(val)
		}
	case "officialWebsite":
		if d.OfficialWebsite == "" {
			d.OfficialWebsite = val
		}
	}
}

// applyLineFields scans plain-text lines of the form "label: value" and fills
// fields the table pass left empty.
func applyLineFields(lines []string, d *jobs.Details) {
	find := func(prefixes ...string) string {
		for _, line := range lines {
			lower := strings.ToLower(line)
			for _, p := range prefixes {
				if strings.HasPrefix(lower, p+":") {
					return strings.TrimSpace(line[len(p)+1:])
				}
			}
		}
		return ""
	}

	if d.PostName == "" {
		d.PostName = find("post name", "post names", "post", "name of post")
	}
	if d.NoOfPosts == "" {
		d.NoOfPosts = find("no of posts", "no. of posts", "number of posts", "no of vacancy", "vacancies")
	}
	if d.Salary == "" {
		if salary := find("salary", "pay scale", "stipend"); salary != "" {
			d.Salary = salary
			if len(d.SalaryDetails) == 0 {
				d.SalaryDetails = []string{salary}
			}
		}
	}
	if d.Qualification == "" {
		d.Qualification = find("qualification", "educational qualification", "essential qualification")
	}
	if len(d.AgeLimit) == 0 {
		if age := find("age limit", "age", "age as on"); age != "" {
			d.AgeLimit = []string{age}
		}
	}
	if d.LastDate == "" {
		if last := find("last date", "last date for online application", "last date to apply"); last != "" {
			d.LastDate = coerceDateValue(last)
		}
	}
}

// importantDatesTable returns the rows of the first table whose header
// mentions both "event" and "date".
func importantDatesTable(doc *goquery.Document) []jobs.DateEvent {
	var events []jobs.DateEvent
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		var header []string
		rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			header = append(header, strings.ToLower(strings.Join(strings.Fields(cell.Text()), " ")))
		})
		joined := strings.Join(header, " ")
		if !strings.Contains(joined, "event") || !strings.Contains(joined, "date") {
			return true
		}
		rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
			var cells []string
			row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
				cells = append(cells, strings.Join(strings.Fields(cell.Text()), " "))
			})
			if len(cells) >= 2 {
				events = append(events, jobs.DateEvent{Event: cells[0], Date: cells[1]})
			}
		})
		return len(events) == 0
	})
	return events
}
