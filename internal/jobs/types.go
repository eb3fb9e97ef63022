// Package jobs defines the canonical record shapes shared by the scrape,
// cache, and API layers.
package jobs

// Record is the normalized summary of a single job listing. LastDate is an
// ISO date string; the empty string is the "unknown/unparsable" sentinel and
// is always present as a key in JSON output.
type Record struct {
	Title         string `json:"title"`
	Board         string `json:"board"`
	Qualification string `json:"qualification"`
	LastDate      string `json:"lastDate"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	State         string `json:"state,omitempty"`
	PostCount     int    `json:"postCount,omitempty"`
	Location      string `json:"location,omitempty"`
}

// DedupeKey identifies a record across pages and cycles: the URL when
// present, the title otherwise. Records with neither are not storable.
func (r Record) DedupeKey() string {
	if r.URL != "" {
		return r.URL
	}
	return r.Title
}

// Link is one entry in the important-links section of a details result.
type Link struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Display string `json:"display"`
	URL     string `json:"url"`
}

// DateEvent is a row from a page's event/date table.
type DateEvent struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

// Details holds the best-effort structured extraction for one post page.
// Every field except URL is optional; absence is normal.
type Details struct {
	URL                        string      `json:"url"`
	PostName                   string      `json:"postName,omitempty"`
	CompanyName                string      `json:"companyName,omitempty"`
	AdvtNo                     string      `json:"advtNo,omitempty"`
	NoOfPosts                  string      `json:"noOfPosts,omitempty"`
	Salary                     string      `json:"salary,omitempty"`
	Qualification              string      `json:"qualification,omitempty"`
	StartDate                  string      `json:"startDate,omitempty"`
	LastDate                   string      `json:"lastDate,omitempty"`
	OfficialWebsite            string      `json:"officialWebsite,omitempty"`
	OfficialNotificationStatus string      `json:"officialNotificationStatus,omitempty"`
	AgeLimit                   []string    `json:"ageLimit,omitempty"`
	Eligibility                []string    `json:"eligibility,omitempty"`
	DesirableSkills            []string    `json:"desirableSkills,omitempty"`
	Experience                 []string    `json:"experience,omitempty"`
	SalaryDetails              []string    `json:"salaryDetails,omitempty"`
	ImportantDates             []string    `json:"importantDates,omitempty"`
	SelectionProcess           []string    `json:"selectionProcess,omitempty"`
	GeneralInstructions        []string    `json:"generalInstructions,omitempty"`
	HowToApply                 []string    `json:"howToApply,omitempty"`
	OfficialWebsites           []string    `json:"officialWebsites,omitempty"`
	ImportantLinks             []Link      `json:"importantLinks,omitempty"`
	ImportantDatesTable        []DateEvent `json:"importantDatesTable,omitempty"`
}
