package scrape

// Strategy selects the parser applied to a source page.
type Strategy string

// Parser strategies.
const (
	StrategyTable   Strategy = "table"
	StrategySearch  Strategy = "search"
	StrategyHeading Strategy = "heading"
)

// Source describes one configured listing page.
type Source struct {
	URL           string
	Label         string
	Strategy      Strategy
	ForcedState   string
	HeadingPhrase string
}

// Sources returns the full configured page list in its fixed scrape order:
// category tables, state tables, city search pages, qualification search
// pages, then the IndGovtJobs all-India table.
func Sources() []Source {
	var out []Source
	for _, p := range [][2]string{
		{"https://www.freejobalert.com/government-jobs/", "Govt Jobs"},
		{"https://www.freejobalert.com/bank-jobs/", "Bank Jobs"},
		{"https://www.freejobalert.com/teaching-faculty-jobs/", "Teaching Jobs"},
		{"https://www.freejobalert.com/engineering-jobs/", "Engineering Jobs"},
		{"https://www.freejobalert.com/railway-jobs/", "Railway Jobs"},
		{"https://www.freejobalert.com/police-defence-jobs/", "Police/Defence Jobs"},
		{"https://www.freejobalert.com/latest-notifications/", "Latest Notifications"},
		{"https://www.freejobalert.com/state-government-jobs/", "State Govt Jobs"},
	} {
		out = append(out, Source{URL: p[0], Label: p[1], Strategy: StrategyTable})
	}
	for _, p := range [][2]string{
		{"https://www.freejobalert.com/ap-government-jobs/", "Andhra Pradesh"},
		{"https://www.freejobalert.com/assam-government-jobs/", "Assam"},
		{"https://www.freejobalert.com/bihar-government-jobs/", "Bihar"},
		{"https://www.freejobalert.com/chhattisgarh-government-jobs/", "Chhattisgarh"},
		{"https://www.freejobalert.com/delhi-government-jobs/", "Delhi"},
		{"https://www.freejobalert.com/gujarat-government-jobs/", "Gujarat"},
		{"https://www.freejobalert.com/hp-government-jobs/", "Himachal Pradesh"},
		{"https://www.freejobalert.com/haryana-government-jobs/", "Haryana"},
		{"https://www.freejobalert.com/jharkhand-government-jobs/", "Jharkhand"},
		{"https://www.freejobalert.com/karnataka-government-jobs/", "Karnataka"},
		{"https://www.freejobalert.com/kerala-government-jobs/", "Kerala"},
		{"https://www.freejobalert.com/maharashtra-government-jobs/", "Maharashtra"},
		{"https://www.freejobalert.com/mp-government-jobs/", "Madhya Pradesh"},
		{"https://www.freejobalert.com/odisha-government-jobs/", "Odisha"},
		{"https://www.freejobalert.com/punjab-government-jobs/", "Punjab"},
		{"https://www.freejobalert.com/rajasthan-government-jobs/", "Rajasthan"},
		{"https://www.freejobalert.com/tn-government-jobs/", "Tamil Nadu"},
		{"https://www.freejobalert.com/telangana-government-jobs/", "Telangana"},
		{"https://www.freejobalert.com/uttarakhand-government-jobs/", "Uttarakhand"},
		{"https://www.freejobalert.com/up-government-jobs/", "Uttar Pradesh"},
		{"https://www.freejobalert.com/wb-government-jobs/", "West Bengal"},
	} {
		out = append(out, Source{URL: p[0], Label: p[1], Strategy: StrategyTable, ForcedState: p[1]})
	}
	for _, p := range [][2]string{
		{"https://www.freejobalert.com/search-jobs/jobs-in-hyderabad-secunderabad/", "Hyderabad Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-bhubaneshwar/", "Bhubaneswar Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-new-delhi/", "Delhi City Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-jaipur/", "Jaipur Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-patna/", "Patna Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-bengaluru-bangalore/", "Bangalore Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-indore/", "Indore Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-ludhiana/", "Ludhiana Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-mumbai/", "Mumbai Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-visakhapatnam/", "Visakhapatnam Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-pune/", "Pune Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-chennai/", "Chennai Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-kolkata/", "Kolkata Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-gandhinagar/", "Gandhinagar Jobs"},
		{"https://www.freejobalert.com/search-jobs/jobs-in-lucknow/", "Lucknow Jobs"},
	} {
		out = append(out, Source{URL: p[0], Label: p[1], Strategy: StrategySearch})
	}
	for _, p := range [][2]string{
		{"https://www.freejobalert.com/search-jobs/10th-pass-government-jobs/", "10th Pass Jobs"},
		{"https://www.freejobalert.com/search-jobs/8th-pass-government-jobs/", "8th Pass Jobs"},
		{"https://www.freejobalert.com/search-jobs/12th-pass-government-jobs/", "12th Pass Jobs"},
		{"https://www.freejobalert.com/search-jobs/diploma-government-jobs/", "Diploma Jobs"},
		{"https://www.freejobalert.com/search-jobs/iti-government-jobs/", "ITI Jobs"},
		{"https://www.freejobalert.com/search-jobs/btech-be-government-jobs/", "BTech/BE Jobs"},
		{"https://www.freejobalert.com/search-jobs/bcom-government-jobs/", "B.Com Jobs"},
		{"https://www.freejobalert.com/search-jobs/mba-pgdm-government-jobs/", "MBA/PGDM Jobs"},
		{"https://www.freejobalert.com/search-jobs/msw-government-jobs/", "MSW Jobs"},
		{"https://www.freejobalert.com/search-jobs/bsc-government-jobs/", "B.Sc Jobs"},
		{"https://www.freejobalert.com/search-jobs/msc-government-jobs/", "M.Sc Jobs"},
		{"https://www.freejobalert.com/search-jobs/ba-government-jobs/", "BA Jobs"},
		{"https://www.freejobalert.com/search-jobs/ma-government-jobs/", "MA Jobs"},
		{"https://www.freejobalert.com/search-jobs/any-graduate-government-jobs/", "Any Graduate Jobs"},
		{"https://www.freejobalert.com/search-jobs/any-post-graduate-government-jobs/", "Any Post Graduate Jobs"},
	} {
		out = append(out, Source{URL: p[0], Label: p[1], Strategy: StrategySearch})
	}
	out = append(out, Source{
		URL:           "https://www.indgovtjobs.in/2015/10/Government-Jobs.html",
		Label:         "IndGovtJobs",
		Strategy:      StrategyHeading,
		HeadingPhrase: "Latest All India",
	})
	return out
}
