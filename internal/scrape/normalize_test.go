package scrape

import "testing"

func TestParseDayMonthYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"15-03-2026", "2026-03-15"},
		{"5-3-2026", "2026-03-05"},
		{" 01-01-2027 ", "2027-01-01"},
		{"31-02-2026", ""},
		{"2026-03-15", ""},
		{"soon", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := parseDayMonthYear(tc.in); got != tc.want {
			t.Errorf("parseDayMonthYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseDayMonthNameYear(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"04-Feb-2026", "2026-02-04"},
		{"4-Feb-2026", "2026-02-04"},
		{"Last date 28-Mar-2026 (extended)", "2026-03-28"},
		{"04-February-2026", ""},
		{"04-02-2026", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := parseDayMonthNameYear(tc.in); got != tc.want {
			t.Errorf("parseDayMonthNameYear(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	page := "https://www.freejobalert.com/government-jobs/"
	if got := resolveURL(page, "/articles/abc-recruitment/"); got != "https://www.freejobalert.com/articles/abc-recruitment/" {
		t.Fatalf("relative href not resolved: %q", got)
	}
	if got := resolveURL(page, "https://other.example/post"); got != "https://other.example/post" {
		t.Fatalf("absolute href mangled: %q", got)
	}
	if got := resolveURL(page, ""); got != "" {
		t.Fatalf("empty href should stay empty, got %q", got)
	}
}

func TestPostCountFromTitle(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int
	}{
		{"ABC Officer – 10 Posts", 10},
		{"XYZ Clerk - 1 Post", 1},
		{"Recruitment 1,200 posts", 1200},
		{"No vacancies mentioned", 0},
	}
	for _, tc := range cases {
		if got := postCountFromTitle(tc.in); got != tc.want {
			t.Errorf("postCountFromTitle(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPostCountFromVacancy(t *testing.T) {
	t.Parallel()

	if got := postCountFromVacancy("25 Vacancies"); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := postCountFromVacancy("Various"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestInferState(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Some City, Kerala", "Kerala"},
		{"Kochi, Ernakulam District", ""},
		{"Pune, Maharashtra State", "Maharashtra"},
		{"Hyderabad", ""},
	}
	for _, tc := range cases {
		if got := inferState(tc.in); got != tc.want {
			t.Errorf("inferState(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
