package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestFetchReturnsBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("expected user agent header, got %q", got)
		}
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := New(Config{UserAgent: "test-agent", Timeout: 5 * time.Second})
	body, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(body) != "<html><body>ok</body></html>" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestFetchSameURLRepeatedly(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	// Refresh cycles hit the same source pages every pass; the collector must
	// not remember the URL as visited.
	f := New(Config{Timeout: 5 * time.Second})
	for i := 1; i <= 3; i++ {
		body, err := f.Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("Fetch() attempt %d error = %v", i, err)
		}
		if string(body) != "<html><body>ok</body></html>" {
			t.Fatalf("attempt %d: unexpected body %q", i, body)
		}
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("expected 3 server hits, got %d", got)
	}
}

func TestFetchReportsHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := New(Config{Timeout: 5 * time.Second})
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestFetchReportsConnectionFailure(t *testing.T) {
	t.Parallel()

	f := New(Config{Timeout: 2 * time.Second})
	if _, err := f.Fetch(context.Background(), "http://127.0.0.1:1/nothing"); err == nil {
		t.Fatal("expected connection error")
	}
}
