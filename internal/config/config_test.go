package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadWithFileOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	configYAML := `
server:
  port: 9090
http:
  timeout_seconds: 20
  user_agent: test-agent
refresh:
  interval_minutes: 5
cache:
  max_jobs: 100
  path: /tmp/test_cache.json
storage:
  provider: gcs
  gcs_bucket: bucket
  prefix: jobs-info
notify:
  provider: pubsub
  project_id: proj
  topic_name: refreshes
logging:
  development: false
`
	if err := os.WriteFile(path, []byte(configYAML), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.HTTP.UserAgent != "test-agent" {
		t.Fatalf("expected user agent override, got %q", cfg.HTTP.UserAgent)
	}
	if cfg.Cache.MaxJobs != 100 || cfg.Cache.Path != "/tmp/test_cache.json" {
		t.Fatalf("expected cache overrides to apply: %+v", cfg.Cache)
	}
	if got := cfg.FetchTimeout(); got != 20*time.Second {
		t.Fatalf("expected fetch timeout 20s, got %v", got)
	}
	if got := cfg.RefreshInterval(); got != 5*time.Minute {
		t.Fatalf("expected refresh interval 5m, got %v", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.HTTP.TimeoutSeconds != 15 {
		t.Fatalf("expected default timeout, got %d", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Cache.MaxJobs != 6000 || cfg.Cache.Path != "jobs_cache.json" {
		t.Fatalf("unexpected cache defaults: %+v", cfg.Cache)
	}
	if cfg.Notify.Provider != "noop" {
		t.Fatalf("expected noop notify default, got %q", cfg.Notify.Provider)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"zero timeout", func(c *Config) { c.HTTP.TimeoutSeconds = 0 }, "timeout_seconds"},
		{"zero interval", func(c *Config) { c.Refresh.IntervalMinutes = 0 }, "interval_minutes"},
		{"zero max jobs", func(c *Config) { c.Cache.MaxJobs = 0 }, "max_jobs"},
		{"empty cache path", func(c *Config) { c.Cache.Path = "" }, "cache.path"},
		{"gcs without bucket", func(c *Config) { c.Storage.Provider = "gcs"; c.Storage.GCSBucket = "" }, "gcs_bucket"},
		{"pubsub without topic", func(c *Config) { c.Notify.Provider = "pubsub" }, "topic_name"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load("")
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tc.mutate(&cfg)
			err = cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.wantSub) {
				t.Fatalf("expected error mentioning %q, got %v", tc.wantSub, err)
			}
		})
	}
}
