// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Storage StorageConfig `mapstructure:"storage"`
	Notify  NotifyConfig  `mapstructure:"notify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures outbound fetch behavior.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// RefreshConfig governs the periodic scrape cycle.
type RefreshConfig struct {
	IntervalMinutes int `mapstructure:"interval_minutes"`
}

// CacheConfig sets the snapshot bounds and the durable cache location.
type CacheConfig struct {
	MaxJobs int    `mapstructure:"max_jobs"`
	Path    string `mapstructure:"path"`
}

// StorageConfig selects the blob store used for bulk snapshot uploads.
type StorageConfig struct {
	Provider  string `mapstructure:"provider"`
	GCSBucket string `mapstructure:"gcs_bucket"`
	Prefix    string `mapstructure:"prefix"`
	LocalDir  string `mapstructure:"local_dir"`
}

// NotifyConfig holds metadata for refresh-completion notifications.
type NotifyConfig struct {
	Provider  string `mapstructure:"provider"`
	ProjectID string `mapstructure:"project_id"`
	TopicName string `mapstructure:"topic_name"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("JOBSAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("http.timeout_seconds", 15)
	v.SetDefault("http.user_agent", "govjobs-bot/1.0")
	v.SetDefault("refresh.interval_minutes", 10)
	v.SetDefault("cache.max_jobs", 6000)
	v.SetDefault("cache.path", "jobs_cache.json")
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.prefix", "jobs-info")
	v.SetDefault("storage.local_dir", "snapshots")
	v.SetDefault("notify.provider", "noop")
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Refresh.IntervalMinutes <= 0 {
		return fmt.Errorf("refresh.interval_minutes must be > 0")
	}
	if c.Cache.MaxJobs <= 0 {
		return fmt.Errorf("cache.max_jobs must be > 0")
	}
	if c.Cache.Path == "" {
		return fmt.Errorf("cache.path must be set")
	}
	if c.Storage.Provider == "gcs" && c.Storage.GCSBucket == "" {
		return fmt.Errorf("storage.gcs_bucket must be set when storage.provider is gcs")
	}
	if c.Notify.Provider == "pubsub" && (c.Notify.ProjectID == "" || c.Notify.TopicName == "") {
		return fmt.Errorf("notify.project_id and notify.topic_name must be set when notify.provider is pubsub")
	}
	return nil
}

// FetchTimeout converts the HTTP timeout config into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// RefreshInterval converts the refresh interval config into a duration.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Refresh.IntervalMinutes) * time.Minute
}
