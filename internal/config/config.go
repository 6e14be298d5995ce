package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stocksentry/internal/model"
)

// DefaultThreshold is applied to watchlist entries with no explicit
// threshold_percent.
const DefaultThreshold = 2.0

// InstrumentEntry is one watchlist row in the config file.
type InstrumentEntry struct {
	Symbol           string  `yaml:"symbol"`
	Name             string  `yaml:"name"`
	ThresholdPercent float64 `yaml:"threshold_percent"`
}

// Config holds all application configuration.
type Config struct {
	Watchlist  []InstrumentEntry `yaml:"watchlist"`
	DataSource struct {
		Provider   string `yaml:"provider"` // "tencent" or "sina"
		BaseURL    string `yaml:"base_url"`
		TimeoutSec int    `yaml:"timeout_sec"`
	} `yaml:"data_source"`
	Poll struct {
		IntervalSec int `yaml:"interval_sec"`
	} `yaml:"poll"`
	Webhook struct {
		URL string `yaml:"url"`
	} `yaml:"webhook"`
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		cfg.Webhook.URL = v
	}
	if v := os.Getenv("QUOTE_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("QUOTE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("POLL_INTERVAL_SEC"); v != "" {
		var sec int
		if _, err := fmt.Sscanf(v, "%d", &sec); err == nil {
			cfg.Poll.IntervalSec = sec
		}
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "tencent"
	}
	if cfg.DataSource.TimeoutSec == 0 {
		cfg.DataSource.TimeoutSec = 10
	}
	if cfg.Poll.IntervalSec == 0 {
		cfg.Poll.IntervalSec = 60
	}
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	for i := range cfg.Watchlist {
		if cfg.Watchlist[i].ThresholdPercent == 0 {
			cfg.Watchlist[i].ThresholdPercent = DefaultThreshold
		}
	}

	return cfg, nil
}

// Validate checks that the process has a valid operating mode. Any failure
// here is fatal at startup.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	for i, e := range c.Watchlist {
		if e.Symbol == "" {
			return fmt.Errorf("watchlist[%d]: symbol is required", i)
		}
		if !validSymbol(e.Symbol) {
			return fmt.Errorf("watchlist[%d]: symbol %q must be market-qualified (sh/sz/bj prefix)", i, e.Symbol)
		}
		if e.ThresholdPercent < 0 {
			return fmt.Errorf("watchlist[%d]: threshold_percent must be non-negative", i)
		}
	}
	if c.Webhook.URL == "" {
		return fmt.Errorf("webhook.url is required")
	}
	if u, err := url.Parse(c.Webhook.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("webhook.url %q is not a valid http(s) URL", c.Webhook.URL)
	}
	if c.DataSource.Provider != "tencent" && c.DataSource.Provider != "sina" {
		return fmt.Errorf("data_source.provider must be tencent or sina, got %q", c.DataSource.Provider)
	}
	if c.Poll.IntervalSec < 1 {
		return fmt.Errorf("poll.interval_sec must be at least 1")
	}
	return nil
}

// Instruments converts the watchlist entries into the immutable runtime
// watchlist, preserving declaration order.
func (c *Config) Instruments() []model.Instrument {
	out := make([]model.Instrument, 0, len(c.Watchlist))
	for _, e := range c.Watchlist {
		out = append(out, model.Instrument{
			Symbol:    e.Symbol,
			Name:      e.Name,
			Threshold: e.ThresholdPercent,
		})
	}
	return out
}

func validSymbol(s string) bool {
	for _, prefix := range []string{"sh", "sz", "bj"} {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			return true
		}
	}
	return false
}
