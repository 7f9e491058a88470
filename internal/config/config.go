package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSourceURL is the built-in job feed, used when no config file
// overrides it.
const DefaultSourceURL = "https://mocki.io/v1/5923b1db-516f-496c-a7e9-7a18b5104deb"

const (
	defaultFetchTimeout = 10 * time.Second
	defaultListenAddr   = ":8000"
)

// Config is the root configuration for jobfeed.
type Config struct {
	SourceURL    string        // job feed URL
	FetchTimeout time.Duration // bound on the one upstream fetch
	ListenAddr   string        // HTTP API listen address
	RemoteAPIURL string        // deployed API base URL, required by the proxy command
	RateLimit    RateLimitConfig
}

// RateLimitConfig controls the HTTP API token-bucket limiter.
// A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	SourceURL    string          `yaml:"source_url"`
	FetchTimeout string          `yaml:"fetch_timeout"`
	ListenAddr   string          `yaml:"listen_addr"`
	RemoteAPIURL string          `yaml:"remote_api_url"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{
		SourceURL:    DefaultSourceURL,
		FetchTimeout: defaultFetchTimeout,
		ListenAddr:   defaultListenAddr,
	}
	applyEnv(cfg)
	return cfg
}

// Load reads and parses the YAML config file at path, applies env
// overrides and defaults, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	timeout := defaultFetchTimeout
	if raw.FetchTimeout != "" {
		timeout, err = time.ParseDuration(raw.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse fetch_timeout %q: %w", raw.FetchTimeout, err)
		}
	}

	cfg := &Config{
		SourceURL:    raw.SourceURL,
		FetchTimeout: timeout,
		ListenAddr:   raw.ListenAddr,
		RemoteAPIURL: raw.RemoteAPIURL,
		RateLimit:    raw.RateLimit,
	}
	if cfg.SourceURL == "" {
		cfg.SourceURL = DefaultSourceURL
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv applies the env overrides the deployment platform sets:
// PORT for the HTTP listener, JOBFEED_SOURCE_URL for the feed.
func applyEnv(cfg *Config) {
	if url := os.Getenv("JOBFEED_SOURCE_URL"); url != "" {
		cfg.SourceURL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.ListenAddr = ":" + port
	}
}

func validate(cfg *Config) error {
	if cfg.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %v", cfg.FetchTimeout)
	}
	if cfg.RateLimit.RPS < 0 {
		return fmt.Errorf("rate_limit.rps must not be negative, got %v", cfg.RateLimit.RPS)
	}
	if cfg.RateLimit.RPS > 0 && cfg.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be positive when rps is set, got %d", cfg.RateLimit.Burst)
	}
	return nil
}
