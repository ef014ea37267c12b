// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is used when API_BASE_URL is not set.
const DefaultAPIBaseURL = "http://localhost:8000"

// DefaultRequestTimeout bounds a single API call when REQUEST_TIMEOUT_SECONDS
// is not set.
const DefaultRequestTimeout = 15 * time.Second

// Config holds all configuration for the application.
type Config struct {
	APIBaseURL          string
	GoogleWalletAPIKey  string
	GoogleOAuthClientID string
	LogLevel            string
	AuthTokenFile       string
	RequestTimeout      time.Duration
	OTLPEndpoint        string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:          os.Getenv("API_BASE_URL"),
		GoogleWalletAPIKey:  os.Getenv("GOOGLE_WALLET_API_KEY"),
		GoogleOAuthClientID: os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		AuthTokenFile:       os.Getenv("AUTH_TOKEN_FILE"),
		OTLPEndpoint:        os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")

	cfg.RequestTimeout = DefaultRequestTimeout
	if secStr := os.Getenv("REQUEST_TIMEOUT_SECONDS"); secStr != "" {
		if sec, err := strconv.Atoi(secStr); err == nil && sec > 0 {
			cfg.RequestTimeout = time.Duration(sec) * time.Second
		}
	}

	if cfg.AuthTokenFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory for token file: %w", err)
		}
		cfg.AuthTokenFile = filepath.Join(home, ".config", "receipt-wallet", "token")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is usable.
func (c *Config) validate() error {
	var errs []string

	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("API_BASE_URL %q is not a valid http(s) URL", c.APIBaseURL))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("API_BASE_URL scheme %q must be http or https", u.Scheme))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
