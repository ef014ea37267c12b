package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com")
		t.Setenv("GOOGLE_WALLET_API_KEY", "wallet-key-123")
		t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "oauth-client-456")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
		require.Equal(t, "wallet-key-123", cfg.GoogleWalletAPIKey)
		require.Equal(t, "oauth-client-456", cfg.GoogleOAuthClientID)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, "/tmp/token", cfg.AuthTokenFile)
	})

	t.Run("defaults base URL when unset", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	})

	t.Run("trims trailing slash from base URL", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.example.com/")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	})

	t.Run("rejects non http base URL", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "ftp://api.example.com")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be http or https")
	})

	t.Run("rejects unparseable base URL", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "not a url")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("parses request timeout seconds", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "30")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("ignores invalid timeout and keeps default", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	})

	t.Run("ignores non-positive timeout", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")
		t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	})

	t.Run("defaults token file under home config dir", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "")
		t.Setenv("HOME", t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(cfg.AuthTokenFile, filepath.Join(".config", "receipt-wallet", "token")))
	})

	t.Run("loads OTLP endpoint", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("AUTH_TOKEN_FILE", "/tmp/token")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	})
}
