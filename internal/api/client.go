// Package api is the single chokepoint for all network access to the
// Receipt Wallet backend. It builds requests, attaches the bearer token,
// decodes typed JSON responses and normalizes transport failures.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"gitlab.com/thuraaung/receipt-wallet/internal/logger"
)

// Backend endpoint paths, relative to the configured base URL.
const (
	endpointReceipts       = "/api/receipts"
	endpointUpload         = "/api/receipts/upload"
	endpointAssistantQuery = "/api/assistant/query"
	endpointInsights       = "/api/insights"
	endpointSpending       = "/api/spending"
	endpointWalletPasses   = "/api/wallet/passes"
	endpointUserProfile    = "/api/user/profile"
	endpointAuth           = "/api/auth"
)

// DefaultReceiptLimit is used when a receipt listing does not specify one.
const DefaultReceiptLimit = 20

// Client talks to the Receipt Wallet backend. All pages depend on it
// through this method surface; no other component performs network I/O.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	requests   metric.Int64Counter
}

// New creates a backend client. The token store is required; it owns the
// persisted credential lifecycle. A non-positive timeout falls back to 15s.
func New(baseURL string, tokens TokenStore, timeout time.Duration) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = "http://localhost:8000"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}

	counter, err := otel.Meter("receipt-wallet/api").Int64Counter(
		"api_client_requests",
		metric.WithDescription("Requests issued against the backend API"),
	)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to create request counter")
	}

	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens:   tokens,
		requests: counter,
	}
}

// SetAuthToken stores the credential attached to subsequent requests.
func (c *Client) SetAuthToken(token string) error {
	return c.tokens.Set(token)
}

// ClearAuthToken removes the stored credential.
func (c *Client) ClearAuthToken() error {
	return c.tokens.Clear()
}

// IsAuthenticated reports whether a credential is currently stored.
func (c *Client) IsAuthenticated() bool {
	return c.token() != ""
}

// token reads the stored credential. Storage failures degrade to an
// unauthenticated request rather than failing the call.
func (c *Client) token() string {
	token, err := c.tokens.Token()
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Failed to read auth token")
		return ""
	}
	return token
}

// newRequest builds a request against the configured base URL with the
// bearer token attached when one is stored.
func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// send issues the request and normalizes non-success statuses to *Error.
// The response body is only returned for success statuses.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	c.count(req.Context(), req.Method, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		return nil, &Error{
			StatusCode: resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
		}
	}
	return resp, nil
}

func (c *Client) count(ctx context.Context, method string, resp *http.Response) {
	if c.requests == nil {
		return
	}
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.Int("http.status_code", status),
	))
}

// doJSON performs a JSON round trip and decodes the response body as T.
// The response shape is trusted; beyond JSON well-formedness there is no
// validation against the declared type.
func doJSON[T any](ctx context.Context, c *Client, method, endpoint string, body any) (T, error) {
	var zero T

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, endpoint, payload)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return zero, err
	}
	defer func() { _ = resp.Body.Close() }()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// doVoid performs a JSON round trip and discards the response body.
func (c *Client) doVoid(ctx context.Context, method, endpoint string, body any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, endpoint, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.send(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
