package bsncloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the main BSN.cloud REST API base URL. Every call
	// against it is scoped to the network selected during the handshake.
	DefaultBaseURL = "https://api.bsn.cloud/2022/06/REST"

	// DefaultAuthURL is the token endpoint of the BSN.cloud auth realm.
	DefaultAuthURL = "https://auth.bsn.cloud/realms/bsncloud/protocol/openid-connect/token"

	// DefaultDWSURL is the Remote Diagnostic Web Server base URL used for
	// per-player operations.
	DefaultDWSURL = "https://ws.bsn.cloud/rest/v1"

	// DefaultProvisionURL is the B-Deploy provisioning service base URL.
	DefaultProvisionURL = "https://provision.bsn.cloud"

	// DefaultTimeout is the default HTTP request timeout. Note that some
	// player diagnostics (ping, traceroute) legitimately run for minutes;
	// use WithTimeout to raise or disable the limit for those.
	DefaultTimeout = 30 * time.Second
)

// Client is a BSN.cloud API client.
//
// Credentials are resolved and the session handshake performed lazily on
// the first call; see Configure and the BSN_CLIENT_ID/BSN_SECRET/
// BSN_NETWORK environment variables.
type Client struct {
	baseURL      string
	authURL      string
	dwsURL       string
	provisionURL string
	httpClient   *http.Client
	store        *SessionStore
	logger       Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the main BSN.cloud API.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAuthURL sets a custom token endpoint URL.
func WithAuthURL(url string) Option {
	return func(c *Client) {
		c.authURL = url
	}
}

// WithDWSURL sets a custom base URL for the Remote DWS API.
func WithDWSURL(url string) Option {
	return func(c *Client) {
		c.dwsURL = url
	}
}

// WithProvisionURL sets a custom base URL for the B-Deploy provisioning API.
func WithProvisionURL(url string) Option {
	return func(c *Client) {
		c.provisionURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP request timeout. A zero timeout disables the
// limit entirely, restoring the blocking behavior long-running diagnostics
// need.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithSessionStore injects a session store. Useful for test isolation and
// for running multiple clients against different networks in one process.
func WithSessionStore(store *SessionStore) Option {
	return func(c *Client) {
		c.store = store
	}
}

// WithEnvFile sets the .env file path consulted by the lowest-priority
// credential tier. The default is ".env" in the working directory.
func WithEnvFile(path string) Option {
	return func(c *Client) {
		c.store.envFiles = []string{path}
	}
}

// New creates a new BSN.cloud API client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:      DefaultBaseURL,
		authURL:      DefaultAuthURL,
		dwsURL:       DefaultDWSURL,
		provisionURL: DefaultProvisionURL,
		store:        NewSessionStore(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				DisableKeepAlives:   false,
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs one authenticated request and normalizes the outcome.
//
// Transport failures and non-2xx statuses are returned inside the Result,
// never as Go errors; callers are expected to branch on expected per-call
// failures (a device offline, a missing file) without error handling
// ceremony. Go errors are reserved for the raised family: unresolvable
// credentials, a failed handshake, invalid arguments, and undecodable
// success bodies.
func (c *Client) do(ctx context.Context, method, rawurl string, params url.Values, payload any, raw []byte) (Result, error) {
	if payload != nil && raw != nil {
		return nil, ErrConflictingPayload
	}

	sess, err := c.validSession(ctx)
	if err != nil {
		return nil, err
	}

	var reqBody io.Reader
	contentType := ""
	switch {
	case raw != nil:
		reqBody = bytes.NewReader(raw)
		contentType = "application/octet-stream"
	case payload != nil:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
		contentType = "application/json"
	}

	fullURL := rawurl
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("authorization", sess.Bearer)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logRequest(ctx, method, fullURL)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, fullURL, 0, time.Since(start), err)
		return Result{"error": "request_failed", "details": err.Error()}, nil
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logResponse(ctx, method, fullURL, resp.StatusCode, time.Since(start), err)
		return Result{"error": "request_failed", "details": err.Error()}, nil
	}

	c.logResponse(ctx, method, fullURL, resp.StatusCode, time.Since(start), nil)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{"error": resp.StatusCode, "details": string(respBody)}, nil
	}

	if resp.StatusCode == http.StatusNoContent {
		return Result{"success": true}, nil
	}

	return decodeResult(respBody)
}

// get performs an authenticated GET request.
func (c *Client) get(ctx context.Context, url string, params url.Values) (Result, error) {
	return c.do(ctx, http.MethodGet, url, params, nil, nil)
}

// post performs an authenticated POST request with either a JSON payload or
// a raw byte payload (mutually exclusive).
func (c *Client) post(ctx context.Context, url string, params url.Values, payload any, raw []byte) (Result, error) {
	return c.do(ctx, http.MethodPost, url, params, payload, raw)
}

// put performs an authenticated PUT request with either a JSON payload or a
// raw byte payload (mutually exclusive).
func (c *Client) put(ctx context.Context, url string, params url.Values, payload any, raw []byte) (Result, error) {
	return c.do(ctx, http.MethodPut, url, params, payload, raw)
}

// del performs an authenticated DELETE request with an optional JSON
// payload.
func (c *Client) del(ctx context.Context, url string, params url.Values, payload any) (Result, error) {
	return c.do(ctx, http.MethodDelete, url, params, payload, nil)
}

// playerParams returns the query parameters addressing one player through
// the Remote DWS.
func playerParams(serial string) url.Values {
	return url.Values{
		"destinationType": {"player"},
		"destinationName": {serial},
	}
}
