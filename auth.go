package bsncloud

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// safetyMargin is deducted from the token lifetime reported by the server
// so that a token is never presented after server-side expiry due to clock
// skew or in-flight request latency.
const safetyMargin = 15 * time.Second

// tokenResponse is the body of a successful client-credentials grant.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Login performs the BSN.cloud handshake and returns the resulting session
// without caching it. Remote failures are encoded into the session rather
// than returned as errors; the only error case is unresolvable credentials.
//
// Most callers never need Login directly: every API call obtains a valid
// session transparently. It is exposed for credential checks and
// diagnostics.
func (c *Client) Login(ctx context.Context) (*Session, error) {
	c.store.mu.Lock()
	creds, err := c.store.resolve()
	c.store.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return c.authenticate(ctx, creds), nil
}

// authenticate runs the two-step handshake: a client-credentials token
// grant against the auth realm, then network selection against the main
// API. Both steps must succeed for the session to be usable.
func (c *Client) authenticate(ctx context.Context, creds Credentials) *Session {
	issuedAt := time.Now()

	failed := func(reason string) *Session {
		return &Session{Success: false, Err: reason, IssuedAt: issuedAt, Validity: 0}
	}

	// Step 1: token acquisition.
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return failed("Error authenticating")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(creds.ClientID, creds.Secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed("Error authenticating")
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil || resp.StatusCode != http.StatusOK {
		return failed("Error authenticating")
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return failed("Error authenticating")
	}
	bearer := "Bearer " + token.AccessToken

	// Step 2: network selection.
	payload, _ := json.Marshal(map[string]string{"name": creds.Network})
	req, err = http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/Self/Session/Network", bytes.NewReader(payload))
	if err != nil {
		return failed("Error selecting site")
	}
	req.Header.Set("authorization", bearer)
	req.Header.Set("Content-Type", "application/json")

	resp, err = c.httpClient.Do(req)
	if err != nil {
		return failed("Error selecting site")
	}
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return failed("Error selecting site")
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return failed(string(body))
	}

	return &Session{
		Success:  true,
		Bearer:   bearer,
		IssuedAt: issuedAt,
		Validity: token.ExpiresIn - int(safetyMargin/time.Second),
	}
}

// validSession returns the cached session if it is still usable, otherwise
// resolves credentials, re-authenticates, and caches the new session in its
// place. A failed session is never reused regardless of timestamps.
//
// The store mutex is held across the whole check-refresh-replace sequence,
// so concurrent callers trigger at most one authentication.
func (c *Client) validSession(ctx context.Context) (*Session, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.store.current.IsValid() {
		return c.store.current, nil
	}

	creds, err := c.store.resolve()
	if err != nil {
		return nil, err
	}

	sess := c.authenticate(ctx, creds)
	c.store.current = sess
	if !sess.Success {
		return nil, &AuthError{Reason: sess.Err}
	}
	return sess, nil
}
