package bsncloud

import (
	"sync"
	"time"
)

// Session represents the outcome of one BSN.cloud authentication attempt.
//
// A Session is immutable: the session manager replaces the cached value
// wholesale on refresh and never mutates fields in place, so readers can
// never observe a half-updated session.
type Session struct {
	// Success reports whether the two-step handshake completed.
	Success bool
	// Err is the failure description; set if and only if Success is false.
	Err string
	// Bearer is the literal authorization header value ("Bearer <token>");
	// set if and only if Success is true.
	Bearer string
	// IssuedAt is the wall-clock time at which the token request was
	// initiated.
	IssuedAt time.Time
	// Validity is the remaining token lifetime in seconds granted by the
	// server, minus a fixed 15-second safety margin.
	Validity int
}

// IsValid reports whether the session can still be presented to the API.
// The boundary is exclusive: a check at exactly IssuedAt+Validity reports
// invalid.
func (s *Session) IsValid() bool {
	if s == nil || !s.Success {
		return false
	}
	expiry := s.IssuedAt.Add(time.Duration(s.Validity) * time.Second)
	return time.Now().Before(expiry)
}

// SessionStore holds the current credentials and cached session for one
// client. The zero store is not usable; create one with NewSessionStore.
//
// A store is safe for concurrent use. The mutex guards the whole
// read-check-refresh-write sequence of the session manager, so concurrent
// callers observe at most one in-flight authentication. Injecting a fresh
// store via WithSessionStore isolates tests and enables multi-tenant use.
type SessionStore struct {
	mu       sync.Mutex
	creds    *Credentials
	current  *Session
	envFiles []string
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Current returns the cached session, or nil if no authentication attempt
// has been made yet. The returned session may be expired or failed; use
// IsValid to check.
func (s *SessionStore) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear drops the cached session, forcing re-authentication on the next
// call. Explicitly configured credentials are kept.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
