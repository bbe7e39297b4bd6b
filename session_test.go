package bsncloud

import (
	"testing"
	"time"
)

func TestSession_IsValid(t *testing.T) {
	tests := []struct {
		name string
		sess *Session
		want bool
	}{
		{
			name: "nil session",
			sess: nil,
			want: false,
		},
		{
			name: "failed session regardless of timestamps",
			sess: &Session{Success: false, Err: "Error authenticating", IssuedAt: time.Now(), Validity: 300},
			want: false,
		},
		{
			name: "fresh session",
			sess: &Session{Success: true, Bearer: "Bearer abc", IssuedAt: time.Now(), Validity: 300},
			want: true,
		},
		{
			name: "expired session",
			sess: &Session{Success: true, Bearer: "Bearer abc", IssuedAt: time.Now().Add(-10 * time.Minute), Validity: 300},
			want: false,
		},
		{
			name: "at the exact expiry instant",
			sess: &Session{Success: true, Bearer: "Bearer abc", IssuedAt: time.Now().Add(-60 * time.Second), Validity: 60},
			want: false,
		},
		{
			name: "zero validity",
			sess: &Session{Success: true, Bearer: "Bearer abc", IssuedAt: time.Now(), Validity: 0},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionStore(t *testing.T) {
	t.Run("empty store has no session", func(t *testing.T) {
		store := NewSessionStore()
		if store.Current() != nil {
			t.Error("expected nil current session")
		}
	})

	t.Run("clear drops the session", func(t *testing.T) {
		store := NewSessionStore()
		store.mu.Lock()
		store.current = &Session{Success: true, Bearer: "Bearer abc", IssuedAt: time.Now(), Validity: 300}
		store.mu.Unlock()

		store.Clear()
		if store.Current() != nil {
			t.Error("expected nil current session after Clear")
		}
	})

	t.Run("clear keeps configured credentials", func(t *testing.T) {
		store := NewSessionStore()
		client := New(WithSessionStore(store))
		client.Configure("id", "secret", "net")

		store.Clear()

		store.mu.Lock()
		creds, err := store.resolve()
		store.mu.Unlock()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if creds.ClientID != "id" || creds.Secret != "secret" || creds.Network != "net" {
			t.Errorf("creds = %+v, want configured values", creds)
		}
	})
}
