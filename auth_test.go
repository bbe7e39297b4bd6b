package bsncloud

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestClient_Login(t *testing.T) {
	t.Run("successful handshake", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %q, want POST", r.Method)
			}
			user, pass, ok := r.BasicAuth()
			if !ok || user != "id" || pass != "secret" {
				t.Errorf("basic auth = %q, %q, %v, want id, secret, true", user, pass, ok)
			}
			if err := r.ParseForm(); err != nil {
				t.Fatalf("parse form: %v", err)
			}
			if g := r.PostForm.Get("grant_type"); g != "client_credentials" {
				t.Errorf("grant_type = %q, want client_credentials", g)
			}
			json.NewEncoder(w).Encode(map[string]any{"access_token": "abc", "expires_in": 60})
		})
		mux.HandleFunc("/Self/Session/Network", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("method = %q, want PUT", r.Method)
			}
			if auth := r.Header.Get("authorization"); auth != "Bearer abc" {
				t.Errorf("authorization = %q, want %q", auth, "Bearer abc")
			}
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["name"] != "My Network" {
				t.Errorf("network name = %q, want %q", body["name"], "My Network")
			}
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithAuthURL(server.URL+"/token"))
		client.Configure("id", "secret", "My Network")

		sess, err := client.Login(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !sess.Success {
			t.Fatalf("session failed: %q", sess.Err)
		}
		if sess.Bearer != "Bearer abc" {
			t.Errorf("Bearer = %q, want %q", sess.Bearer, "Bearer abc")
		}
		if sess.Validity != 45 {
			t.Errorf("Validity = %d, want 45 (expires_in minus safety margin)", sess.Validity)
		}
		if sess.IssuedAt.IsZero() {
			t.Error("IssuedAt not set")
		}
	})

	t.Run("does not cache the session", func(t *testing.T) {
		client := newTestClient(t, nil)
		if _, err := client.Login(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.store.Current() != nil {
			t.Error("Login should not populate the session cache")
		}
	})

	t.Run("rejected credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithAuthURL(server.URL+"/token"))
		client.Configure("id", "bad-secret", "net")

		sess, err := client.Login(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Success {
			t.Fatal("expected failed session")
		}
		if sess.Err != "Error authenticating" {
			t.Errorf("Err = %q, want %q", sess.Err, "Error authenticating")
		}
		if sess.Validity != 0 {
			t.Errorf("Validity = %d, want 0", sess.Validity)
		}
	})

	t.Run("network selection rejected", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "abc", "expires_in": 300})
		})
		mux.HandleFunc("/Self/Session/Network", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("no such network"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithAuthURL(server.URL+"/token"))
		client.Configure("id", "secret", "Nonexistent Network")

		sess, err := client.Login(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Success {
			t.Fatal("expected failed session")
		}
		if sess.Err != "no such network" {
			t.Errorf("Err = %q, want response body", sess.Err)
		}
	})

	t.Run("unreachable auth server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := New(WithAuthURL(server.URL + "/token"))
		client.Configure("id", "secret", "net")

		sess, err := client.Login(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sess.Success || sess.Err != "Error authenticating" {
			t.Errorf("session = %+v, want authentication failure", sess)
		}
	})

	t.Run("unresolvable credentials", func(t *testing.T) {
		clearCredentialEnv(t)
		client := New(WithEnvFile("testdata/nonexistent.env"))

		_, err := client.Login(context.Background())
		if !errors.Is(err, ErrCredentialsNotFound) {
			t.Fatalf("expected ErrCredentialsNotFound, got %v", err)
		}
		if !IsConfigurationError(err) {
			t.Error("IsConfigurationError should report true")
		}
	})
}

func TestClient_validSession(t *testing.T) {
	t.Run("handshake failure surfaces as AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithAuthURL(server.URL+"/token"), WithDWSURL(server.URL))
		client.Configure("id", "bad-secret", "net")

		_, err := client.GetDeviceInfo(context.Background(), "D2E8A1000123")
		if err == nil {
			t.Fatal("expected error")
		}
		if !IsAuthError(err) {
			t.Fatalf("expected AuthError, got %v", err)
		}
		var authErr *AuthError
		if !errors.As(err, &authErr) || authErr.Reason != "Error authenticating" {
			t.Errorf("Reason = %q, want %q", authErr.Reason, "Error authenticating")
		}
	})

	t.Run("failed session is never reused", func(t *testing.T) {
		var tokenHits int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&tokenHits, 1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := New(WithBaseURL(server.URL), WithAuthURL(server.URL+"/token"), WithDWSURL(server.URL))
		client.Configure("id", "bad-secret", "net")

		for i := 0; i < 2; i++ {
			if _, err := client.GetDeviceInfo(context.Background(), "D2E8A1000123"); !IsAuthError(err) {
				t.Fatalf("call %d: expected AuthError, got %v", i, err)
			}
		}
		if n := atomic.LoadInt32(&tokenHits); n != 2 {
			t.Errorf("token endpoint hit %d times, want 2 (failed sessions must not be cached as valid)", n)
		}
	})

	t.Run("clear forces re-authentication", func(t *testing.T) {
		var tokenHits int32
		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&tokenHits, 1)
			json.NewEncoder(w).Encode(map[string]any{"access_token": "abc", "expires_in": 300})
		})
		mux.HandleFunc("/Self/Session/Network", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		store := NewSessionStore()
		client := New(
			WithBaseURL(server.URL),
			WithAuthURL(server.URL+"/token"),
			WithDWSURL(server.URL),
			WithSessionStore(store),
		)
		client.Configure("id", "secret", "net")

		if _, err := client.GetDeviceInfo(context.Background(), "D2E8A1000123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		store.Clear()
		if _, err := client.GetDeviceInfo(context.Background(), "D2E8A1000123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := atomic.LoadInt32(&tokenHits); n != 2 {
			t.Errorf("token endpoint hit %d times, want 2", n)
		}
	})
}
