package bsncloud

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestClient_GetDeviceInfo(t *testing.T) {
	t.Run("addresses the player", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/info/" {
				t.Errorf("path = %q, want /info/", r.URL.Path)
			}
			if q := r.URL.Query().Get("destinationName"); q != "D2E8A1000123" {
				t.Errorf("destinationName = %q, want D2E8A1000123", q)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"data": map[string]any{"result": map[string]any{"model": "XT1144"}},
			})
		})

		result, err := client.GetDeviceInfo(context.Background(), "D2E8A1000123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if model, _ := GetString(result, "data", "result", "model"); model != "XT1144" {
			t.Errorf("model = %q, want XT1144", model)
		}
	})

	t.Run("empty serial", func(t *testing.T) {
		client := newTestClient(t, nil)
		if _, err := client.GetDeviceInfo(context.Background(), ""); err != ErrEmptySerial {
			t.Errorf("expected ErrEmptySerial, got %v", err)
		}
	})
}

func TestClient_SetDeviceTime(t *testing.T) {
	t.Run("valid time and date", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("method = %q, want PUT", r.Method)
			}
			if r.URL.Path != "/time/" {
				t.Errorf("path = %q, want /time/", r.URL.Path)
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if v, _ := GetString(body, "data", "time"); v != "12:30:45 PST" {
				t.Errorf("data.time = %q, want 12:30:45 PST", v)
			}
			if v, _ := GetString(body, "data", "date"); v != "2024-06-01" {
				t.Errorf("data.date = %q, want 2024-06-01", v)
			}
			if v, _ := GetBool(body, "data", "applyTimezone"); !v {
				t.Error("data.applyTimezone = false, want true")
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if _, err := client.SetDeviceTime(context.Background(), "D2E8A1000123", "12:30:45 PST", "2024-06-01", true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid date rejected before dispatch", func(t *testing.T) {
		client := newTestClient(t, nil)
		if _, err := client.SetDeviceTime(context.Background(), "D2E8A1000123", "12:30:45", "06/01/2024", false); err != ErrBadDateFormat {
			t.Errorf("expected ErrBadDateFormat, got %v", err)
		}
	})
}
