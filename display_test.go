package bsncloud

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestClient_SetDisplayBrightness(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/display-control/brightness/" {
			t.Errorf("path = %q, want /display-control/brightness/", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if v, _ := GetInt(body, "data", "brightness"); v != 80 {
			t.Errorf("data.brightness = %d, want 80", v)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if _, err := client.SetDisplayBrightness(context.Background(), "D2E8A1000123", 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_UpdateDisplayFirmware(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if v, _ := GetString(body, "data", "filepath"); v != "/sd/firmware.pkg" {
				t.Errorf("data.filepath = %q, want /sd/firmware.pkg", v)
			}
			if _, present := (body["data"].(map[string]any))["url"]; present {
				t.Error("url present, want omitted")
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if _, err := client.UpdateDisplayFirmware(context.Background(), "D2E8A1000123", "/sd/firmware.pkg", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("from URL", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if v, _ := GetString(body, "data", "url"); v != "https://example.com/fw.pkg" {
				t.Errorf("data.url = %q, want download URL", v)
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if _, err := client.UpdateDisplayFirmware(context.Background(), "D2E8A1000123", "", "https://example.com/fw.pkg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exactly one source required", func(t *testing.T) {
		client := newTestClient(t, nil)
		if _, err := client.UpdateDisplayFirmware(context.Background(), "D2E8A1000123", "", ""); err != ErrFirmwareSource {
			t.Errorf("neither source: expected ErrFirmwareSource, got %v", err)
		}
		if _, err := client.UpdateDisplayFirmware(context.Background(), "D2E8A1000123", "/sd/fw.pkg", "https://example.com/fw.pkg"); err != ErrFirmwareSource {
			t.Errorf("both sources: expected ErrFirmwareSource, got %v", err)
		}
	})
}

func TestClient_SetDisplaySDConnection(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		for _, connection := range []string{SDConnectionBrightSign, SDConnectionDisplay} {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if v, _ := GetString(body, "data", "connection"); v != connection {
					t.Errorf("data.connection = %q, want %q", v, connection)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			if _, err := client.SetDisplaySDConnection(context.Background(), "D2E8A1000123", connection); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
	})

	t.Run("invalid setting", func(t *testing.T) {
		client := newTestClient(t, nil)
		if _, err := client.SetDisplaySDConnection(context.Background(), "D2E8A1000123", "usb"); err != ErrInvalidSDConnection {
			t.Errorf("expected ErrInvalidSDConnection, got %v", err)
		}
	})
}

func TestClient_SetDisplayWhiteBalance(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/display-control/white-balance/" {
			t.Errorf("path = %q, want /display-control/white-balance/", r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		red, _ := GetInt(body, "data", "redbalance")
		green, _ := GetInt(body, "data", "greenbalance")
		blue, _ := GetInt(body, "data", "bluebalance")
		if red != 50 || green != 55 || blue != 60 {
			t.Errorf("balance = %d/%d/%d, want 50/55/60", red, green, blue)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if _, err := client.SetDisplayWhiteBalance(context.Background(), "D2E8A1000123", 50, 55, 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
