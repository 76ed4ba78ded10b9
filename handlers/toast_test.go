package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) (map[string]json.RawMessage, map[string]string) {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	var toast map[string]string
	if err := json.Unmarshal(parsed["showToast"], &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return parsed, toast
}

func TestSetToast(t *testing.T) {
	tests := []struct {
		name      string
		toastType string
		message   string
	}{
		{"success", "success", "Rooms imported"},
		{"warning", "warning", "Some rows could not be imported"},
		{"quotes", "info", `Room "Study" skipped`},
		{"angle brackets", "error", `<script>alert("xss")</script>`},
		{"unicode", "info", "Total ₹1,23,456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			SetToast(e, tt.toastType, tt.message)

			_, toast := decodeToast(t, rec)
			if toast["type"] != tt.toastType {
				t.Errorf("expected type %q, got %q", tt.toastType, toast["type"])
			}
			if toast["message"] != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, toast["message"])
			}
		})
	}
}

func TestSetToast_MergesWithExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", `{"roomsImported":{"count":"3"}}`)

	SetToast(e, "success", "Rooms imported")

	parsed, toast := decodeToast(t, rec)
	if _, ok := parsed["roomsImported"]; !ok {
		t.Error("expected roomsImported key to be preserved after merge")
	}
	if toast["message"] != "Rooms imported" {
		t.Errorf("expected message %q, got %q", "Rooms imported", toast["message"])
	}
}

func TestSetToast_OverwritesInvalidExisting(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	rec.Header().Set("HX-Trigger", "notValidJSON")

	SetToast(e, "error", "Overwritten")

	parsed, _ := decodeToast(t, rec)
	if len(parsed) != 1 {
		t.Errorf("expected only showToast, got %d keys", len(parsed))
	}
}

func TestErrorToast(t *testing.T) {
	tests := []struct {
		code int
		msg  string
	}{
		{http.StatusBadRequest, "unsupported file format: must be .csv or .xlsx"},
		{http.StatusInternalServerError, "Failed to generate PDF file"},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e := &core.RequestEvent{}
			e.Response = rec

			if err := ErrorToast(e, tt.code, tt.msg); err != nil {
				t.Fatalf("ErrorToast returned error: %v", err)
			}
			if rec.Code != tt.code {
				t.Errorf("expected status %d, got %d", tt.code, rec.Code)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
			_, toast := decodeToast(t, rec)
			if toast["type"] != "error" || toast["message"] != tt.msg {
				t.Errorf("unexpected toast: %+v", toast)
			}
		})
	}
}
