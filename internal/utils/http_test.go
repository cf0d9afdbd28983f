package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-room-chat/models"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_Envelope(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Failure[bool]("room not found"), http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Body.String() != `{"message":"room not found"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestDecodeJSON_Success(t *testing.T) {
	var got struct {
		Name string `json:"name"`
	}

	if err := DecodeJSON(strings.NewReader(`{"name":"alice"}`), &got); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got.Name != "alice" {
		t.Errorf("expected name 'alice', got '%s'", got.Name)
	}
}

func TestDecodeJSON_Malformed(t *testing.T) {
	var got map[string]any

	if err := DecodeJSON(strings.NewReader(`{"name":`), &got); err == nil {
		t.Fatal("expected error for malformed body, got nil")
	}
}

func TestDecodeJSON_TrailingData(t *testing.T) {
	var got map[string]any

	if err := DecodeJSON(strings.NewReader(`{"a":1}{"b":2}`), &got); err == nil {
		t.Fatal("expected error for trailing data, got nil")
	}
}
