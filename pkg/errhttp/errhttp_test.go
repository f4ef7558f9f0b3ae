package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fridgedomain "github.com/ghuser/fridgepal/services/fridge/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"ErrItemNotFound", fridgedomain.ErrItemNotFound, http.StatusNotFound, "Item not found"},
		{"store failure collapsed to not found", fmt.Errorf("%w: %w", fridgedomain.ErrItemNotFound, errors.New("timeout")), http.StatusNotFound, "Item not found"},
		{"ErrItemAlreadyExists", fridgedomain.ErrItemAlreadyExists, http.StatusConflict, "Item already exists"},
		{"broken rule", fmt.Errorf("add: %w", fridgedomain.InvalidItem("name must not be empty")), http.StatusUnprocessableEntity, "invalid item: name must not be empty"},
		{"store rejection", fmt.Errorf("create document: %w: %s", fridgedomain.ErrInvalidItem, `invalid input syntax for type date: "2025-13-01"`), http.StatusUnprocessableEntity, "Invalid item"},
		{"ErrSuggestionFailed", fmt.Errorf("%w: db down", fridgedomain.ErrSuggestionFailed), http.StatusInternalServerError, "Failed to generate suggestions"},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.wantMsg {
				t.Fatalf("error = %q, want %q", body["error"], tt.wantMsg)
			}
		})
	}
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: password authentication failed"))

	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("internal cause leaked: %s", w.Body.String())
	}
}

func TestWriteError_HidesStoreRejectionText(t *testing.T) {
	err := fmt.Errorf("create item: create document: %w: %s", fridgedomain.ErrInvalidItem,
		"Invalid document structure: Unknown attribute: \"secret_column\"")
	w := httptest.NewRecorder()
	WriteError(w, err)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret_column") || strings.Contains(w.Body.String(), "document") {
		t.Fatalf("store message leaked: %s", w.Body.String())
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, fridgedomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("Content-Type = %q", ct)
	}
}
