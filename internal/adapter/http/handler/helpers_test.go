package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/shopdesk/shopdesk/internal/adapter/http/dto"
	"github.com/shopdesk/shopdesk/internal/domain"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/orders?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/orders?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestParseDecimalQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ledger?starting_balance=350.25", nil)
	got, err := parseDecimalQuery(req, "starting_balance")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(decimal.RequireFromString("350.25")) {
		t.Fatalf("expected 350.25, got %v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ledger", nil)
	got, err = parseDecimalQuery(req, "starting_balance")
	if err != nil || got != nil {
		t.Fatalf("expected nil for missing parameter, got %v, %v", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/ledger?starting_balance=abc", nil)
	if _, err = parseDecimalQuery(req, "starting_balance"); err == nil {
		t.Fatal("expected error for malformed decimal")
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound},
		{"empty order", domain.ErrEmptyOrder, http.StatusBadRequest},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"invalid percentage", domain.ErrInvalidPercentage, http.StatusBadRequest},
		{"unknown transaction type", domain.ErrUnknownTransactionType, http.StatusBadRequest},
		{"invalid withdrawal", domain.ErrInvalidWithdrawal, http.StatusBadRequest},
		{"withdrawal exceeded", domain.ErrWithdrawalExceeded, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}
}
