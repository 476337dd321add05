package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing entity", errors.New("reservation abc not found"), http.StatusNotFound},
		{"bad credentials", errors.New("invalid credentials"), http.StatusUnauthorized},
		{"deactivated account", errors.New("account is deactivated"), http.StatusUnauthorized},
		{"validation failure", errors.New("validation failed: Email: Invalid email format"), http.StatusBadRequest},
		{"malformed id", errors.New("invalid reservation ID format abc"), http.StatusBadRequest},
		{"date order", errors.New("check-out date must be after check-in date"), http.StatusBadRequest},
		{"over balance", errors.New("payment amount 60.00 exceeds outstanding balance 50.00"), http.StatusBadRequest},
		{"lost transition", errors.New("reservation abc cannot be confirmed from its current status"), http.StatusConflict},
		{"duplicate rate", errors.New("daily rate for 2026-11-05 already exists on plan abc"), http.StatusConflict},
		{"room taken", errors.New("room abc is not available"), http.StatusConflict},
		{"inactive plan", errors.New("rate plan abc is not active"), http.StatusConflict},
		{"stop sell", errors.New("rate plan is closed for sale on 2026-10-02"), http.StatusConflict},
		{"sold out", errors.New("no rooms left on 2026-10-01"), http.StatusConflict},
		{"occupied table", errors.New("table abc is occupied and cannot be deleted"), http.StatusConflict},
		{"wrong property", errors.New("room type abc does not belong to property def"), http.StatusBadRequest},
		{"plan mismatch", errors.New("rate plan abc does not cover room type def"), http.StatusBadRequest},
		{"after hours", errors.New("booking falls outside opening hours 10:00-22:00"), http.StatusBadRequest},
		{"unassigned room", errors.New("reservation abc has no room assigned"), http.StatusBadRequest},
		{"past booking", errors.New("booking time is in the past"), http.StatusBadRequest},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handleServiceError(rec, zap.NewNop(), tt.err, "Test")

			if rec.Code != tt.want {
				t.Fatalf("expected %d for %q, got %d", tt.want, tt.err, rec.Code)
			}

			var body struct {
				Status  bool   `json:"status"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("expected JSON body, got %v", err)
			}
			if body.Status {
				t.Fatalf("expected status false in error body")
			}
			if body.Message == "" {
				t.Fatalf("expected a message in error body")
			}
		})
	}
}
