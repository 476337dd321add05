package utils

import (
	"strings"
	"testing"
	"time"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"empty uses default", "", 7, 7},
		{"valid number", "42", 7, 42},
		{"not a number", "abc", 7, 7},
		{"zero uses default", "0", 7, 7},
		{"negative uses default", "-3", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseInt(tt.value, tt.fallback); got != tt.want {
				t.Fatalf("ParseInt(%q, %d) = %d, want %d", tt.value, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if day.Year() != 2026 || day.Month() != time.March || day.Day() != 15 {
		t.Fatalf("unexpected parsed date %v", day)
	}

	if _, err := ParseDate("15-03-2026"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 3, 15, 18, 45, 12, 99, time.UTC)
	got := TruncateToDay(in)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("TruncateToDay(%v) = %v, want %v", in, got, want)
	}
}

func TestGenerateConfirmationCode(t *testing.T) {
	code := GenerateConfirmationCode()
	if !strings.HasPrefix(code, "BK") {
		t.Fatalf("expected BK prefix, got %s", code)
	}
	// BK + 12 timestamp digits + 4 random digits.
	if len(code) != 18 {
		t.Fatalf("expected 18 characters, got %d (%s)", len(code), code)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{100, 0, 0},
	}

	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.limit); got != tt.want {
			t.Fatalf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestCalculateOffset(t *testing.T) {
	if got := CalculateOffset(1, 10); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := CalculateOffset(3, 10); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
	if got := CalculateOffset(0, 10); got != 0 {
		t.Fatalf("expected offset 0 for page 0, got %d", got)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("supersecret")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == "supersecret" {
		t.Fatalf("hash equals the plain password")
	}
	if !CheckPassword("supersecret", hash) {
		t.Fatalf("expected password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestValidateStruct(t *testing.T) {
	type sample struct {
		Email    string `validate:"required,email"`
		Currency string `validate:"required,len=3"`
	}

	errs := ValidateStruct(&sample{Email: "not-an-email", Currency: "USDX"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}

	formatted := FormatValidationErrors(errs)
	if !strings.Contains(formatted, "Email") || !strings.Contains(formatted, "Currency") {
		t.Fatalf("expected both fields mentioned, got %q", formatted)
	}

	if errs := ValidateStruct(&sample{Email: "ok@example.com", Currency: "USD"}); errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
