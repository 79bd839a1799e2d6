package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	fallback := 12 * time.Hour

	if got := ParseDuration("30m", fallback); got != 30*time.Minute {
		t.Errorf("expected 30m, got %v", got)
	}
	if got := ParseDuration("not-a-duration", fallback); got != fallback {
		t.Errorf("expected fallback %v, got %v", fallback, got)
	}
	if got := ParseDuration("", fallback); got != fallback {
		t.Errorf("expected fallback for empty string, got %v", got)
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-08-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.August || parsed.Day() != 20 {
		t.Fatalf("unexpected date %v", parsed)
	}

	for _, bad := range []string{"", "20/08/2026", "2026-13-01", "2026-08-20T10:00:00Z", "yesterday"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	value := "2026-08-20"
	parsed, err := ParseDate(value)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != value {
		t.Fatalf("expected %q, got %q", value, got)
	}
}
