package models

import (
	"testing"
	"time"
)

func TestParseExpiryDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339 utc", "2025-08-01T10:30:00Z", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC), false},
		{"rfc3339 with offset", "2025-08-01T12:30:00+02:00", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC), false},
		{"fractional seconds", "2025-08-01T10:30:00.123+00:00", time.Date(2025, 8, 1, 10, 30, 0, 123000000, time.UTC), false},
		{"naive timestamp", "2025-08-01T10:30:00", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC), false},
		{"space separated", "2025-08-01 10:30:00", time.Date(2025, 8, 1, 10, 30, 0, 0, time.UTC), false},
		{"date only", "2025-08-01", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), false},
		{"surrounding whitespace", " 2025-08-01 ", time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), false},
		{"empty", "", time.Time{}, true},
		{"not a date", "next tuesday", time.Time{}, true},
		{"impossible date", "2025-02-30", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpiryDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExpiryDate(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseExpiryDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !tt.wantErr && got.Location() != time.UTC {
				t.Fatalf("expected UTC location, got %v", got.Location())
			}
		})
	}
}

func TestFormatExpiryDate(t *testing.T) {
	in := time.Date(2025, 8, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	if got := FormatExpiryDate(in); got != "2025-08-01T10:00:00Z" {
		t.Fatalf("unexpected format: %q", got)
	}
}
