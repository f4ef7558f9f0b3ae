package models

import (
	"fmt"
	"strings"
	"time"
)

// expiryLayouts are tried in order. Layouts without a zone are read as UTC;
// date-only values (what an <input type="date"> submits) mean midnight UTC.
var expiryLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseExpiryDate parses s into a UTC timestamp.
func ParseExpiryDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("expiry date is empty")
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("expiry date %q is not an ISO-8601 date or timestamp", s)
}

// FormatExpiryDate is the canonical serialized form of an expiry date.
func FormatExpiryDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
