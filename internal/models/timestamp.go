package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Layouts tried in order. Values without a zone are read as UTC, and
// fractional seconds are accepted after any seconds field.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	time.DateOnly,
}

// ParseTimestamp reads a date-only, zone-less or RFC 3339 date.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or an ISO 8601 date-time", s)
}

// Timestamp is a time decoded from JSON with ParseTimestamp. It encodes as
// RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// UnmarshalJSON accepts fecha in any layout ParseTimestamp reads.
func (r *Realization) UnmarshalJSON(b []byte) error {
	type plain Realization
	aux := struct {
		*plain
		Date Timestamp `json:"fecha"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Date = aux.Date.Time
	return nil
}
