// Package timefmt renders webhook source timestamps as the display
// format used by the events feed: "02 January 2006 - 03:04 PM UTC".
package timefmt

import (
	"strings"
	"time"
)

// DisplayLayout is the canonical display layout for event timestamps.
const DisplayLayout = "02 January 2006 - 03:04 PM UTC"

// now is swapped out in tests.
var now = time.Now

// Format renders t in the display layout, normalized to UTC.
func Format(t time.Time) string {
	return t.UTC().Format(DisplayLayout)
}

// FromISO parses an ISO-8601 / RFC3339 timestamp and renders it in the
// display layout. An empty or unparsable input falls back to the current
// UTC time so a bad source timestamp never blocks an event.
func FromISO(value string) string {
	if value == "" {
		return Format(now())
	}

	// GitHub sends both "Z"-suffixed and offset timestamps.
	candidate := strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05-07:00", "2006-01-02 15:04:05 -0700"} {
		if t, err := time.Parse(layout, candidate); err == nil {
			return Format(t)
		}
	}

	return Format(now())
}
