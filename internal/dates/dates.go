// Package dates parses textual dates into epoch milliseconds, the numeric
// form in which datasets store dates.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// Layouts are tried in order. Layouts without a zone are read as UTC.
var Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-01",
	"2006",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006",
	"January 2, 2006",
	"02 Jan 2006",
}

// Parse converts s to milliseconds since the Unix epoch.
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parsing date: empty input")
	}
	for _, layout := range Layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UnixMilli(), nil
		}
	}
	return 0, fmt.Errorf("parsing date %q: no matching layout", s)
}

// Format renders epoch milliseconds as an RFC 3339 UTC timestamp.
func Format(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}
