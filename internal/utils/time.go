package utils

import (
	"fmt"
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// Input layouts accepted from callers, tried in order. Everything is
// canonicalized to YYYY-MM-DD before it reaches the store.
var acceptedDateLayouts = []string{
	layoutDate,
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// NormalizeDate canonicalizes a caller-supplied trip date to YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("tanggal kosong")
	}
	for _, layout := range acceptedDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Format(layoutDate), nil
		}
	}
	return "", fmt.Errorf("format tanggal tidak dikenali: %s", s)
}
