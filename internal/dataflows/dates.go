package dataflows

import (
	"fmt"
	"time"
)

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses the date formats accepted on the command line.
func ParseDate(dateStr string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// FormatDateRange renders a human-readable date range.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s to %s",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"))
}
