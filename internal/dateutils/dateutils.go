// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// isoFormats are the layouts accepted for record dates.
var isoFormats = []string{
	DateLayoutISO,
	time.RFC3339,
	time.RFC3339Nano,
}

// CommonFormats is a list of standard formats to try when parsing user-supplied dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	DateLayoutWithMonth,
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseISODate parses a record date in ISO 8601 form (YYYY-MM-DD, optionally with a time).
// No other layouts are attempted.
func ParseISODate(dateStr string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	for _, layout := range isoFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO date: %q", dateStr)
}

// ParseDate attempts to parse a date string using multiple common formats
// Returns the parsed time and the detected format
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespace.ReplaceAllString(dateStr, " ")
}

// CompareDates compares the calendar days of two dates, ignoring the time of day:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = time.Date(date1.Year(), date1.Month(), date1.Day(), 0, 0, 0, 0, time.UTC)
	date2 = time.Date(date2.Year(), date2.Month(), date2.Day(), 0, 0, 0, 0, time.UTC)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}

// InRange reports whether date falls within [start, end], both ends inclusive, by calendar day.
func InRange(date, start, end time.Time) bool {
	return CompareDates(date, start) >= 0 && CompareDates(date, end) <= 0
}

// MatchesComponents reports whether date matches every non-zero component.
// month is 1-based. A zero component places no constraint on the date.
func MatchesComponents(date time.Time, year, month, day int) bool {
	if year != 0 && date.Year() != year {
		return false
	}
	if month != 0 && int(date.Month()) != month {
		return false
	}
	if day != 0 && date.Day() != day {
		return false
	}
	return true
}
