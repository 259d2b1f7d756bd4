package utils

import (
	"strings"
	"time"
)

const (
	layoutDateTime    = "2006-01-02 15:04:05"
	layoutBookingDate = "02/01/2006"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseBookingDate parses DD/MM/YYYY, the format the booking form uses.
func ParseBookingDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutBookingDate, strings.TrimSpace(s), time.Local)
}

// FormatBookingDate formats time to DD/MM/YYYY.
func FormatBookingDate(t time.Time) string {
	return t.In(time.Local).Format(layoutBookingDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// StartOfDay zeroes the clock so only dates are compared.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
