package common

import "time"

// ISODateFormat is the date layout used throughout the app (YYYY-MM-DD)
const ISODateFormat = "2006-01-02"

// TodayISO returns the current UTC date as an ISO date string
func TodayISO() string {
	return time.Now().UTC().Format(ISODateFormat)
}

// FormatISODate formats a time as an ISO date string
func FormatISODate(t time.Time) string {
	return t.Format(ISODateFormat)
}

// ParseISODate parses an ISO date string into a UTC midnight time
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateFormat, s)
}

// IsWeekend reports whether t falls on a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
