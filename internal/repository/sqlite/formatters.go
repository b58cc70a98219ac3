package sqlite

import (
	"strings"
	"time"
)

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FormatTimePtrForDB formats a *time.Time value as RFC3339 string, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// JoinListForDB joins a string list into a single comma-separated column value
func JoinListForDB(values []string) string {
	return strings.Join(values, ",")
}

// SplitListFromDB splits a comma-separated column value back into a list,
// returning nil for an empty column
func SplitListFromDB(value string) []string {
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}
