package repository

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist. Callers
// distinguish it from real failures with errors.Is.
var ErrNotFound = errors.New("not found")

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// parseTime parses an RFC3339 timestamp stored by this package.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// formatTime stores timestamps as UTC RFC3339 so lexical ordering in SQLite
// matches chronological ordering.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
