package task

import (
	"strings"
	"time"
)

// DateLayout is the fixed-width calendar date form used everywhere:
// storage, filters, and rendering.
const DateLayout = "2006-01-02"

// Today formats the current calendar date using the supplied clock.
func Today(now func() time.Time) string {
	if now == nil {
		now = time.Now
	}
	return now().Format(DateLayout)
}

// ParseDate normalizes a user-supplied date argument. The literal token
// "today" (case-insensitive) resolves to the current date; otherwise the
// value must parse strictly as YYYY-MM-DD and is returned unchanged.
func ParseDate(value string, now func() time.Time) (string, error) {
	if strings.EqualFold(value, "today") {
		return Today(now), nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return "", &InvalidDateError{Value: value}
	}
	return value, nil
}
