package tracker

import (
	"strings"
	"time"
)

// deadlineLayouts are the accepted deadline input forms, tried in order.
// The leading layouts match what date-time pickers emit; the bare date form
// means midnight local time.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02",
}

// ParseDeadline parses user-entered deadline text in the host's local time.
// It returns ErrInvalidDeadline when no accepted layout matches.
func ParseDeadline(input string) (time.Time, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return time.Time{}, ErrInvalidDeadline
	}

	for _, layout := range deadlineLayouts {
		if when, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return when, nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}
