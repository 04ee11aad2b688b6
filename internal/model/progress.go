package model

import (
	"fmt"
	"strings"
	"time"
)

// Time decomposition constants
const (
	SecondsPerDay    = 86400
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Progress holds the derived figures for one tracker span at a given
// instant. Durations are millisecond counts; Percent is a real value in
// [0, 100].
type Progress struct {
	TotalMs     int64
	ElapsedMs   int64
	RemainingMs int64
	Percent     float64
}

// DeriveProgress computes elapsed/remaining/percent figures from a tracker
// span and the current instant. The span is floored at 1ms so a degenerate
// zero-length span cannot divide by zero. Elapsed is clamped to [0, total];
// remaining never goes negative, so an expired span keeps reporting zero
// instead of counting up.
func DeriveProgress(start, deadline, now time.Time) Progress {
	totalMs := deadline.Sub(start).Milliseconds()
	if totalMs < 1 {
		totalMs = 1
	}

	elapsedMs := now.Sub(start).Milliseconds()
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	if elapsedMs > totalMs {
		elapsedMs = totalMs
	}

	remainingMs := deadline.Sub(now).Milliseconds()
	if remainingMs < 0 {
		remainingMs = 0
	}

	percent := float64(elapsedMs) / float64(totalMs) * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	return Progress{
		TotalMs:     totalMs,
		ElapsedMs:   elapsedMs,
		RemainingMs: remainingMs,
		Percent:     percent,
	}
}

// Expired reports whether the deadline has passed at this progress point
func (p Progress) Expired() bool {
	return p.RemainingMs == 0
}

// DurationParts is a remaining duration broken into display components.
// Days is unbounded; Hours, Minutes and Seconds are reduced to their usual
// ranges.
type DurationParts struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// ToDurationParts decomposes a millisecond count into days/hours/minutes/
// seconds using strict floor division, so a rendered countdown only ever
// decrements. Negative input is treated as zero.
func ToDurationParts(remainingMs int64) DurationParts {
	if remainingMs < 0 {
		remainingMs = 0
	}

	totalSeconds := remainingMs / 1000
	return DurationParts{
		Days:    totalSeconds / SecondsPerDay,
		Hours:   (totalSeconds % SecondsPerDay) / SecondsPerHour,
		Minutes: (totalSeconds % SecondsPerHour) / SecondsPerMinute,
		Seconds: totalSeconds % SecondsPerMinute,
	}
}

// TotalSeconds folds the parts back into a single second count
func (dp DurationParts) TotalSeconds() int64 {
	return dp.Days*SecondsPerDay + dp.Hours*SecondsPerHour + dp.Minutes*SecondsPerMinute + dp.Seconds
}

// Format renders the parts as a compact countdown, e.g. "2d 05:03:09", or
// "05:03:09" when less than a day remains. The seconds segment can be
// omitted for a calmer display.
func (dp DurationParts) Format(withSeconds bool) string {
	var b strings.Builder
	if dp.Days > 0 {
		b.WriteString(fmt.Sprintf("%dd ", dp.Days))
	}
	if withSeconds {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", dp.Hours, dp.Minutes, dp.Seconds))
	} else {
		b.WriteString(fmt.Sprintf("%02d:%02d", dp.Hours, dp.Minutes))
	}
	return b.String()
}

// String returns the full countdown including seconds
func (dp DurationParts) String() string {
	return dp.Format(true)
}
