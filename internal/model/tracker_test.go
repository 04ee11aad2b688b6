package model

import (
	"testing"
	"time"
)

func TestTracker_Expired(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	deadline := start.Add(48 * time.Hour)
	tracker := &Tracker{ID: "t-1", Goal: "Ship it", StartTime: start, Deadline: deadline}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{"at start", start, false},
		{"mid span", start.Add(24 * time.Hour), false},
		{"one second left", deadline.Add(-time.Second), false},
		{"at deadline", deadline, true},
		{"long after deadline", deadline.Add(72 * time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tracker.Expired(tt.now); got != tt.expected {
				t.Errorf("Expired() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTracker_Valid(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		tracker  Tracker
		expected bool
	}{
		{"well formed", Tracker{ID: "a", Goal: "g", StartTime: start, Deadline: start.Add(time.Hour)}, true},
		{"empty id", Tracker{Goal: "g", StartTime: start, Deadline: start.Add(time.Hour)}, false},
		{"empty goal", Tracker{ID: "a", StartTime: start, Deadline: start.Add(time.Hour)}, false},
		{"deadline equals start", Tracker{ID: "a", Goal: "g", StartTime: start, Deadline: start}, false},
		{"deadline before start", Tracker{ID: "a", Goal: "g", StartTime: start, Deadline: start.Add(-time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tracker.Valid(); got != tt.expected {
				t.Errorf("Valid() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNewView(t *testing.T) {
	start := time.UnixMilli(0)
	tracker := &Tracker{
		ID:         "t-9",
		Goal:       "Finish the draft",
		StartTime:  start,
		Deadline:   start.Add(100 * time.Second),
		QuoteIndex: 2,
	}

	view := NewView(tracker, start.Add(25*time.Second), "Keep going.")

	if view.ID != "t-9" {
		t.Errorf("ID = %q, expected %q", view.ID, "t-9")
	}
	if view.Goal != "Finish the draft" {
		t.Errorf("Goal = %q, expected %q", view.Goal, "Finish the draft")
	}
	if view.Quote != "Keep going." {
		t.Errorf("Quote = %q, expected %q", view.Quote, "Keep going.")
	}
	if view.Percent != 25 {
		t.Errorf("Percent = %f, expected 25", view.Percent)
	}
	if view.Expired {
		t.Error("Expired = true, expected false mid-span")
	}

	expectedParts := DurationParts{Days: 0, Hours: 0, Minutes: 1, Seconds: 15}
	if view.Parts != expectedParts {
		t.Errorf("Parts = %+v, expected %+v", view.Parts, expectedParts)
	}
}

func TestNewView_ExpiredTracker(t *testing.T) {
	start := time.UnixMilli(0)
	tracker := &Tracker{
		ID:        "t-10",
		Goal:      "Past goal",
		StartTime: start,
		Deadline:  start.Add(time.Minute),
	}

	view := NewView(tracker, start.Add(time.Hour), "Done is done.")

	if !view.Expired {
		t.Error("Expired = false, expected true after the deadline")
	}
	if view.Percent != 100 {
		t.Errorf("Percent = %f, expected 100", view.Percent)
	}
	if view.Parts != (DurationParts{}) {
		t.Errorf("Parts = %+v, expected all zeros", view.Parts)
	}
}
