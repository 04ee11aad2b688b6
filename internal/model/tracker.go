package model

import (
	"time"
)

// Tracker is one goal being counted down: a display name, the span between
// its creation instant and its deadline, and the index of the motivational
// quote drawn at creation time. Trackers are immutable once created; the
// store only appends and removes them.
type Tracker struct {
	ID         string
	Goal       string
	StartTime  time.Time
	Deadline   time.Time
	QuoteIndex int
}

// ProgressAt derives the live countdown figures for this tracker
func (tr *Tracker) ProgressAt(now time.Time) Progress {
	return DeriveProgress(tr.StartTime, tr.Deadline, now)
}

// Expired reports whether the deadline has passed at the given instant.
// An expired tracker stays in the collection; only its rendering changes.
func (tr *Tracker) Expired(now time.Time) bool {
	return tr.ProgressAt(now).Expired()
}

// Valid reports whether the tracker satisfies the collection invariants:
// non-empty id and goal, and a deadline strictly after the start.
func (tr *Tracker) Valid() bool {
	return tr.ID != "" && tr.Goal != "" && tr.Deadline.After(tr.StartTime)
}

// View is the render-ready projection of one tracker at one instant:
// everything a card needs, nothing it can mutate.
type View struct {
	ID      string
	Goal    string
	Quote   string
	Percent float64
	Parts   DurationParts
	Expired bool
}

// NewView assembles the presentation projection for a tracker
func NewView(tr *Tracker, now time.Time, quote string) View {
	p := tr.ProgressAt(now)
	return View{
		ID:      tr.ID,
		Goal:    tr.Goal,
		Quote:   quote,
		Percent: p.Percent,
		Parts:   ToDurationParts(p.RemainingMs),
		Expired: p.Expired(),
	}
}
