package tracker

import (
	"time"

	"github.com/nitisbig/deadline-app/internal/model"
)

// Store defines the interface for the tracker store consumed by the UI.
type Store interface {
	SetChangeCallback(func())
	Create(goalText, deadlineText string) (*model.Tracker, error)
	Remove(id string)
	Clear()
	Trackers() []*model.Tracker
	Views(now time.Time) []model.View
	Len() int

	// SetMode switches the shared progress display mode (circular/bar)
	SetMode(mode model.DisplayMode) error

	// Mode returns the current shared progress display mode
	Mode() model.DisplayMode
}

// SnapshotStore persists the serialized store state as a single opaque
// key-value entry. Application preferences satisfy it.
type SnapshotStore interface {
	SnapshotJSON() string
	SetSnapshotJSON(blob string)
}

// QuoteSource supplies the fixed motivational quote list and uniform random
// draws over its index range.
type QuoteSource interface {
	Pick() int
	Get(index int) string
}
