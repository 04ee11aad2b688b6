package tracker

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/nitisbig/deadline-app/internal/model"
)

// Service is the tracker store. Trackers are kept in creation order; the
// display mode is shared by the whole collection. Every mutation writes a
// fresh snapshot through the snapshot store before the change callback runs.
type Service struct {
	trackers      []*model.Tracker
	mode          model.DisplayMode
	trackersMutex sync.RWMutex

	clock    clockwork.Clock
	quotes   QuoteSource
	store    SnapshotStore
	onChange func() // callback for UI updates, invoked outside the lock
}

// NewService creates a tracker store hydrated from the persisted snapshot.
// A missing or unreadable snapshot yields an empty store with the default
// display mode.
func NewService(store SnapshotStore, clock clockwork.Clock, quotes QuoteSource) *Service {
	s := &Service{
		clock:  clock,
		quotes: quotes,
		store:  store,
	}
	s.trackers, s.mode = decodeSnapshot(store.SnapshotJSON())
	log.Printf("Tracker store loaded: %d tracker(s), mode=%s", len(s.trackers), s.mode)
	return s
}

// SetChangeCallback sets the callback invoked after every store mutation
func (s *Service) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// Create validates the inputs, appends a new tracker and persists the
// result. Validation order is fixed: empty goal, unparseable deadline,
// non-future deadline. The new tracker gets a random quote assigned for
// its whole lifetime.
func (s *Service) Create(goalText, deadlineText string) (*model.Tracker, error) {
	goal := strings.TrimSpace(goalText)
	if goal == "" {
		return nil, ErrEmptyGoal
	}

	deadline, err := ParseDeadline(deadlineText)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !deadline.After(now) {
		return nil, ErrPastDeadline
	}

	tracker := &model.Tracker{
		ID:         uuid.NewString(),
		Goal:       goal,
		StartTime:  now,
		Deadline:   deadline,
		QuoteIndex: s.quotes.Pick(),
	}

	s.trackersMutex.Lock()
	s.trackers = append(s.trackers, tracker)
	s.saveLocked()
	s.trackersMutex.Unlock()

	log.Printf("Tracker created: id=%s goal=%q deadline=%s",
		tracker.ID, tracker.Goal, deadline.Format(time.RFC3339))
	s.notifyChange()
	return tracker, nil
}

// Remove deletes the tracker with the given ID. An absent ID is a no-op:
// nothing is saved and no callback fires.
func (s *Service) Remove(id string) {
	s.trackersMutex.Lock()
	kept := make([]*model.Tracker, 0, len(s.trackers))
	removed := false
	for _, tracker := range s.trackers {
		if tracker.ID == id {
			removed = true
			continue
		}
		kept = append(kept, tracker)
	}
	if !removed {
		s.trackersMutex.Unlock()
		return
	}
	s.trackers = kept
	s.saveLocked()
	s.trackersMutex.Unlock()

	log.Printf("Tracker removed: id=%s", id)
	s.notifyChange()
}

// Clear removes every tracker unconditionally. The display mode is kept.
func (s *Service) Clear() {
	s.trackersMutex.Lock()
	count := len(s.trackers)
	s.trackers = nil
	s.saveLocked()
	s.trackersMutex.Unlock()

	log.Printf("Tracker store cleared: %d tracker(s) removed", count)
	s.notifyChange()
}

// SetMode switches the shared display mode and persists it.
func (s *Service) SetMode(mode model.DisplayMode) error {
	if !mode.IsValid() {
		return ErrInvalidMode
	}

	s.trackersMutex.Lock()
	if s.mode == mode {
		s.trackersMutex.Unlock()
		return nil
	}
	s.mode = mode
	s.saveLocked()
	s.trackersMutex.Unlock()

	log.Printf("Display mode set to %s", mode)
	s.notifyChange()
	return nil
}

// Mode returns the current shared display mode.
func (s *Service) Mode() model.DisplayMode {
	s.trackersMutex.RLock()
	defer s.trackersMutex.RUnlock()
	return s.mode
}

// Trackers returns the trackers in creation order. The slice is a copy;
// the tracker records themselves are never mutated after creation.
func (s *Service) Trackers() []*model.Tracker {
	s.trackersMutex.RLock()
	defer s.trackersMutex.RUnlock()

	trackers := make([]*model.Tracker, len(s.trackers))
	copy(trackers, s.trackers)
	return trackers
}

// Views derives the presentation state of every tracker at the given
// instant, in creation order.
func (s *Service) Views(now time.Time) []model.View {
	s.trackersMutex.RLock()
	defer s.trackersMutex.RUnlock()

	views := make([]model.View, 0, len(s.trackers))
	for _, tracker := range s.trackers {
		views = append(views, model.NewView(tracker, now, s.quotes.Get(tracker.QuoteIndex)))
	}
	return views
}

// Len returns the number of trackers in the store.
func (s *Service) Len() int {
	s.trackersMutex.RLock()
	defer s.trackersMutex.RUnlock()
	return len(s.trackers)
}

// saveLocked writes the current state through the snapshot store. The
// caller must hold the write lock. Persistence is best-effort: in-memory
// state stays authoritative even if the write is lost.
func (s *Service) saveLocked() {
	blob, err := encodeSnapshot(s.trackers, s.mode)
	if err != nil {
		log.Printf("Failed to encode tracker snapshot: %v", err)
		return
	}
	s.store.SetSnapshotJSON(blob)
}

// notifyChange invokes the change callback if one is registered. Must be
// called without holding the lock: the callback re-enters the store to
// re-read state.
func (s *Service) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}
