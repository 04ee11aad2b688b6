package tracker

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/nitisbig/deadline-app/internal/model"
)

// trackerRecord is the persisted form of a single tracker. Instants are
// stored as milliseconds since the Unix epoch so the snapshot stays a plain
// JSON document.
type trackerRecord struct {
	ID         string `json:"id"`
	Goal       string `json:"goal"`
	StartTime  int64  `json:"startTime"`
	Deadline   int64  `json:"deadline"`
	QuoteIndex int    `json:"quoteIndex"`
}

// snapshot is the single key-value entry holding the whole store state.
type snapshot struct {
	Trackers []trackerRecord `json:"trackers"`
	Mode     string          `json:"mode"`
}

// encodeSnapshot serializes the collection and display mode, preserving
// tracker order.
func encodeSnapshot(trackers []*model.Tracker, mode model.DisplayMode) (string, error) {
	snap := snapshot{
		Trackers: make([]trackerRecord, 0, len(trackers)),
		Mode:     mode.String(),
	}
	for _, tr := range trackers {
		snap.Trackers = append(snap.Trackers, trackerRecord{
			ID:         tr.ID,
			Goal:       tr.Goal,
			StartTime:  tr.StartTime.UnixMilli(),
			Deadline:   tr.Deadline.UnixMilli(),
			QuoteIndex: tr.QuoteIndex,
		})
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeSnapshot reconstructs store state from a persisted blob. Startup
// must never fail on bad persisted state: a blob that does not parse yields
// the empty collection and default mode, and individual records that violate
// the tracker invariants are dropped without poisoning the rest.
func decodeSnapshot(blob string) ([]*model.Tracker, model.DisplayMode) {
	if strings.TrimSpace(blob) == "" {
		return nil, model.DefaultMode
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(blob), &snap); err != nil {
		log.Printf("Discarding corrupt tracker snapshot: %v", err)
		return nil, model.DefaultMode
	}

	mode, ok := model.ParseDisplayMode(snap.Mode)
	if !ok {
		log.Printf("Unknown display mode %q in snapshot, falling back to %s", snap.Mode, mode)
	}

	trackers := make([]*model.Tracker, 0, len(snap.Trackers))
	seen := make(map[string]bool, len(snap.Trackers))
	for _, rec := range snap.Trackers {
		tr := &model.Tracker{
			ID:         rec.ID,
			Goal:       rec.Goal,
			StartTime:  time.UnixMilli(rec.StartTime),
			Deadline:   time.UnixMilli(rec.Deadline),
			QuoteIndex: rec.QuoteIndex,
		}
		if !tr.Valid() || seen[tr.ID] {
			log.Printf("Dropping invalid tracker record id=%q from snapshot", rec.ID)
			continue
		}
		seen[tr.ID] = true
		trackers = append(trackers, tr)
	}
	return trackers, mode
}
