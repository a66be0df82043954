package pointmodel

import (
	"fmt"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
)

// Entry maps one (position, event type) key to a point value. Points may
// be negative, e.g. card and own-goal penalties.
type Entry struct {
	Position  position.Scoring
	EventType event.Type
	Points    int
}

func (e Entry) Validate() error {
	if !e.Position.Valid() {
		return fmt.Errorf("invalid point model position: %q", e.Position)
	}
	if !e.EventType.Valid() {
		return fmt.Errorf("invalid point model event type: %q", e.EventType)
	}

	return nil
}

type key struct {
	position  position.Scoring
	eventType event.Type
}

// Table is an indexed point model used by the scoring engine.
type Table struct {
	points map[key]int
}

// NewTable builds a lookup table from entries. Duplicate keys keep the
// last entry, matching the store's later-writes-replace semantics.
func NewTable(entries []Entry) Table {
	points := make(map[key]int, len(entries))
	for _, entry := range entries {
		points[key{position: entry.Position, eventType: entry.EventType}] = entry.Points
	}
	return Table{points: points}
}

// Resolve returns the point value for a player position and event type:
// the exact position entry first, the All wildcard entry as fallback, and
// zero when neither exists. A missing entry is never an error.
func (t Table) Resolve(pos position.Assignable, eventType event.Type) int {
	if points, ok := t.points[key{position: pos.Scoring(), eventType: eventType}]; ok {
		return points
	}
	if points, ok := t.points[key{position: position.ScoringAll, eventType: eventType}]; ok {
		return points
	}
	return 0
}
