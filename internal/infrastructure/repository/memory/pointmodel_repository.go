package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
)

type PointModelRepository struct {
	mu      sync.RWMutex
	entries []pointmodel.Entry
}

func NewPointModelRepository(seed []pointmodel.Entry) *PointModelRepository {
	entries := make([]pointmodel.Entry, len(seed))
	copy(entries, seed)
	sortPointModelEntries(entries)
	return &PointModelRepository{entries: entries}
}

func (r *PointModelRepository) List(_ context.Context) ([]pointmodel.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pointmodel.Entry, len(r.entries))
	copy(out, r.entries)

	return out, nil
}

// Replace swaps the whole table in one step so readers never observe a
// partially updated model.
func (r *PointModelRepository) Replace(_ context.Context, entries []pointmodel.Entry) error {
	next := make([]pointmodel.Entry, len(entries))
	copy(next, entries)
	sortPointModelEntries(next)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = next
	return nil
}

func sortPointModelEntries(entries []pointmodel.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Position != entries[j].Position {
			return entries[i].Position < entries[j].Position
		}
		return entries[i].EventType < entries[j].EventType
	})
}
