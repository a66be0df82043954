package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items map[string]event.PlayerEvent
}

func NewEventRepository(seed []event.PlayerEvent) *EventRepository {
	items := make(map[string]event.PlayerEvent, len(seed))
	for _, item := range seed {
		if item.Count == 0 {
			continue
		}
		items[eventKey(item.PlayerID, item.MatchID, item.Type)] = item
	}
	return &EventRepository{items: items}
}

func eventKey(playerID, matchID string, eventType event.Type) string {
	return playerID + "::" + matchID + "::" + string(eventType)
}

func (r *EventRepository) Get(_ context.Context, playerID, matchID string, eventType event.Type) (event.PlayerEvent, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[eventKey(playerID, matchID, eventType)]
	if !ok {
		return event.PlayerEvent{}, false, nil
	}

	return item, true, nil
}

func (r *EventRepository) ListByPlayerAndMatch(_ context.Context, playerID, matchID string) ([]event.PlayerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.PlayerEvent, 0, len(r.items))
	for _, item := range r.items {
		if item.PlayerID != playerID || item.MatchID != matchID {
			continue
		}
		out = append(out, item)
	}
	sortEvents(out)

	return out, nil
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID string) ([]event.PlayerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.PlayerEvent, 0, len(r.items))
	for _, item := range r.items {
		if item.MatchID != matchID {
			continue
		}
		out = append(out, item)
	}
	sortEvents(out)

	return out, nil
}

func (r *EventRepository) ListByPlayer(_ context.Context, playerID string) ([]event.PlayerEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.PlayerEvent, 0, len(r.items))
	for _, item := range r.items {
		if item.PlayerID != playerID {
			continue
		}
		out = append(out, item)
	}
	sortEvents(out)

	return out, nil
}

// SetCount stores the absolute count for the key. A zero count removes the
// row so empty entries never accumulate.
func (r *EventRepository) SetCount(_ context.Context, item event.PlayerEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := eventKey(item.PlayerID, item.MatchID, item.Type)
	if item.Count == 0 {
		delete(r.items, key)
		return nil
	}
	r.items[key] = item

	return nil
}

func (r *EventRepository) Delete(_ context.Context, playerID, matchID string, eventType event.Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, eventKey(playerID, matchID, eventType))
	return nil
}

func (r *EventRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.items {
		if item.MatchID == matchID {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *EventRepository) DeleteByPlayer(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.items {
		if item.PlayerID == playerID {
			delete(r.items, key)
		}
	}
	return nil
}

func sortEvents(items []event.PlayerEvent) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchID != items[j].MatchID {
			return items[i].MatchID < items[j].MatchID
		}
		if items[i].PlayerID != items[j].PlayerID {
			return items[i].PlayerID < items[j].PlayerID
		}
		return items[i].Type < items[j].Type
	})
}
