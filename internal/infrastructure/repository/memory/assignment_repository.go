package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
)

type AssignmentRepository struct {
	mu    sync.RWMutex
	items map[string]assignment.PlayerPosition
}

func NewAssignmentRepository(seed []assignment.PlayerPosition) *AssignmentRepository {
	items := make(map[string]assignment.PlayerPosition, len(seed))
	for _, item := range seed {
		items[assignmentKey(item.PlayerID, item.MatchID)] = item
	}
	return &AssignmentRepository{items: items}
}

func assignmentKey(playerID, matchID string) string {
	return playerID + "::" + matchID
}

func (r *AssignmentRepository) Get(_ context.Context, playerID, matchID string) (assignment.PlayerPosition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[assignmentKey(playerID, matchID)]
	if !ok {
		return assignment.PlayerPosition{}, false, nil
	}

	return item, true, nil
}

func (r *AssignmentRepository) ListByMatch(_ context.Context, matchID string) ([]assignment.PlayerPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assignment.PlayerPosition, 0, len(r.items))
	for _, item := range r.items {
		if item.MatchID != matchID {
			continue
		}
		out = append(out, item)
	}
	sortAssignments(out)

	return out, nil
}

func (r *AssignmentRepository) ListByPlayer(_ context.Context, playerID string) ([]assignment.PlayerPosition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assignment.PlayerPosition, 0, len(r.items))
	for _, item := range r.items {
		if item.PlayerID != playerID {
			continue
		}
		out = append(out, item)
	}
	sortAssignments(out)

	return out, nil
}

func (r *AssignmentRepository) Upsert(_ context.Context, item assignment.PlayerPosition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[assignmentKey(item.PlayerID, item.MatchID)] = item
	return nil
}

func (r *AssignmentRepository) Delete(_ context.Context, playerID, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, assignmentKey(playerID, matchID))
	return nil
}

func (r *AssignmentRepository) DeleteByMatch(_ context.Context, matchID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.items {
		if item.MatchID == matchID {
			delete(r.items, key)
		}
	}
	return nil
}

func (r *AssignmentRepository) DeleteByPlayer(_ context.Context, playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.items {
		if item.PlayerID == playerID {
			delete(r.items, key)
		}
	}
	return nil
}

func sortAssignments(items []assignment.PlayerPosition) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].MatchID != items[j].MatchID {
			return items[i].MatchID < items[j].MatchID
		}
		return items[i].PlayerID < items[j].PlayerID
	})
}
