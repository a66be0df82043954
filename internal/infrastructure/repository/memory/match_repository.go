package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[string]match.Match
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	items := make(map[string]match.Match, len(seed))
	for _, item := range seed {
		items[item.ID] = cloneMatch(item)
	}
	return &MatchRepository{items: items}
}

func (r *MatchRepository) Get(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return match.Match{}, false, nil
	}

	return cloneMatch(item), true, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneMatch(item))
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) ListBySeason(_ context.Context, seasonID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if item.SeasonID != seasonID {
			continue
		}
		out = append(out, cloneMatch(item))
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) ListCompleted(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if !item.IsCompleted {
			continue
		}
		out = append(out, cloneMatch(item))
	}
	sortMatches(out)

	return out, nil
}

func (r *MatchRepository) Upsert(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneMatch(item)
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func sortMatches(items []match.Match) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.Before(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})
}

func cloneMatch(item match.Match) match.Match {
	copied := item
	if item.HomeScore != nil {
		home := *item.HomeScore
		copied.HomeScore = &home
	}
	if item.AwayScore != nil {
		away := *item.AwayScore
		copied.AwayScore = &away
	}
	return copied
}
