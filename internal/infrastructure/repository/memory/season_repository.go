package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/season"
)

type SeasonRepository struct {
	mu    sync.RWMutex
	items map[string]season.Season
}

func NewSeasonRepository(seed []season.Season) *SeasonRepository {
	items := make(map[string]season.Season, len(seed))
	for _, item := range seed {
		items[item.ID] = cloneSeason(item)
	}
	return &SeasonRepository{items: items}
}

func (r *SeasonRepository) Get(_ context.Context, id string) (season.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return season.Season{}, false, nil
	}

	return cloneSeason(item), true, nil
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, cloneSeason(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *SeasonRepository) ListByTeam(_ context.Context, teamID string) ([]season.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]season.Season, 0, len(r.items))
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, cloneSeason(item))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *SeasonRepository) Upsert(_ context.Context, item season.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = cloneSeason(item)
	return nil
}

func (r *SeasonRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func cloneSeason(item season.Season) season.Season {
	copied := item
	if item.StartDate != nil {
		start := *item.StartDate
		copied.StartDate = &start
	}
	if item.EndDate != nil {
		end := *item.EndDate
		copied.EndDate = &end
	}
	return copied
}
