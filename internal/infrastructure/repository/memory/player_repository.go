package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository(seed []player.Player) *PlayerRepository {
	items := make(map[string]player.Player, len(seed))
	for _, item := range seed {
		items[item.ID] = clonePlayer(item)
	}
	return &PlayerRepository{items: items}
}

func (r *PlayerRepository) Get(_ context.Context, id string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return clonePlayer(item), true, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, clonePlayer(item))
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		if item.TeamID != teamID {
			continue
		}
		out = append(out, clonePlayer(item))
	}
	sortPlayers(out)

	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = clonePlayer(item)
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}

func sortPlayers(items []player.Player) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}

func clonePlayer(item player.Player) player.Player {
	copied := item
	if item.Number != nil {
		number := *item.Number
		copied.Number = &number
	}
	return copied
}
