package memory

import (
	"context"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[string]team.Team
}

func NewTeamRepository(seed []team.Team) *TeamRepository {
	items := make(map[string]team.Team, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}
	return &TeamRepository{items: items}
}

func (r *TeamRepository) Get(_ context.Context, id string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return team.Team{}, false, nil
	}

	return item, true, nil
}

func (r *TeamRepository) GetDefault(_ context.Context) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		return item, true, nil
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
