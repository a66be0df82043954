package cache

import (
	"context"

	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	basecache "github.com/klubhuset/mvp-tracker/internal/platform/cache"
)

// PointModelRepository caches the point model in front of the underlying
// store. Every scoring computation reads the full table, so this is the
// hottest read path in the service.
type PointModelRepository struct {
	next  pointmodel.Repository
	cache *basecache.Store
}

func NewPointModelRepository(next pointmodel.Repository, cache *basecache.Store) *PointModelRepository {
	return &PointModelRepository{next: next, cache: cache}
}

func (r *PointModelRepository) List(ctx context.Context) ([]pointmodel.Entry, error) {
	v, err := r.cache.GetOrLoad(ctx, "pointmodel:list", func(ctx context.Context) (any, error) {
		entries, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]pointmodel.Entry(nil), entries...), nil
	})
	if err != nil {
		return nil, err
	}

	entries, _ := v.([]pointmodel.Entry)
	return append([]pointmodel.Entry(nil), entries...), nil
}

func (r *PointModelRepository) Replace(ctx context.Context, entries []pointmodel.Entry) error {
	if err := r.next.Replace(ctx, entries); err != nil {
		return err
	}
	r.cache.Delete(ctx, "pointmodel:list")
	return nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) Get(ctx context.Context, id string) (team.Team, bool, error) {
	key := "team:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetDefault(ctx context.Context) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:default", func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, "team:id:"+item.ID)
	r.cache.Delete(ctx, "team:default")
	return nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}
