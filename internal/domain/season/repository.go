package season

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (Season, bool, error)
	List(ctx context.Context) ([]Season, error)
	ListByTeam(ctx context.Context, teamID string) ([]Season, error)
	Upsert(ctx context.Context, item Season) error
	Delete(ctx context.Context, id string) error
}
