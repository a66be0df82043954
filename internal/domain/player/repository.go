package player

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (Player, bool, error)
	List(ctx context.Context) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Upsert(ctx context.Context, item Player) error
	Delete(ctx context.Context, id string) error
}
