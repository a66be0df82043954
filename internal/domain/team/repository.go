package team

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (Team, bool, error)
	GetDefault(ctx context.Context) (Team, bool, error)
	Upsert(ctx context.Context, item Team) error
}
