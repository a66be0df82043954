package match

import "context"

type Repository interface {
	Get(ctx context.Context, id string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListBySeason(ctx context.Context, seasonID string) ([]Match, error)
	ListCompleted(ctx context.Context) ([]Match, error)
	Upsert(ctx context.Context, item Match) error
	Delete(ctx context.Context, id string) error
}
