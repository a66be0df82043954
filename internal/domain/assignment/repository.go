package assignment

import "context"

// Repository stores assignment rows. Upsert replaces the row for the
// (player, match) key; goalkeeper uniqueness is enforced by the assignment
// service before writes and backed by storage constraints.
type Repository interface {
	Get(ctx context.Context, playerID, matchID string) (PlayerPosition, bool, error)
	ListByMatch(ctx context.Context, matchID string) ([]PlayerPosition, error)
	ListByPlayer(ctx context.Context, playerID string) ([]PlayerPosition, error)
	Upsert(ctx context.Context, item PlayerPosition) error
	Delete(ctx context.Context, playerID, matchID string) error
	DeleteByMatch(ctx context.Context, matchID string) error
	DeleteByPlayer(ctx context.Context, playerID string) error
}
