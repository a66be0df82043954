package event

import "context"

// Repository stores event counts. SetCount overwrites the count for the
// (player, match, type) key, it never increments.
type Repository interface {
	Get(ctx context.Context, playerID, matchID string, eventType Type) (PlayerEvent, bool, error)
	ListByPlayerAndMatch(ctx context.Context, playerID, matchID string) ([]PlayerEvent, error)
	ListByMatch(ctx context.Context, matchID string) ([]PlayerEvent, error)
	ListByPlayer(ctx context.Context, playerID string) ([]PlayerEvent, error)
	SetCount(ctx context.Context, item PlayerEvent) error
	Delete(ctx context.Context, playerID, matchID string, eventType Type) error
	DeleteByMatch(ctx context.Context, matchID string) error
	DeleteByPlayer(ctx context.Context, playerID string) error
}
