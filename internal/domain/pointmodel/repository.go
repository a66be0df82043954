package pointmodel

import "context"

// Repository stores the configured point model. Replace swaps the entire
// entry set atomically; callers pass the complete desired model.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Replace(ctx context.Context, entries []Entry) error
}
