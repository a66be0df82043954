package usecase

import (
	"context"
	"fmt"

	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
)

// PointModelService manages the configurable point model. The model is
// replaced wholesale: callers pass the complete desired entry set.
type PointModelService struct {
	pointModelRepo pointmodel.Repository
}

func NewPointModelService(pointModelRepo pointmodel.Repository) *PointModelService {
	return &PointModelService{pointModelRepo: pointModelRepo}
}

func (s *PointModelService) List(ctx context.Context) ([]pointmodel.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointModelService.List")
	defer span.End()

	entries, err := s.pointModelRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list point model: %w", err)
	}

	return entries, nil
}

// Replace validates and atomically swaps the whole model. Duplicate keys
// inside one batch keep the last entry, matching overwrite semantics.
func (s *PointModelService) Replace(ctx context.Context, entries []pointmodel.Entry) ([]pointmodel.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointModelService.Replace")
	defer span.End()

	type entryKey struct {
		position  string
		eventType string
	}

	deduped := make([]pointmodel.Entry, 0, len(entries))
	indexByKey := make(map[entryKey]int, len(entries))
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		k := entryKey{position: string(entry.Position), eventType: string(entry.EventType)}
		if idx, ok := indexByKey[k]; ok {
			deduped[idx] = entry
			continue
		}
		indexByKey[k] = len(deduped)
		deduped = append(deduped, entry)
	}

	if err := s.pointModelRepo.Replace(ctx, deduped); err != nil {
		return nil, fmt.Errorf("replace point model: %w", err)
	}

	return deduped, nil
}
