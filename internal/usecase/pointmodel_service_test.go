package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

func TestPointModelService_Replace_SwapsWholeModel(t *testing.T) {
	service := NewPointModelService(memory.NewPointModelRepository(fixturePointModel()))
	ctx := context.Background()

	saved, err := service.Replace(ctx, []pointmodel.Entry{
		{Position: "ATTACKER", EventType: "GOAL_SCORED", Points: 6},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(saved))
	}

	entries, err := service.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected old entries dropped, got %d entries", len(entries))
	}
	if entries[0].Position != "ATTACKER" || entries[0].Points != 6 {
		t.Fatalf("unexpected entry after replace: %+v", entries[0])
	}
}

func TestPointModelService_Replace_DuplicateKeyKeepsLast(t *testing.T) {
	service := NewPointModelService(memory.NewPointModelRepository(nil))

	saved, err := service.Replace(context.Background(), []pointmodel.Entry{
		{Position: "DEFENDER", EventType: "GOAL_SCORED", Points: 10},
		{Position: "DEFENDER", EventType: "GOAL_SCORED", Points: 12},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("expected duplicates collapsed to 1 entry, got %d", len(saved))
	}
	if saved[0].Points != 12 {
		t.Fatalf("expected last duplicate to win (12), got %d", saved[0].Points)
	}
}

func TestPointModelService_Replace_InvalidEntryRejected(t *testing.T) {
	service := NewPointModelService(memory.NewPointModelRepository(nil))

	_, err := service.Replace(context.Background(), []pointmodel.Entry{
		{Position: "BENCH", EventType: "GOAL_SCORED", Points: 1},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for invalid position, got %v", err)
	}
}

func TestPointModelService_Replace_AllowsWildcardPosition(t *testing.T) {
	service := NewPointModelService(memory.NewPointModelRepository(nil))

	saved, err := service.Replace(context.Background(), []pointmodel.Entry{
		{Position: "ALL", EventType: "RED_CARD", Points: -3},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if saved[0].Position != "ALL" {
		t.Fatalf("expected wildcard entry kept, got %+v", saved[0])
	}
}
