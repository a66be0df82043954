package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	pointmodelmock "github.com/klubhuset/mvp-tracker/internal/mocks/domain/pointmodel"
	"github.com/stretchr/testify/mock"
)

func TestPointModelService_List_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	pointModelRepo := pointmodelmock.NewRepository(t)
	service := NewPointModelService(pointModelRepo)

	wantErr := errors.New("connection reset")
	pointModelRepo.
		On("List", mock.Anything).
		Return(nil, wantErr).
		Once()

	_, err := service.List(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repository error surfaced, got %v", err)
	}
}

func TestPointModelService_Replace_PassesDedupedEntriesUsingMockery(t *testing.T) {
	t.Parallel()

	pointModelRepo := pointmodelmock.NewRepository(t)
	service := NewPointModelService(pointModelRepo)

	pointModelRepo.
		On("Replace", mock.Anything, mock.MatchedBy(func(entries []pointmodel.Entry) bool {
			return len(entries) == 1 && entries[0].Points == 9
		})).
		Return(nil).
		Once()

	saved, err := service.Replace(context.Background(), []pointmodel.Entry{
		{Position: "ATTACKER", EventType: "GOAL_SCORED", Points: 5},
		{Position: "ATTACKER", EventType: "GOAL_SCORED", Points: 9},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(saved) != 1 || saved[0].Points != 9 {
		t.Fatalf("expected deduped entries returned, got %+v", saved)
	}
}
