package memory

import (
	"context"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
)

func TestEventRepository_SetCountZeroRemovesRow(t *testing.T) {
	repo := NewEventRepository(nil)
	ctx := context.Background()

	if err := repo.SetCount(ctx, event.PlayerEvent{
		PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 2,
	}); err != nil {
		t.Fatalf("set count: %v", err)
	}
	if err := repo.SetCount(ctx, event.PlayerEvent{
		PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 0,
	}); err != nil {
		t.Fatalf("set zero count: %v", err)
	}

	_, exists, err := repo.Get(ctx, "player-1", "match-1", event.TypeGoalScored)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if exists {
		t.Fatalf("expected row removed by zero count")
	}
}

func TestEventRepository_SeedSkipsZeroCounts(t *testing.T) {
	repo := NewEventRepository([]event.PlayerEvent{
		{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 1},
		{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeAssist, Count: 0},
	})

	events, err := repo.ListByPlayerAndMatch(context.Background(), "player-1", "match-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected zero-count seed skipped, got %d rows", len(events))
	}
	if events[0].Type != event.TypeGoalScored {
		t.Fatalf("unexpected surviving row: %+v", events[0])
	}
}

func TestEventRepository_ListByMatchSorted(t *testing.T) {
	repo := NewEventRepository([]event.PlayerEvent{
		{PlayerID: "player-2", MatchID: "match-1", Type: event.TypeGoalScored, Count: 1},
		{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeYellowCard, Count: 1},
		{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeAssist, Count: 2},
		{PlayerID: "player-1", MatchID: "match-2", Type: event.TypeAssist, Count: 1},
	})

	events, err := repo.ListByMatch(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 rows for match-1, got %d", len(events))
	}
	if events[0].PlayerID != "player-1" || events[0].Type != event.TypeAssist {
		t.Fatalf("unexpected first row: %+v", events[0])
	}
	if events[2].PlayerID != "player-2" {
		t.Fatalf("unexpected last row: %+v", events[2])
	}
}
