package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

func newScoringService(
	players []player.Player,
	matches []match.Match,
	assignments []assignment.PlayerPosition,
	events []event.PlayerEvent,
) *ScoringService {
	return NewScoringService(
		memory.NewPlayerRepository(players),
		memory.NewMatchRepository(matches),
		memory.NewAssignmentRepository(assignments),
		memory.NewEventRepository(events),
		memory.NewPointModelRepository(fixturePointModel()),
	)
}

func TestScoringService_PointsForPlayerInMatch_MixedEvents(t *testing.T) {
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Defender One")},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 1, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeYellowCard, Count: 1},
		},
	)

	got, err := service.PointsForPlayerInMatch(context.Background(), "player-1", "match-1")
	if err != nil {
		t.Fatalf("PointsForPlayerInMatch error: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 6 - 1 = 5 points, got %d", got)
	}
}

func TestScoringService_PointsForPlayerInMatch_UnassignedScoresZero(t *testing.T) {
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Defender One")},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 1, 0)},
		nil,
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 2},
		},
	)

	got, err := service.PointsForPlayerInMatch(context.Background(), "player-1", "match-1")
	if err != nil {
		t.Fatalf("PointsForPlayerInMatch error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 points for an unassigned player, got %d", got)
	}
}

func TestScoringService_PointsForPlayerInMatch_MissingModelEntryScoresZero(t *testing.T) {
	// No (MIDFIELDER, GOAL_SCORED) entry and no (ALL, GOAL_SCORED) fallback.
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Midfielder One")},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 3, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "MIDFIELDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 3},
		},
	)

	got, err := service.PointsForPlayerInMatch(context.Background(), "player-1", "match-1")
	if err != nil {
		t.Fatalf("PointsForPlayerInMatch error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 points without a model entry, got %d", got)
	}
}

func TestScoringService_PointsForPlayerInMatch_WildcardFallback(t *testing.T) {
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Midfielder One")},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 2, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "MIDFIELDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeMatchWin, Count: 1},
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeYellowCard, Count: 2},
		},
	)

	got, err := service.PointsForPlayerInMatch(context.Background(), "player-1", "match-1")
	if err != nil {
		t.Fatalf("PointsForPlayerInMatch error: %v", err)
	}
	if got != 0 {
		// MATCH_WIN falls back to (ALL, MATCH_WIN)=2, YELLOW_CARD to (ALL, YELLOW_CARD)=-1*2.
		t.Fatalf("expected 2 - 2 = 0 points, got %d", got)
	}
}

func TestScoringService_TotalPointsForPlayer_IgnoresUncompletedMatches(t *testing.T) {
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Defender One")},
		[]match.Match{
			fixtureCompletedMatch("match-1", 1, 1, 0),
			fixtureMatch("match-2", 8),
		},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER"},
			{PlayerID: "player-1", MatchID: "match-2", Position: "DEFENDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
			{PlayerID: "player-1", MatchID: "match-2", Type: event.TypeGoalScored, Count: 2},
		},
	)

	got, err := service.TotalPointsForPlayer(context.Background(), "player-1")
	if err != nil {
		t.Fatalf("TotalPointsForPlayer error: %v", err)
	}
	if got != 6 {
		t.Fatalf("expected only the completed match to count (6 points), got %d", got)
	}
}

func TestScoringService_PointsForAllPlayersInMatch(t *testing.T) {
	service := newScoringService(
		[]player.Player{
			fixturePlayer("player-1", "Defender One"),
			fixturePlayer("player-2", "Midfielder One"),
			fixturePlayer("player-3", "Bench Player"),
		},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 1, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER"},
			{PlayerID: "player-2", MatchID: "match-1", Position: "MIDFIELDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
			{PlayerID: "player-2", MatchID: "match-1", Type: event.TypeAssist, Count: 1},
		},
	)

	got, err := service.PointsForAllPlayersInMatch(context.Background(), "match-1")
	if err != nil {
		t.Fatalf("PointsForAllPlayersInMatch error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 assigned players in the result, got %d", len(got))
	}
	if got["player-1"] != 6 {
		t.Fatalf("expected 6 points for player-1, got %d", got["player-1"])
	}
	if got["player-2"] != 7 {
		t.Fatalf("expected 7 points for player-2, got %d", got["player-2"])
	}
	if _, ok := got["player-3"]; ok {
		t.Fatalf("did not expect unassigned player-3 in the result")
	}
}

func TestScoringService_TotalPointsForAllPlayers_IncludesZeroTotals(t *testing.T) {
	service := newScoringService(
		[]player.Player{
			fixturePlayer("player-1", "Defender One"),
			fixturePlayer("player-2", "Bench Player"),
		},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 1, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER"},
		},
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
		},
	)

	got, err := service.TotalPointsForAllPlayers(context.Background())
	if err != nil {
		t.Fatalf("TotalPointsForAllPlayers error: %v", err)
	}

	if got["player-1"] != 6 {
		t.Fatalf("expected 6 points for player-1, got %d", got["player-1"])
	}
	total, ok := got["player-2"]
	if !ok {
		t.Fatalf("expected player-2 present with a zero total")
	}
	if total != 0 {
		t.Fatalf("expected 0 points for player-2, got %d", total)
	}
}

func TestScoringService_EventBreakdown_FiltersMatches(t *testing.T) {
	service := newScoringService(
		[]player.Player{fixturePlayer("player-1", "Defender One")},
		[]match.Match{
			fixtureCompletedMatch("match-1", 1, 1, 0),
			fixtureCompletedMatch("match-2", 8, 2, 1),
		},
		nil,
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 1},
			{PlayerID: "player-1", MatchID: "match-2", Type: event.TypeGoalScored, Count: 2},
			{PlayerID: "player-1", MatchID: "match-2", Type: event.TypeAssist, Count: 1},
		},
	)

	got, err := service.EventBreakdown(context.Background(), "player-1", []string{"match-2"})
	if err != nil {
		t.Fatalf("EventBreakdown error: %v", err)
	}

	if got[event.TypeGoalScored] != 2 {
		t.Fatalf("expected 2 goals in breakdown, got %d", got[event.TypeGoalScored])
	}
	if got[event.TypeAssist] != 1 {
		t.Fatalf("expected 1 assist in breakdown, got %d", got[event.TypeAssist])
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 event types in breakdown, got %d", len(got))
	}
}

func TestScoringService_InvalidInput(t *testing.T) {
	service := newScoringService(nil, nil, nil, nil)

	if _, err := service.PointsForPlayerInMatch(context.Background(), "", "match-1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty player id, got %v", err)
	}
	if _, err := service.TotalPointsForPlayer(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank player id, got %v", err)
	}
	if _, err := service.PointsForAllPlayersInMatch(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty match id, got %v", err)
	}
}
