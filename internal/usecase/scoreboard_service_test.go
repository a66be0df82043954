package usecase

import (
	"context"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

func newScoreboardService(
	players []player.Player,
	matches []match.Match,
	assignments []assignment.PlayerPosition,
	events []event.PlayerEvent,
) *ScoreboardService {
	playerRepo := memory.NewPlayerRepository(players)
	matchRepo := memory.NewMatchRepository(matches)
	scoring := NewScoringService(
		playerRepo,
		matchRepo,
		memory.NewAssignmentRepository(assignments),
		memory.NewEventRepository(events),
		memory.NewPointModelRepository(fixturePointModel()),
	)

	return NewScoreboardService(playerRepo, matchRepo, scoring)
}

func TestScoreboardService_Leaderboard_RanksWithTies(t *testing.T) {
	service := newScoreboardService(
		[]player.Player{
			fixturePlayer("player-1", "Anna"),
			fixturePlayer("player-2", "Berit"),
			fixturePlayer("player-3", "Carl"),
		},
		[]match.Match{fixtureCompletedMatch("match-1", 1, 1, 0)},
		[]assignment.PlayerPosition{
			{PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER"},
			{PlayerID: "player-2", MatchID: "match-1", Position: "GOALKEEPER"},
			{PlayerID: "player-3", MatchID: "match-1", Position: "MIDFIELDER"},
		},
		[]event.PlayerEvent{
			// 6 points each for the defender and the goalkeeper lookups:
			// DEFENDER/CLEAN_SHEET=6, GOALKEEPER/CLEAN_SHEET=8 minus two
			// yellow cards, MIDFIELDER/ASSIST=7.
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
			{PlayerID: "player-2", MatchID: "match-1", Type: event.TypeCleanSheet, Count: 1},
			{PlayerID: "player-2", MatchID: "match-1", Type: event.TypeYellowCard, Count: 2},
			{PlayerID: "player-3", MatchID: "match-1", Type: event.TypeAssist, Count: 1},
		},
	)

	rows, err := service.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].PlayerID != "player-3" || rows[0].Points != 7 || rows[0].Rank != 1 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	// Anna and Berit tie on 6 points and share rank 2, ordered by name.
	if rows[1].PlayerName != "Anna" || rows[1].Points != 6 || rows[1].Rank != 2 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
	if rows[2].PlayerName != "Berit" || rows[2].Points != 6 || rows[2].Rank != 2 {
		t.Fatalf("unexpected third row: %+v", rows[2])
	}
}

func TestScoreboardService_Leaderboard_Empty(t *testing.T) {
	service := newScoreboardService(nil, nil, nil, nil)

	rows, err := service.Leaderboard(context.Background())
	if err != nil {
		t.Fatalf("Leaderboard error: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected empty leaderboard, got %d rows", len(rows))
	}
}

func TestScoreboardService_CompletedEventBreakdown(t *testing.T) {
	service := newScoreboardService(
		[]player.Player{fixturePlayer("player-1", "Anna")},
		[]match.Match{
			fixtureCompletedMatch("match-1", 1, 1, 0),
			fixtureMatch("match-2", 8),
		},
		nil,
		[]event.PlayerEvent{
			{PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 2},
			{PlayerID: "player-1", MatchID: "match-2", Type: event.TypeGoalScored, Count: 5},
		},
	)

	got, err := service.CompletedEventBreakdown(context.Background(), "player-1")
	if err != nil {
		t.Fatalf("CompletedEventBreakdown error: %v", err)
	}
	if got[event.TypeGoalScored] != 2 {
		t.Fatalf("expected only completed-match goals (2), got %d", got[event.TypeGoalScored])
	}
}
