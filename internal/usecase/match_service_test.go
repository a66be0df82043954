package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

type matchServiceFixture struct {
	service        *MatchService
	eventRepo      *memory.EventRepository
	assignmentRepo *memory.AssignmentRepository
}

func newMatchServiceFixture(matches []match.Match, assignments []assignment.PlayerPosition) matchServiceFixture {
	eventRepo := memory.NewEventRepository(nil)
	assignmentRepo := memory.NewAssignmentRepository(assignments)

	return matchServiceFixture{
		service: NewMatchService(
			memory.NewSeasonRepository(fixtureSeason()),
			memory.NewMatchRepository(matches),
			assignmentRepo,
			eventRepo,
			staticIDGenerator{id: "match-generated"},
		),
		eventRepo:      eventRepo,
		assignmentRepo: assignmentRepo,
	}
}

func eventCount(t *testing.T, repo *memory.EventRepository, playerID, matchID string, eventType event.Type) (int, bool) {
	t.Helper()
	item, exists, err := repo.Get(context.Background(), playerID, matchID, eventType)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	return item.Count, exists
}

func TestMatchService_Complete_WinDerivesMatchWinAndCleanSheet(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "gk", MatchID: "match-1", Position: "GOALKEEPER"},
			{PlayerID: "def", MatchID: "match-1", Position: "DEFENDER"},
			{PlayerID: "mid", MatchID: "match-1", Position: "MIDFIELDER"},
		},
	)
	ctx := context.Background()

	completed, err := fixture.service.Complete(ctx, "match-1", 2, 0)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if !completed.IsCompleted {
		t.Fatalf("expected match marked completed")
	}
	if outcome, _ := completed.Outcome(); outcome != match.OutcomeWin {
		t.Fatalf("expected WIN outcome, got %s", outcome)
	}

	for _, playerID := range []string{"gk", "def", "mid"} {
		count, exists := eventCount(t, fixture.eventRepo, playerID, "match-1", event.TypeMatchWin)
		if !exists || count != 1 {
			t.Fatalf("expected MATCH_WIN=1 for %s, got exists=%v count=%d", playerID, exists, count)
		}
	}
	for _, playerID := range []string{"gk", "def"} {
		count, exists := eventCount(t, fixture.eventRepo, playerID, "match-1", event.TypeCleanSheet)
		if !exists || count != 1 {
			t.Fatalf("expected CLEAN_SHEET=1 for %s, got exists=%v count=%d", playerID, exists, count)
		}
	}
	if _, exists := eventCount(t, fixture.eventRepo, "mid", "match-1", event.TypeCleanSheet); exists {
		t.Fatalf("midfielder must not receive a clean sheet")
	}
}

func TestMatchService_Complete_DrawDerivesMatchDrawOnly(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "mid", MatchID: "match-1", Position: "MIDFIELDER"},
		},
	)
	ctx := context.Background()

	if _, err := fixture.service.Complete(ctx, "match-1", 2, 2); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	count, exists := eventCount(t, fixture.eventRepo, "mid", "match-1", event.TypeMatchDraw)
	if !exists || count != 1 {
		t.Fatalf("expected MATCH_DRAW=1, got exists=%v count=%d", exists, count)
	}
	if _, exists := eventCount(t, fixture.eventRepo, "mid", "match-1", event.TypeMatchWin); exists {
		t.Fatalf("draw must not derive MATCH_WIN")
	}
}

func TestMatchService_Complete_ConcededGoalsDeriveNoCleanSheet(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "gk", MatchID: "match-1", Position: "GOALKEEPER"},
			{PlayerID: "def", MatchID: "match-1", Position: "DEFENDER"},
		},
	)
	ctx := context.Background()

	if _, err := fixture.service.Complete(ctx, "match-1", 4, 3); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	for _, playerID := range []string{"gk", "def"} {
		if _, exists := eventCount(t, fixture.eventRepo, playerID, "match-1", event.TypeCleanSheet); exists {
			t.Fatalf("expected no CLEAN_SHEET for %s when goals were conceded", playerID)
		}
	}
}

func TestMatchService_Complete_RerunClearsStaleDerivedEvents(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "def", MatchID: "match-1", Position: "DEFENDER"},
		},
	)
	ctx := context.Background()

	if _, err := fixture.service.Complete(ctx, "match-1", 1, 0); err != nil {
		t.Fatalf("first complete failed: %v", err)
	}
	if _, exists := eventCount(t, fixture.eventRepo, "def", "match-1", event.TypeMatchWin); !exists {
		t.Fatalf("expected MATCH_WIN after the win")
	}

	// Corrected result: the 1-0 was actually 1-1.
	if _, err := fixture.service.Complete(ctx, "match-1", 1, 1); err != nil {
		t.Fatalf("rerun complete failed: %v", err)
	}

	if _, exists := eventCount(t, fixture.eventRepo, "def", "match-1", event.TypeMatchWin); exists {
		t.Fatalf("stale MATCH_WIN must be cleared on rerun")
	}
	if count, exists := eventCount(t, fixture.eventRepo, "def", "match-1", event.TypeMatchDraw); !exists || count != 1 {
		t.Fatalf("expected MATCH_DRAW=1 after correction, got exists=%v count=%d", exists, count)
	}
	if _, exists := eventCount(t, fixture.eventRepo, "def", "match-1", event.TypeCleanSheet); exists {
		t.Fatalf("stale CLEAN_SHEET must be cleared when the opponent scored")
	}
}

func TestMatchService_Complete_LossDerivesNothing(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "att", MatchID: "match-1", Position: "ATTACKER"},
		},
	)
	ctx := context.Background()

	if _, err := fixture.service.Complete(ctx, "match-1", 0, 2); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	events, err := fixture.eventRepo.ListByMatch(ctx, "match-1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no derived events after a loss, got %d", len(events))
	}
}

func TestMatchService_UpdateScore_DraftInvisibleUntilComplete(t *testing.T) {
	fixture := newMatchServiceFixture([]match.Match{fixtureMatch("match-1", 1)}, nil)
	ctx := context.Background()

	updated, err := fixture.service.UpdateScore(ctx, "match-1", 3, 1)
	if err != nil {
		t.Fatalf("update score failed: %v", err)
	}
	if updated.IsCompleted {
		t.Fatalf("draft score must not complete the match")
	}
	if updated.HomeScore == nil || *updated.HomeScore != 3 {
		t.Fatalf("expected draft home score 3, got %v", updated.HomeScore)
	}
}

func TestMatchService_UpdateScore_CompletedMatchConflicts(t *testing.T) {
	fixture := newMatchServiceFixture([]match.Match{fixtureCompletedMatch("match-1", 1, 2, 0)}, nil)

	_, err := fixture.service.UpdateScore(context.Background(), "match-1", 5, 0)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for a completed match, got %v", err)
	}
}

func TestMatchService_Complete_UnknownMatch(t *testing.T) {
	fixture := newMatchServiceFixture(nil, nil)

	_, err := fixture.service.Complete(context.Background(), "ghost", 1, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Delete_CascadesLedgers(t *testing.T) {
	fixture := newMatchServiceFixture(
		[]match.Match{fixtureMatch("match-1", 1)},
		[]assignment.PlayerPosition{
			{PlayerID: "def", MatchID: "match-1", Position: "DEFENDER"},
		},
	)
	ctx := context.Background()

	if err := fixture.eventRepo.SetCount(ctx, event.PlayerEvent{
		PlayerID: "def", MatchID: "match-1", Type: event.TypeGoalScored, Count: 1,
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if err := fixture.service.Delete(ctx, "match-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	assignments, err := fixture.assignmentRepo.ListByMatch(ctx, "match-1")
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("expected assignments cascaded, got %d", len(assignments))
	}
	events, err := fixture.eventRepo.ListByMatch(ctx, "match-1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected events cascaded, got %d", len(events))
	}
}

func TestMatchService_Create_RequiresKnownSeason(t *testing.T) {
	fixture := newMatchServiceFixture(nil, nil)

	_, err := fixture.service.Create(context.Background(), CreateMatchInput{
		SeasonID: "ghost-season",
		Opponent: "Rivals",
		Date:     fixtureMatch("x", 1).Date,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown season, got %v", err)
	}
}
