package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
)

type playerServiceFixture struct {
	service        *PlayerService
	assignmentRepo *memory.AssignmentRepository
	eventRepo      *memory.EventRepository
}

func newPlayerServiceFixture(players []player.Player) playerServiceFixture {
	assignmentRepo := memory.NewAssignmentRepository(nil)
	eventRepo := memory.NewEventRepository(nil)

	return playerServiceFixture{
		service: NewPlayerService(
			memory.NewTeamRepository(fixtureTeam()),
			memory.NewPlayerRepository(players),
			assignmentRepo,
			eventRepo,
			staticIDGenerator{id: "player-generated"},
		),
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
	}
}

func TestPlayerService_Create(t *testing.T) {
	fixture := newPlayerServiceFixture(nil)

	created, err := fixture.service.Create(context.Background(), SavePlayerInput{
		Name:   "  Nina Holm  ",
		Number: intPtr(7),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID != "player-generated" {
		t.Fatalf("unexpected player id: %s", created.ID)
	}
	if created.TeamID != testTeamID {
		t.Fatalf("expected player bound to the default team, got %s", created.TeamID)
	}
	if created.Name != "Nina Holm" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
}

func TestPlayerService_Create_InvalidNumber(t *testing.T) {
	fixture := newPlayerServiceFixture(nil)

	_, err := fixture.service.Create(context.Background(), SavePlayerInput{
		Name:   "Nina Holm",
		Number: intPtr(120),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for jersey number 120, got %v", err)
	}
}

func TestPlayerService_Delete_CascadesLedgers(t *testing.T) {
	fixture := newPlayerServiceFixture([]player.Player{fixturePlayer("player-1", "Nina Holm")})
	ctx := context.Background()

	if err := fixture.assignmentRepo.Upsert(ctx, assignment.PlayerPosition{
		PlayerID: "player-1", MatchID: "match-1", Position: "DEFENDER",
	}); err != nil {
		t.Fatalf("seed assignment: %v", err)
	}
	if err := fixture.eventRepo.SetCount(ctx, event.PlayerEvent{
		PlayerID: "player-1", MatchID: "match-1", Type: event.TypeGoalScored, Count: 1,
	}); err != nil {
		t.Fatalf("seed event: %v", err)
	}

	if err := fixture.service.Delete(ctx, "player-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := fixture.service.Get(ctx, "player-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	assignments, err := fixture.assignmentRepo.ListByPlayer(ctx, "player-1")
	if err != nil {
		t.Fatalf("list assignments: %v", err)
	}
	if len(assignments) != 0 {
		t.Fatalf("expected assignments cascaded, got %d", len(assignments))
	}
	events, err := fixture.eventRepo.ListByPlayer(ctx, "player-1")
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected events cascaded, got %d", len(events))
	}
}

func TestPlayerService_Update(t *testing.T) {
	fixture := newPlayerServiceFixture([]player.Player{fixturePlayer("player-1", "Nina Holm")})

	updated, err := fixture.service.Update(context.Background(), "player-1", SavePlayerInput{
		Name:   "Nina Holm-Berg",
		Number: intPtr(10),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Nina Holm-Berg" {
		t.Fatalf("unexpected name after update: %q", updated.Name)
	}
	if updated.Number == nil || *updated.Number != 10 {
		t.Fatalf("unexpected number after update: %v", updated.Number)
	}
}
