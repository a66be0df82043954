package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	"github.com/klubhuset/mvp-tracker/internal/platform/id"
)

type SavePlayerInput struct {
	Name   string
	Number *int
}

// PlayerService manages the roster.
type PlayerService struct {
	teamRepo       team.Repository
	playerRepo     player.Repository
	assignmentRepo assignment.Repository
	eventRepo      event.Repository
	idGen          id.Generator
	now            func() time.Time
}

func NewPlayerService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	assignmentRepo assignment.Repository,
	eventRepo event.Repository,
	idGen id.Generator,
) *PlayerService {
	return &PlayerService{
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, input SavePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	club, exists, err := s.teamRepo.GetDefault(ctx)
	if err != nil {
		return player.Player{}, fmt.Errorf("get team for player create: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: team is not configured", ErrNotFound)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := s.now().UTC()
	item := player.Player{
		ID:        playerID,
		TeamID:    club.ID,
		Name:      strings.TrimSpace(input.Name),
		Number:    input.Number,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, input SavePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Number = input.Number
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Upsert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}

	return item, nil
}

// Delete removes the player and cascades ledger rows referencing them.
func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, playerID); err != nil {
		return err
	}

	if err := s.assignmentRepo.DeleteByPlayer(ctx, playerID); err != nil {
		return fmt.Errorf("cascade delete assignments: %w", err)
	}
	if err := s.eventRepo.DeleteByPlayer(ctx, playerID); err != nil {
		return fmt.Errorf("cascade delete events: %w", err)
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	return nil
}
