package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
)

// EventService owns the event ledger rules. Counts are set, not
// accumulated: recording the same count twice leaves the same state.
type EventService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	eventRepo  event.Repository
}

func NewEventService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	eventRepo event.Repository,
) *EventService {
	return &EventService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
	}
}

// RecordEvent sets the count for (player, match, type). An existing row is
// overwritten; a zero count with no existing row writes nothing.
func (s *EventService) RecordEvent(ctx context.Context, playerID, matchID string, eventType event.Type, count int) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.RecordEvent")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}
	if !eventType.Valid() {
		return fmt.Errorf("%w: invalid event type %q", ErrInvalidInput, eventType)
	}
	if count < 0 {
		return fmt.Errorf("%w: event count must be non-negative", ErrInvalidInput)
	}

	if err := s.requirePlayer(ctx, playerID); err != nil {
		return err
	}
	if err := s.requireMatch(ctx, matchID); err != nil {
		return err
	}

	if count == 0 {
		_, exists, err := s.eventRepo.Get(ctx, playerID, matchID, eventType)
		if err != nil {
			return fmt.Errorf("get event for zero-count check: %w", err)
		}
		if !exists {
			return nil
		}
	}

	if err := s.eventRepo.SetCount(ctx, event.PlayerEvent{
		PlayerID: playerID,
		MatchID:  matchID,
		Type:     eventType,
		Count:    count,
	}); err != nil {
		return fmt.Errorf("set event count: %w", err)
	}

	return nil
}

// RemoveEvent deletes the row for (player, match, type) if present.
func (s *EventService) RemoveEvent(ctx context.Context, playerID, matchID string, eventType event.Type) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.RemoveEvent")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}
	if !eventType.Valid() {
		return fmt.Errorf("%w: invalid event type %q", ErrInvalidInput, eventType)
	}

	if err := s.eventRepo.Delete(ctx, playerID, matchID, eventType); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

// EventsFor lists the player's events in one match.
func (s *EventService) EventsFor(ctx context.Context, playerID, matchID string) ([]event.PlayerEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.EventsFor")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return nil, fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}

	items, err := s.eventRepo.ListByPlayerAndMatch(ctx, playerID, matchID)
	if err != nil {
		return nil, fmt.Errorf("list events by player and match: %w", err)
	}

	return items, nil
}

// EventsForMatch lists every event recorded for the match.
func (s *EventService) EventsForMatch(ctx context.Context, matchID string) ([]event.PlayerEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.EventsForMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	items, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list events by match: %w", err)
	}

	return items, nil
}

func (s *EventService) requirePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.Get(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	return nil
}

func (s *EventService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return nil
}
