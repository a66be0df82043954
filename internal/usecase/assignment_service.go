package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
)

// AssignmentService owns the position-assignment ledger rules: one
// position per player per match, one goalkeeper per match.
type AssignmentService struct {
	playerRepo     player.Repository
	matchRepo      match.Repository
	assignmentRepo assignment.Repository
}

func NewAssignmentService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	assignmentRepo assignment.Repository,
) *AssignmentService {
	return &AssignmentService{
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Assign puts the player on the given position for the match. An existing
// assignment for the player is replaced. Fails when another player already
// holds goalkeeper for the match.
func (s *AssignmentService) Assign(ctx context.Context, playerID, matchID string, pos position.Assignable) (assignment.PlayerPosition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Assign")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return assignment.PlayerPosition{}, fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}
	if !pos.Valid() {
		return assignment.PlayerPosition{}, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, pos)
	}

	if err := s.requirePlayer(ctx, playerID); err != nil {
		return assignment.PlayerPosition{}, err
	}
	if err := s.requireMatch(ctx, matchID); err != nil {
		return assignment.PlayerPosition{}, err
	}

	if pos == position.Goalkeeper {
		existing, err := s.assignmentRepo.ListByMatch(ctx, matchID)
		if err != nil {
			return assignment.PlayerPosition{}, fmt.Errorf("list assignments for goalkeeper check: %w", err)
		}
		for _, item := range existing {
			if item.Position == position.Goalkeeper && item.PlayerID != playerID {
				return assignment.PlayerPosition{}, fmt.Errorf("%w: goalkeeper is already assigned for this match", ErrConflict)
			}
		}
	}

	item := assignment.PlayerPosition{
		PlayerID: playerID,
		MatchID:  matchID,
		Position: pos,
	}
	if err := s.assignmentRepo.Upsert(ctx, item); err != nil {
		return assignment.PlayerPosition{}, fmt.Errorf("upsert assignment: %w", err)
	}

	return item, nil
}

// Unassign removes the player's assignment for the match. Removing an
// absent assignment is not an error.
func (s *AssignmentService) Unassign(ctx context.Context, playerID, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.Unassign")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}

	if err := s.assignmentRepo.Delete(ctx, playerID, matchID); err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	return nil
}

// PositionsFor returns every assignment recorded for the match.
func (s *AssignmentService) PositionsFor(ctx context.Context, matchID string) ([]assignment.PlayerPosition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.PositionsFor")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	items, err := s.assignmentRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list assignments by match: %w", err)
	}

	return items, nil
}

// PositionOf returns the player's assigned position for the match, if any.
func (s *AssignmentService) PositionOf(ctx context.Context, playerID, matchID string) (position.Assignable, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssignmentService.PositionOf")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return "", false, fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}

	item, exists, err := s.assignmentRepo.Get(ctx, playerID, matchID)
	if err != nil {
		return "", false, fmt.Errorf("get assignment: %w", err)
	}
	if !exists {
		return "", false, nil
	}

	return item.Position, true, nil
}

func (s *AssignmentService) requirePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.Get(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}
	return nil
}

func (s *AssignmentService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return nil
}
