package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
)

// ScoringService computes MVP points from the point model, the assignment
// ledger and the event ledger. It only reads: given the same ledger state
// it always returns the same totals, and missing point-model entries
// degrade to zero instead of failing.
type ScoringService struct {
	playerRepo     player.Repository
	matchRepo      match.Repository
	assignmentRepo assignment.Repository
	eventRepo      event.Repository
	pointModelRepo pointmodel.Repository
}

func NewScoringService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	assignmentRepo assignment.Repository,
	eventRepo event.Repository,
	pointModelRepo pointmodel.Repository,
) *ScoringService {
	return &ScoringService{
		playerRepo:     playerRepo,
		matchRepo:      matchRepo,
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		pointModelRepo: pointModelRepo,
	}
}

// PointsForPlayerInMatch returns the player's points for one match.
// Unassigned players score zero regardless of recorded events.
func (s *ScoringService) PointsForPlayerInMatch(ctx context.Context, playerID, matchID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PointsForPlayerInMatch")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	matchID = strings.TrimSpace(matchID)
	if playerID == "" || matchID == "" {
		return 0, fmt.Errorf("%w: player_id and match_id are required", ErrInvalidInput)
	}

	table, err := s.loadPointTable(ctx)
	if err != nil {
		return 0, err
	}

	return s.pointsForPlayerInMatch(ctx, playerID, matchID, table)
}

func (s *ScoringService) pointsForPlayerInMatch(ctx context.Context, playerID, matchID string, table pointmodel.Table) (int, error) {
	assigned, exists, err := s.assignmentRepo.Get(ctx, playerID, matchID)
	if err != nil {
		return 0, fmt.Errorf("get assignment for scoring: %w", err)
	}
	if !exists {
		return 0, nil
	}

	events, err := s.eventRepo.ListByPlayerAndMatch(ctx, playerID, matchID)
	if err != nil {
		return 0, fmt.Errorf("list events for scoring: %w", err)
	}

	total := 0
	for _, item := range events {
		total += table.Resolve(assigned.Position, item.Type) * item.Count
	}

	return total, nil
}

// TotalPointsForPlayer sums the player's points over completed matches.
// Positions and events recorded against uncompleted matches are draft data
// and never contribute.
func (s *ScoringService) TotalPointsForPlayer(ctx context.Context, playerID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.TotalPointsForPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return 0, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	table, err := s.loadPointTable(ctx)
	if err != nil {
		return 0, err
	}

	return s.totalPointsForPlayer(ctx, playerID, table)
}

func (s *ScoringService) totalPointsForPlayer(ctx context.Context, playerID string, table pointmodel.Table) (int, error) {
	completed, err := s.matchRepo.ListCompleted(ctx)
	if err != nil {
		return 0, fmt.Errorf("list completed matches for scoring: %w", err)
	}

	total := 0
	for _, item := range completed {
		points, err := s.pointsForPlayerInMatch(ctx, playerID, item.ID, table)
		if err != nil {
			return 0, err
		}
		total += points
	}

	return total, nil
}

// PointsForAllPlayersInMatch returns points keyed by player for everyone
// assigned in the match. Players without an assignment are excluded, not
// reported as zero.
func (s *ScoringService) PointsForAllPlayersInMatch(ctx context.Context, matchID string) (map[string]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PointsForAllPlayersInMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	table, err := s.loadPointTable(ctx)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list assignments for match scoring: %w", err)
	}

	out := make(map[string]int, len(assignments))
	for _, assigned := range assignments {
		points, err := s.pointsForPlayerInMatch(ctx, assigned.PlayerID, matchID, table)
		if err != nil {
			return nil, err
		}
		out[assigned.PlayerID] = points
	}

	return out, nil
}

// TotalPointsForAllPlayers returns season totals for every known player,
// including players with zero completed-match participation.
func (s *ScoringService) TotalPointsForAllPlayers(ctx context.Context) (map[string]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.TotalPointsForAllPlayers")
	defer span.End()

	table, err := s.loadPointTable(ctx)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for scoring: %w", err)
	}

	out := make(map[string]int, len(players))
	for _, item := range players {
		total, err := s.totalPointsForPlayer(ctx, item.ID, table)
		if err != nil {
			return nil, err
		}
		out[item.ID] = total
	}

	return out, nil
}

// EventBreakdown sums raw event counts, not points, for the player across
// the given matches. Display data, independent of the point model.
func (s *ScoringService) EventBreakdown(ctx context.Context, playerID string, matchIDs []string) (map[event.Type]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.EventBreakdown")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	wanted := make(map[string]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		wanted[id] = struct{}{}
	}
	if len(wanted) == 0 {
		return map[event.Type]int{}, nil
	}

	events, err := s.eventRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list player events for breakdown: %w", err)
	}

	out := make(map[event.Type]int)
	for _, item := range events {
		if _, ok := wanted[item.MatchID]; !ok {
			continue
		}
		out[item.Type] += item.Count
	}

	return out, nil
}

func (s *ScoringService) loadPointTable(ctx context.Context) (pointmodel.Table, error) {
	entries, err := s.pointModelRepo.List(ctx)
	if err != nil {
		return pointmodel.Table{}, fmt.Errorf("list point model for scoring: %w", err)
	}
	return pointmodel.NewTable(entries), nil
}
