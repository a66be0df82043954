package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	"github.com/klubhuset/mvp-tracker/internal/platform/id"
)

type CreateMatchInput struct {
	SeasonID    string
	Opponent    string
	Date        time.Time
	Location    string
	IsHomeMatch bool
	Formation   match.Formation
}

type UpdateMatchInput struct {
	Opponent    string
	Date        time.Time
	Location    string
	IsHomeMatch bool
	Formation   match.Formation
}

// MatchService owns fixture admin operations and the completion workflow
// that locks in a result and derives automatic events.
type MatchService struct {
	seasonRepo     season.Repository
	matchRepo      match.Repository
	assignmentRepo assignment.Repository
	eventRepo      event.Repository
	idGen          id.Generator
	now            func() time.Time
}

func NewMatchService(
	seasonRepo season.Repository,
	matchRepo match.Repository,
	assignmentRepo assignment.Repository,
	eventRepo event.Repository,
	idGen id.Generator,
) *MatchService {
	return &MatchService{
		seasonRepo:     seasonRepo,
		matchRepo:      matchRepo,
		assignmentRepo: assignmentRepo,
		eventRepo:      eventRepo,
		idGen:          idGen,
		now:            time.Now,
	}
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) List(ctx context.Context, seasonID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		items, err := s.matchRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list matches: %w", err)
		}
		return items, nil
	}

	items, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list matches by season: %w", err)
	}

	return items, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	input.SeasonID = strings.TrimSpace(input.SeasonID)
	if input.SeasonID == "" {
		return match.Match{}, fmt.Errorf("%w: season_id is required", ErrInvalidInput)
	}

	parent, exists, err := s.seasonRepo.Get(ctx, input.SeasonID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get season for match create: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: season %s", ErrNotFound, input.SeasonID)
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:          matchID,
		TeamID:      parent.TeamID,
		SeasonID:    parent.ID,
		Opponent:    strings.TrimSpace(input.Opponent),
		Date:        input.Date,
		Location:    strings.TrimSpace(input.Location),
		IsHomeMatch: input.IsHomeMatch,
		Formation:   input.Formation,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}

	return item, nil
}

func (s *MatchService) Update(ctx context.Context, matchID string, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	item.Opponent = strings.TrimSpace(input.Opponent)
	item.Date = input.Date
	item.Location = strings.TrimSpace(input.Location)
	item.IsHomeMatch = input.IsHomeMatch
	item.Formation = input.Formation
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("upsert match: %w", err)
	}

	return item, nil
}

// Delete removes the match and cascades its ledger rows. The cascade is
// owned here, not by storage.
func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, matchID); err != nil {
		return err
	}

	if err := s.assignmentRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("cascade delete assignments: %w", err)
	}
	if err := s.eventRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("cascade delete events: %w", err)
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}

	return nil
}

// UpdateScore edits the draft scoreline of a scheduled match. The scores
// stay invisible to scoring until Complete runs; once a match is
// completed its result can only change through Complete again.
func (s *MatchService) UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateScore")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if item.IsCompleted {
		return match.Match{}, fmt.Errorf("%w: match %s is completed, rerun completion to change the result", ErrConflict, matchID)
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("upsert match draft score: %w", err)
	}

	return item, nil
}

// Complete finalizes the match result and derives automatic events for
// every assigned player: MatchWin or MatchDraw from the outcome, and
// CleanSheet for goalkeepers and defenders when the opponent scored zero.
// Previously derived keys are cleared first, so rerunning with a
// corrected scoreline never leaves stale win/draw rows behind. Each step
// is idempotent; a retry after partial failure reruns the full sequence.
func (s *MatchService) Complete(ctx context.Context, matchID string, homeScore, awayScore int) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Complete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match for completion: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}

	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.IsCompleted = true
	item.UpdatedAt = s.now().UTC()

	if err := s.matchRepo.Upsert(ctx, item); err != nil {
		return match.Match{}, errors.Wrapf(err, "record result for match %s", matchID)
	}

	assignments, err := s.assignmentRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, errors.Wrapf(err, "list assignments for match %s completion", matchID)
	}

	if err := s.clearDerivedEvents(ctx, item, assignments); err != nil {
		return match.Match{}, err
	}
	if err := s.deriveOutcomeEvents(ctx, item, assignments); err != nil {
		return match.Match{}, err
	}
	if err := s.deriveCleanSheetEvents(ctx, item, assignments); err != nil {
		return match.Match{}, err
	}

	return item, nil
}

func (s *MatchService) clearDerivedEvents(ctx context.Context, item match.Match, assignments []assignment.PlayerPosition) error {
	for _, assigned := range assignments {
		if err := s.eventRepo.Delete(ctx, assigned.PlayerID, item.ID, event.TypeMatchWin); err != nil {
			return errors.Wrapf(err, "clear derived win for player %s", assigned.PlayerID)
		}
		if err := s.eventRepo.Delete(ctx, assigned.PlayerID, item.ID, event.TypeMatchDraw); err != nil {
			return errors.Wrapf(err, "clear derived draw for player %s", assigned.PlayerID)
		}
		if assigned.Position == position.Goalkeeper || assigned.Position == position.Defender {
			if err := s.eventRepo.Delete(ctx, assigned.PlayerID, item.ID, event.TypeCleanSheet); err != nil {
				return errors.Wrapf(err, "clear derived clean sheet for player %s", assigned.PlayerID)
			}
		}
	}
	return nil
}

func (s *MatchService) deriveOutcomeEvents(ctx context.Context, item match.Match, assignments []assignment.PlayerPosition) error {
	outcome, ok := item.Outcome()
	if !ok {
		return nil
	}

	var outcomeEvent event.Type
	switch outcome {
	case match.OutcomeWin:
		outcomeEvent = event.TypeMatchWin
	case match.OutcomeDraw:
		outcomeEvent = event.TypeMatchDraw
	default:
		// A loss derives no event.
		return nil
	}

	for _, assigned := range assignments {
		if err := s.eventRepo.SetCount(ctx, event.PlayerEvent{
			PlayerID: assigned.PlayerID,
			MatchID:  item.ID,
			Type:     outcomeEvent,
			Count:    1,
		}); err != nil {
			return errors.Wrapf(err, "derive %s for player %s", outcomeEvent, assigned.PlayerID)
		}
	}

	return nil
}

func (s *MatchService) deriveCleanSheetEvents(ctx context.Context, item match.Match, assignments []assignment.PlayerPosition) error {
	opponentScore, ok := item.OpponentScore()
	if !ok || opponentScore != 0 {
		return nil
	}

	for _, assigned := range assignments {
		if assigned.Position != position.Goalkeeper && assigned.Position != position.Defender {
			continue
		}
		if err := s.eventRepo.SetCount(ctx, event.PlayerEvent{
			PlayerID: assigned.PlayerID,
			MatchID:  item.ID,
			Type:     event.TypeCleanSheet,
			Count:    1,
		}); err != nil {
			return errors.Wrapf(err, "derive clean sheet for player %s", assigned.PlayerID)
		}
	}

	return nil
}
