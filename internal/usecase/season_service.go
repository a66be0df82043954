package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	"github.com/klubhuset/mvp-tracker/internal/platform/id"
)

type SaveSeasonInput struct {
	Name      string
	StartDate *time.Time
	EndDate   *time.Time
}

type SeasonService struct {
	teamRepo   team.Repository
	seasonRepo season.Repository
	matchRepo  match.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewSeasonService(
	teamRepo team.Repository,
	seasonRepo season.Repository,
	matchRepo match.Repository,
	idGen id.Generator,
) *SeasonService {
	return &SeasonService{
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
		matchRepo:  matchRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *SeasonService) Get(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Get")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season_id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.Get(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season %s", ErrNotFound, seasonID)
	}

	return item, nil
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return items, nil
}

func (s *SeasonService) Create(ctx context.Context, input SaveSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	club, exists, err := s.teamRepo.GetDefault(ctx)
	if err != nil {
		return season.Season{}, fmt.Errorf("get team for season create: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: team is not configured", ErrNotFound)
	}

	seasonID, err := s.idGen.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.now().UTC()
	item := season.Season{
		ID:        seasonID,
		TeamID:    club.ID,
		Name:      strings.TrimSpace(input.Name),
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Upsert(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}

	return item, nil
}

func (s *SeasonService) Update(ctx context.Context, seasonID string, input SaveSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Update")
	defer span.End()

	item, err := s.Get(ctx, seasonID)
	if err != nil {
		return season.Season{}, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.StartDate = input.StartDate
	item.EndDate = input.EndDate
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Upsert(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("upsert season: %w", err)
	}

	return item, nil
}

// Delete refuses to remove a season that still has matches; callers must
// delete or move the matches first.
func (s *SeasonService) Delete(ctx context.Context, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Delete")
	defer span.End()

	if _, err := s.Get(ctx, seasonID); err != nil {
		return err
	}

	matches, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("list matches for season delete: %w", err)
	}
	if len(matches) > 0 {
		return fmt.Errorf("%w: season %s still has %d matches", ErrConflict, seasonID, len(matches))
	}

	if err := s.seasonRepo.Delete(ctx, seasonID); err != nil {
		return fmt.Errorf("delete season: %w", err)
	}

	return nil
}
