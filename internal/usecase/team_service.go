package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	"github.com/klubhuset/mvp-tracker/internal/platform/id"
)

type SaveTeamInput struct {
	Name    string
	LogoURL string
}

// TeamService manages the single tracked club.
type TeamService struct {
	teamRepo team.Repository
	idGen    id.Generator
	now      func() time.Time
}

func NewTeamService(teamRepo team.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *TeamService) Get(ctx context.Context) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, exists, err := s.teamRepo.GetDefault(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team is not configured", ErrNotFound)
	}

	return item, nil
}

// Save creates the club on first call and renames it afterwards.
func (s *TeamService) Save(ctx context.Context, input SaveTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Save")
	defer span.End()

	now := s.now().UTC()

	item, exists, err := s.teamRepo.GetDefault(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team for save: %w", err)
	}
	if !exists {
		teamID, err := s.idGen.NewID()
		if err != nil {
			return team.Team{}, fmt.Errorf("generate team id: %w", err)
		}
		item = team.Team{ID: teamID, CreatedAt: now}
	}

	item.Name = strings.TrimSpace(input.Name)
	item.LogoURL = strings.TrimSpace(input.LogoURL)
	item.UpdatedAt = now

	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("upsert team: %w", err)
	}

	return item, nil
}
