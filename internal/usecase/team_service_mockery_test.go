package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	teammock "github.com/klubhuset/mvp-tracker/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_Get_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, staticIDGenerator{id: "team-001"})

	wantErr := errors.New("connection reset")
	teamRepo.
		On("GetDefault", mock.Anything).
		Return(team.Team{}, false, wantErr).
		Once()

	_, err := service.Get(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected repository error surfaced, got %v", err)
	}
}

func TestTeamService_Save_UpsertErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teamRepo := teammock.NewRepository(t)
	service := NewTeamService(teamRepo, staticIDGenerator{id: "team-001"})

	existing := team.Team{ID: "team-001", Name: "Klubhuset FC"}
	wantErr := errors.New("write timeout")

	teamRepo.
		On("GetDefault", mock.Anything).
		Return(existing, true, nil).
		Once()
	teamRepo.
		On("Upsert", mock.Anything, mock.MatchedBy(func(item team.Team) bool {
			return item.ID == existing.ID && item.Name == "Klubhuset IF"
		})).
		Return(wantErr).
		Once()

	_, err := service.Save(context.Background(), SaveTeamInput{Name: "Klubhuset IF"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected upsert error surfaced, got %v", err)
	}
}
