package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/platform/resilience"
	"github.com/panjf2000/ants/v2"
)

const defaultScoreboardWorkers = 4

type ScoreboardRow struct {
	PlayerID   string
	PlayerName string
	Number     *int
	Points     int
	Rank       int
}

// ScoreboardService builds the ranked MVP leaderboard over completed
// matches. Totals per player are independent reads, so they are computed
// on a small worker pool; concurrent scoreboard requests collapse into a
// single computation.
type ScoreboardService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	scoring    *ScoringService
	flight     resilience.SingleFlight
	workers    int
}

func NewScoreboardService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	scoring *ScoringService,
) *ScoreboardService {
	return &ScoreboardService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		scoring:    scoring,
		workers:    defaultScoreboardWorkers,
	}
}

func (s *ScoreboardService) Leaderboard(ctx context.Context) ([]ScoreboardRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.Leaderboard")
	defer span.End()

	value, err, _ := s.flight.Do("scoreboard:leaderboard", func() (any, error) {
		return s.buildLeaderboard(ctx)
	})
	if err != nil {
		return nil, err
	}

	rows, ok := value.([]ScoreboardRow)
	if !ok {
		return nil, fmt.Errorf("unexpected leaderboard result type %T", value)
	}

	return rows, nil
}

func (s *ScoreboardService) buildLeaderboard(ctx context.Context) ([]ScoreboardRow, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for leaderboard: %w", err)
	}
	if len(players) == 0 {
		return []ScoreboardRow{}, nil
	}

	workerCount := s.workers
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > len(players) {
		workerCount = len(players)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create leaderboard worker pool: %w", err)
	}
	defer pool.Release()

	rows := make([]ScoreboardRow, len(players))
	errs := make([]error, len(players))
	var wg sync.WaitGroup

	for idx, item := range players {
		idx, item := idx, item
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			points, err := s.scoring.TotalPointsForPlayer(ctx, item.ID)
			if err != nil {
				errs[idx] = err
				return
			}
			rows[idx] = ScoreboardRow{
				PlayerID:   item.ID,
				PlayerName: item.Name,
				Number:     item.Number,
				Points:     points,
			}
		}); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit leaderboard task: %w", err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].PlayerName != rows[j].PlayerName {
			return rows[i].PlayerName < rows[j].PlayerName
		}
		return rows[i].PlayerID < rows[j].PlayerID
	})

	lastPoints := 0
	rank := 0
	for idx := range rows {
		if idx == 0 || rows[idx].Points != lastPoints {
			rank++
			lastPoints = rows[idx].Points
		}
		rows[idx].Rank = rank
	}

	return rows, nil
}

// CompletedEventBreakdown sums a player's raw event counts across every
// completed match, the scoreboard's per-player detail view.
func (s *ScoreboardService) CompletedEventBreakdown(ctx context.Context, playerID string) (map[event.Type]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.CompletedEventBreakdown")
	defer span.End()

	completed, err := s.matchRepo.ListCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("list completed matches for breakdown: %w", err)
	}

	matchIDs := make([]string, 0, len(completed))
	for _, item := range completed {
		matchIDs = append(matchIDs, item.ID)
	}

	return s.scoring.EventBreakdown(ctx, playerID, matchIDs)
}
