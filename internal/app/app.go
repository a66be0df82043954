package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
	"github.com/klubhuset/mvp-tracker/internal/config"
	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/season"
	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	cacherepo "github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/cache"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/memory"
	"github.com/klubhuset/mvp-tracker/internal/infrastructure/repository/postgres"
	"github.com/klubhuset/mvp-tracker/internal/interfaces/httpapi"
	basecache "github.com/klubhuset/mvp-tracker/internal/platform/cache"
	idgen "github.com/klubhuset/mvp-tracker/internal/platform/id"
	"github.com/klubhuset/mvp-tracker/internal/platform/logging"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const bootstrapSeedTimeout = 30 * time.Second

type repositories struct {
	team       team.Repository
	player     player.Repository
	season     season.Repository
	match      match.Repository
	assignment assignment.Repository
	event      event.Repository
	pointModel pointmodel.Repository
}

// NewHTTPServer wires storage, services and the HTTP layer. The returned
// cleanup closes the database connection and is a no-op for the in-memory
// store.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.pointModel = cacherepo.NewPointModelRepository(repos.pointModel, store)
		repos.team = cacherepo.NewTeamRepository(repos.team, store)
	}

	generator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.team, generator)
	playerSvc := usecase.NewPlayerService(repos.team, repos.player, repos.assignment, repos.event, generator)
	seasonSvc := usecase.NewSeasonService(repos.team, repos.season, repos.match, generator)
	matchSvc := usecase.NewMatchService(repos.season, repos.match, repos.assignment, repos.event, generator)
	assignmentSvc := usecase.NewAssignmentService(repos.player, repos.match, repos.assignment)
	eventSvc := usecase.NewEventService(repos.player, repos.match, repos.event)
	scoringSvc := usecase.NewScoringService(repos.player, repos.match, repos.assignment, repos.event, repos.pointModel)
	scoreboardSvc := usecase.NewScoreboardService(repos.player, repos.match, scoringSvc)
	pointModelSvc := usecase.NewPointModelService(repos.pointModel)

	handler := httpapi.NewHandler(
		teamSvc,
		playerSvc,
		seasonSvc,
		matchSvc,
		assignmentSvc,
		eventSvc,
		scoringSvc,
		scoreboardSvc,
		pointModelSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.UseMemoryStore() {
		logger.Info("storage configured", "mode", "memory")
		return repositories{
			team:       memory.NewTeamRepository(memory.SeedTeam()),
			player:     memory.NewPlayerRepository(memory.SeedPlayers()),
			season:     memory.NewSeasonRepository(memory.SeedSeasons()),
			match:      memory.NewMatchRepository(memory.SeedMatches()),
			assignment: memory.NewAssignmentRepository(nil),
			event:      memory.NewEventRepository(nil),
			pointModel: memory.NewPointModelRepository(memory.SeedPointModel()),
		}, func() error { return nil }, nil
	}

	db, err := connectPostgres(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapSeedTimeout)
	defer cancel()
	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	logger.Info("storage configured", "mode", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		team:       postgres.NewTeamRepository(db),
		player:     postgres.NewPlayerRepository(db),
		season:     postgres.NewSeasonRepository(db),
		match:      postgres.NewMatchRepository(db),
		assignment: postgres.NewAssignmentRepository(db),
		event:      postgres.NewEventRepository(db),
		pointModel: postgres.NewPointModelRepository(db),
	}, db.Close, nil
}

func connectPostgres(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinaryResult)

	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return db, nil
}
