package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/klubhuset/mvp-tracker/internal/platform/logging"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	seasonService     *usecase.SeasonService
	matchService      *usecase.MatchService
	assignmentService *usecase.AssignmentService
	eventService      *usecase.EventService
	scoringService    *usecase.ScoringService
	scoreboardService *usecase.ScoreboardService
	pointModelService *usecase.PointModelService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	seasonService *usecase.SeasonService,
	matchService *usecase.MatchService,
	assignmentService *usecase.AssignmentService,
	eventService *usecase.EventService,
	scoringService *usecase.ScoringService,
	scoreboardService *usecase.ScoreboardService,
	pointModelService *usecase.PointModelService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		playerService:     playerService,
		seasonService:     seasonService,
		matchService:      matchService,
		assignmentService: assignmentService,
		eventService:      eventService,
		scoringService:    scoringService,
		scoreboardService: scoreboardService,
		pointModelService: pointModelService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeJSON(body io.Reader, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
