package httpapi

import (
	"net/http"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/player"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type playerDTO struct {
	ID     string `json:"id"`
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Number *int   `json:"number,omitempty"`
}

type savePlayerRequest struct {
	Name   string `json:"name" validate:"required,max=120"`
	Number *int   `json:"number" validate:"omitempty,min=0,max=99"`
}

type playerPointsDTO struct {
	PlayerID string `json:"player_id"`
	Points   int    `json:"points"`
}

type eventBreakdownDTO struct {
	PlayerID string         `json:"player_id"`
	Events   map[string]int `json:"events"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req savePlayerRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, usecase.SavePlayerInput{
		Name:   req.Name,
		Number: req.Number,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req savePlayerRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Update(ctx, playerID, usecase.SavePlayerInput{
		Name:   req.Name,
		Number: req.Number,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	if err := h.playerService.Delete(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) GetPlayerTotalPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTotalPoints")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	matchID := strings.TrimSpace(r.URL.Query().Get("match_id"))

	var (
		points int
		err    error
	)
	if matchID != "" {
		points, err = h.scoringService.PointsForPlayerInMatch(ctx, playerID, matchID)
	} else {
		points, err = h.scoringService.TotalPointsForPlayer(ctx, playerID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "player points failed", "player_id", playerID, "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerPointsDTO{
		PlayerID: playerID,
		Points:   points,
	})
}

func (h *Handler) GetPlayerEventBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerEventBreakdown")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var matchIDs []string
	if raw := strings.TrimSpace(r.URL.Query().Get("match_ids")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				matchIDs = append(matchIDs, id)
			}
		}
	}

	var (
		breakdown map[event.Type]int
		err       error
	)
	if len(matchIDs) > 0 {
		breakdown, err = h.scoringService.EventBreakdown(ctx, playerID, matchIDs)
	} else {
		breakdown, err = h.scoreboardService.CompletedEventBreakdown(ctx, playerID)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "event breakdown failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	events := make(map[string]int, len(breakdown))
	for eventType, count := range breakdown {
		events[string(eventType)] = count
	}

	writeSuccess(ctx, w, http.StatusOK, eventBreakdownDTO{
		PlayerID: playerID,
		Events:   events,
	})
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:     item.ID,
		TeamID: item.TeamID,
		Name:   item.Name,
		Number: item.Number,
	}
}
