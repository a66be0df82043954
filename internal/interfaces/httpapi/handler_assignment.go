package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/assignment"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type assignmentDTO struct {
	PlayerID string `json:"player_id"`
	MatchID  string `json:"match_id"`
	Position string `json:"position"`
}

type assignPositionRequest struct {
	Position string `json:"position" validate:"required"`
}

func (h *Handler) ListMatchPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchPositions")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	assignments, err := h.assignmentService.PositionsFor(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match positions failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]assignmentDTO, 0, len(assignments))
	for _, a := range assignments {
		items = append(items, assignmentToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) AssignPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignPosition")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	var req assignPositionRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	pos, err := position.ParseAssignable(strings.ToUpper(strings.TrimSpace(req.Position)))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	item, err := h.assignmentService.Assign(ctx, playerID, matchID, pos)
	if err != nil {
		h.logger.WarnContext(ctx, "assign position failed",
			"match_id", matchID,
			"player_id", playerID,
			"position", string(pos),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, assignmentToDTO(item))
}

func (h *Handler) UnassignPosition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnassignPosition")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	if err := h.assignmentService.Unassign(ctx, playerID, matchID); err != nil {
		h.logger.WarnContext(ctx, "unassign position failed",
			"match_id", matchID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "unassigned"})
}

func (h *Handler) ListPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPositions")
	defer span.End()

	positions := position.Assignables()
	items := make([]string, 0, len(positions))
	for _, p := range positions {
		items = append(items, string(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func assignmentToDTO(item assignment.PlayerPosition) assignmentDTO {
	return assignmentDTO{
		PlayerID: item.PlayerID,
		MatchID:  item.MatchID,
		Position: string(item.Position),
	}
}
