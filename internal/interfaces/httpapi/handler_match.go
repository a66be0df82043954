package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/klubhuset/mvp-tracker/internal/domain/match"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type matchDTO struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"team_id"`
	SeasonID    string    `json:"season_id"`
	Opponent    string    `json:"opponent"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
	IsHomeMatch bool      `json:"is_home_match"`
	Formation   string    `json:"formation,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	HomeScore   *int      `json:"home_score,omitempty"`
	AwayScore   *int      `json:"away_score,omitempty"`
	Outcome     string    `json:"outcome,omitempty"`
}

type createMatchRequest struct {
	SeasonID    string    `json:"season_id" validate:"required"`
	Opponent    string    `json:"opponent" validate:"required,max=120"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	IsHomeMatch bool      `json:"is_home_match"`
	Formation   string    `json:"formation" validate:"omitempty,max=10"`
}

type updateMatchRequest struct {
	Opponent    string    `json:"opponent" validate:"required,max=120"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"omitempty,max=200"`
	IsHomeMatch bool      `json:"is_home_match"`
	Formation   string    `json:"formation" validate:"omitempty,max=10"`
}

type matchScoreRequest struct {
	HomeScore int `json:"home_score" validate:"min=0,max=99"`
	AwayScore int `json:"away_score" validate:"min=0,max=99"`
}

type formationDTO struct {
	Name  string         `json:"name"`
	Slots map[string]int `json:"slots"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	seasonID := strings.TrimSpace(r.URL.Query().Get("season_id"))
	matches, err := h.matchService.List(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		SeasonID:    req.SeasonID,
		Opponent:    req.Opponent,
		Date:        req.Date,
		Location:    req.Location,
		IsHomeMatch: req.IsHomeMatch,
		Formation:   match.Formation(req.Formation),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req updateMatchRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, matchID, usecase.UpdateMatchInput{
		Opponent:    req.Opponent,
		Date:        req.Date,
		Location:    req.Location,
		IsHomeMatch: req.IsHomeMatch,
		Formation:   match.Formation(req.Formation),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) UpdateMatchScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchScore")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req matchScoreRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateScore(ctx, matchID, req.HomeScore, req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "update match score failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CompleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))

	var req matchScoreRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Complete(ctx, matchID, req.HomeScore, req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "complete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	formations := match.Formations()
	items := make([]formationDTO, 0, len(formations))
	for _, f := range formations {
		slots := make(map[string]int)
		for pos, count := range f.Slots() {
			slots[string(pos)] = count
		}
		items = append(items, formationDTO{Name: string(f), Slots: slots})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func matchToDTO(item match.Match) matchDTO {
	dto := matchDTO{
		ID:          item.ID,
		TeamID:      item.TeamID,
		SeasonID:    item.SeasonID,
		Opponent:    item.Opponent,
		Date:        item.Date,
		Location:    item.Location,
		IsHomeMatch: item.IsHomeMatch,
		Formation:   string(item.Formation),
		IsCompleted: item.IsCompleted,
		HomeScore:   item.HomeScore,
		AwayScore:   item.AwayScore,
	}
	if item.IsCompleted {
		if outcome, ok := item.Outcome(); ok {
			dto.Outcome = string(outcome)
		}
	}
	return dto
}
