package httpapi

import (
	"net/http"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type matchPointsDTO struct {
	MatchID string         `json:"match_id"`
	Points  map[string]int `json:"points"`
}

type scoreboardRowDTO struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Number     *int   `json:"number,omitempty"`
	Points     int    `json:"points"`
}

func (h *Handler) GetMatchPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchPoints")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	points, err := h.scoringService.PointsForAllPlayersInMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match points failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchPointsDTO{MatchID: matchID, Points: points})
}

func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoreboard")
	defer span.End()

	rows, err := h.scoreboardService.Leaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get scoreboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scoreboardRowDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, scoreboardRowToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func scoreboardRowToDTO(row usecase.ScoreboardRow) scoreboardRowDTO {
	return scoreboardRowDTO{
		Rank:       row.Rank,
		PlayerID:   row.PlayerID,
		PlayerName: row.PlayerName,
		Number:     row.Number,
		Points:     row.Points,
	}
}
