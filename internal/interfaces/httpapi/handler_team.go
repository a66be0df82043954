package httpapi

import (
	"net/http"

	"github.com/klubhuset/mvp-tracker/internal/domain/team"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type teamDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
}

type saveTeamRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	item, err := h.teamService.Get(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) SaveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeam")
	defer span.End()

	var req saveTeamRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.teamService.Save(ctx, usecase.SaveTeamInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save team failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:      item.ID,
		Name:    item.Name,
		LogoURL: item.LogoURL,
	}
}
