package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/domain/pointmodel"
	"github.com/klubhuset/mvp-tracker/internal/domain/position"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type pointModelEntryDTO struct {
	Position  string `json:"position"`
	EventType string `json:"event_type"`
	Points    int    `json:"points"`
}

type replacePointModelRequest struct {
	Entries []pointModelEntryPayload `json:"entries" validate:"required,min=1,dive"`
}

type pointModelEntryPayload struct {
	Position  string `json:"position" validate:"required"`
	EventType string `json:"event_type" validate:"required"`
	Points    int    `json:"points" validate:"min=-100,max=100"`
}

func (h *Handler) GetPointModel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPointModel")
	defer span.End()

	entries, err := h.pointModelService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get point model failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entriesToDTOs(entries))
}

func (h *Handler) ReplacePointModel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReplacePointModel")
	defer span.End()

	var req replacePointModelRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]pointmodel.Entry, 0, len(req.Entries))
	for _, payload := range req.Entries {
		pos, err := position.ParseScoring(strings.ToUpper(strings.TrimSpace(payload.Position)))
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		eventType, err := event.ParseType(strings.ToUpper(strings.TrimSpace(payload.EventType)))
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
			return
		}
		entries = append(entries, pointmodel.Entry{
			Position:  pos,
			EventType: eventType,
			Points:    payload.Points,
		})
	}

	saved, err := h.pointModelService.Replace(ctx, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "replace point model failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entriesToDTOs(saved))
}

func entriesToDTOs(entries []pointmodel.Entry) []pointModelEntryDTO {
	items := make([]pointModelEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, pointModelEntryDTO{
			Position:  string(entry.Position),
			EventType: string(entry.EventType),
			Points:    entry.Points,
		})
	}
	return items
}
