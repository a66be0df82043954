package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/klubhuset/mvp-tracker/internal/domain/event"
	"github.com/klubhuset/mvp-tracker/internal/usecase"
)

type playerEventDTO struct {
	PlayerID  string `json:"player_id"`
	MatchID   string `json:"match_id"`
	EventType string `json:"event_type"`
	Count     int    `json:"count"`
}

type recordEventRequest struct {
	Count int `json:"count" validate:"min=0,max=99"`
}

type eventTypeDTO struct {
	Name        string `json:"name"`
	AutoDerived bool   `json:"auto_derived"`
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	events, err := h.eventService.EventsForMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTOs(events))
}

func (h *Handler) ListPlayerMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerMatchEvents")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	events, err := h.eventService.EventsFor(ctx, playerID, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list player match events failed",
			"match_id", matchID,
			"player_id", playerID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTOs(events))
}

func (h *Handler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordEvent")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	eventType, err := event.ParseType(strings.ToUpper(strings.TrimSpace(r.PathValue("eventType"))))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	var req recordEventRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.RecordEvent(ctx, playerID, matchID, eventType, req.Count); err != nil {
		h.logger.WarnContext(ctx, "record event failed",
			"match_id", matchID,
			"player_id", playerID,
			"event_type", string(eventType),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerEventDTO{
		PlayerID:  playerID,
		MatchID:   matchID,
		EventType: string(eventType),
		Count:     req.Count,
	})
}

func (h *Handler) RemoveEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveEvent")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	playerID := strings.TrimSpace(r.PathValue("playerID"))

	eventType, err := event.ParseType(strings.ToUpper(strings.TrimSpace(r.PathValue("eventType"))))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if err := h.eventService.RemoveEvent(ctx, playerID, matchID, eventType); err != nil {
		h.logger.WarnContext(ctx, "remove event failed",
			"match_id", matchID,
			"player_id", playerID,
			"event_type", string(eventType),
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *Handler) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEventTypes")
	defer span.End()

	derived := make(map[event.Type]struct{})
	for _, t := range event.AutoDerivedTypes() {
		derived[t] = struct{}{}
	}

	types := event.Types()
	items := make([]eventTypeDTO, 0, len(types))
	for _, t := range types {
		_, auto := derived[t]
		items = append(items, eventTypeDTO{Name: string(t), AutoDerived: auto})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func eventsToDTOs(events []event.PlayerEvent) []playerEventDTO {
	items := make([]playerEventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, playerEventDTO{
			PlayerID:  e.PlayerID,
			MatchID:   e.MatchID,
			EventType: string(e.Type),
			Count:     e.Count,
		})
	}
	return items
}
