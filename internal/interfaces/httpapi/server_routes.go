package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReadRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/team", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/points", handler.GetPlayerTotalPoints)
	mux.HandleFunc("GET /v1/players/{playerID}/events/breakdown", handler.GetPlayerEventBreakdown)
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/positions", handler.ListMatchPositions)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/matches/{matchID}/players/{playerID}/events", handler.ListPlayerMatchEvents)
	mux.HandleFunc("GET /v1/matches/{matchID}/points", handler.GetMatchPoints)
	mux.HandleFunc("GET /v1/scoreboard", handler.GetScoreboard)
	mux.HandleFunc("GET /v1/point-model", handler.GetPointModel)
	mux.HandleFunc("GET /v1/formations", handler.ListFormations)
	mux.HandleFunc("GET /v1/positions", handler.ListPositions)
	mux.HandleFunc("GET /v1/event-types", handler.ListEventTypes)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdminToken(adminToken, h)
	}

	mux.Handle("PUT /v1/team", admin(handler.SaveTeam))
	mux.Handle("POST /v1/players", admin(handler.CreatePlayer))
	mux.Handle("PUT /v1/players/{playerID}", admin(handler.UpdatePlayer))
	mux.Handle("DELETE /v1/players/{playerID}", admin(handler.DeletePlayer))
	mux.Handle("POST /v1/seasons", admin(handler.CreateSeason))
	mux.Handle("PUT /v1/seasons/{seasonID}", admin(handler.UpdateSeason))
	mux.Handle("DELETE /v1/seasons/{seasonID}", admin(handler.DeleteSeason))
	mux.Handle("POST /v1/matches", admin(handler.CreateMatch))
	mux.Handle("PUT /v1/matches/{matchID}", admin(handler.UpdateMatch))
	mux.Handle("DELETE /v1/matches/{matchID}", admin(handler.DeleteMatch))
	mux.Handle("PUT /v1/matches/{matchID}/score", admin(handler.UpdateMatchScore))
	mux.Handle("POST /v1/matches/{matchID}/complete", admin(handler.CompleteMatch))
	mux.Handle("PUT /v1/matches/{matchID}/positions/{playerID}", admin(handler.AssignPosition))
	mux.Handle("DELETE /v1/matches/{matchID}/positions/{playerID}", admin(handler.UnassignPosition))
	mux.Handle("PUT /v1/matches/{matchID}/players/{playerID}/events/{eventType}", admin(handler.RecordEvent))
	mux.Handle("DELETE /v1/matches/{matchID}/players/{playerID}/events/{eventType}", admin(handler.RemoveEvent))
	mux.Handle("PUT /v1/point-model", admin(handler.ReplacePointModel))
}
