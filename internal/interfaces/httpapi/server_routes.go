package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/squad", handler.GetTeamSquad)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/news", handler.ListPublishedNews)
	mux.HandleFunc("GET /v1/news/{articleID}", handler.GetNewsArticle)
	mux.HandleFunc("POST /v1/contact", handler.SubmitContactMessage)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/admin/teams", RequireAuth(verifier, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("PUT /v1/admin/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateTeam)))
	mux.Handle("DELETE /v1/admin/teams/{teamID}", RequireAuth(verifier, http.HandlerFunc(handler.DeactivateTeam)))

	mux.Handle("POST /v1/admin/players", RequireAuth(verifier, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/admin/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/admin/players/{playerID}", RequireAuth(verifier, http.HandlerFunc(handler.DeactivatePlayer)))

	mux.Handle("POST /v1/admin/matches", RequireAuth(verifier, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT /v1/admin/matches/{matchID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("POST /v1/admin/matches/{matchID}/result", RequireAuth(verifier, http.HandlerFunc(handler.RecordMatchResult)))

	mux.Handle("GET /v1/admin/news", RequireAuth(verifier, http.HandlerFunc(handler.ListAllNews)))
	mux.Handle("POST /v1/admin/news", RequireAuth(verifier, http.HandlerFunc(handler.CreateNewsArticle)))
	mux.Handle("PUT /v1/admin/news/{articleID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateNewsArticle)))
	mux.Handle("DELETE /v1/admin/news/{articleID}", RequireAuth(verifier, http.HandlerFunc(handler.UnpublishNewsArticle)))
}
