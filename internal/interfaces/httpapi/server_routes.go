package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/leagues", handler.ListLeagues)
	mux.HandleFunc("GET "+apiPrefix+"/leagues/{leagueID}", handler.GetLeague)
	// Serves both /leagues/country/{country} and /leagues/{id}/overview.
	mux.HandleFunc("GET "+apiPrefix+"/leagues/{segment}/{action}", handler.LeagueSubresource)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/today", handler.ListTodayMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/date/{date}", handler.ListMatchesByDate)
	mux.HandleFunc("GET "+apiPrefix+"/matches/league/{leagueID}", handler.ListMatchesByLeague)
	mux.HandleFunc("GET "+apiPrefix+"/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/finished", handler.ListFinishedMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/featured", handler.ListFeaturedMatches)
	mux.HandleFunc("GET "+apiPrefix+"/matches/{matchID}", handler.GetMatch)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/teams/league/{leagueID}", handler.ListTeamsByLeague)
	mux.HandleFunc("GET "+apiPrefix+"/teams/search", handler.SearchTeams)
	mux.HandleFunc("GET "+apiPrefix+"/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET "+apiPrefix+"/teams/{teamID}/matches/recent", handler.ListTeamRecentMatches)
	mux.HandleFunc("GET "+apiPrefix+"/teams/{teamID}/matches/upcoming", handler.ListTeamUpcomingMatches)
}

func registerStatisticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET "+apiPrefix+"/standings/{leagueID}", handler.GetStandings)
	mux.HandleFunc("GET "+apiPrefix+"/statistics/top-scorers/{leagueID}", handler.GetTopScorers)
	mux.HandleFunc("GET "+apiPrefix+"/statistics/h2h/{team1ID}/{team2ID}", handler.GetHeadToHead)
}

func registerSyncRoutes(mux *http.ServeMux, handler *Handler, syncToken string) {
	guard := func(fn http.HandlerFunc) http.Handler {
		return RequireSyncToken(syncToken, fn)
	}

	mux.Handle("POST "+apiPrefix+"/sync", guard(handler.StartSync))
	mux.Handle("DELETE "+apiPrefix+"/sync", guard(handler.StopSync))
	mux.Handle("GET "+apiPrefix+"/sync", guard(handler.GetSyncStatus))
	mux.Handle("GET "+apiPrefix+"/sync/runs/{runID}", guard(handler.GetSyncRun))

	mux.Handle("POST "+apiPrefix+"/sync/all", guard(handler.SyncAll))
	mux.Handle("POST "+apiPrefix+"/sync/leagues", guard(handler.SyncLeagues))
	mux.Handle("POST "+apiPrefix+"/sync/standings", guard(handler.SyncStandings))
	mux.Handle("POST "+apiPrefix+"/sync/match/{matchID}", guard(handler.SyncMatch))
	mux.Handle("POST "+apiPrefix+"/sync/matches/finished", guard(handler.SyncFinishedMatches))
	mux.Handle("POST "+apiPrefix+"/sync/matches/upcoming", guard(handler.SyncUpcomingMatches))
	mux.Handle("POST "+apiPrefix+"/sync/matches/details", guard(handler.SyncMatchDetails))
	mux.Handle("POST "+apiPrefix+"/sync/matches/{leagueID}", guard(handler.SyncLeagueMatches))
	mux.Handle("POST "+apiPrefix+"/sync/scorers/{leagueID}", guard(handler.SyncTopScorers))
}
