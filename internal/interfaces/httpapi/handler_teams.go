package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-data/internal/usecase"
)

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByLeague")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	query := r.URL.Query().Get("q")
	items, err := h.football.SearchTeams(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamsToDTO(items))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.football.GetTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) ListTeamRecentMatches(w http.ResponseWriter, r *http.Request) {
	h.listTeamMatches(w, r, usecase.TeamMatchesRecent)
}

func (h *Handler) ListTeamUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	h.listTeamMatches(w, r, usecase.TeamMatchesUpcoming)
}

func (h *Handler) listTeamMatches(w http.ResponseWriter, r *http.Request, direction usecase.TeamMatchDirection) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamMatches")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q, err := h.parseMatchListQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.ListTeamMatches(ctx, teamID, direction, q.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list team matches failed", "team_id", teamID, "direction", direction, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}
