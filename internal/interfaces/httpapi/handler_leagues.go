package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-data/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	items, err := h.football.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguesToDTO(items))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.football.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

// LeagueSubresource serves /leagues/country/{country} and
// /leagues/{id}/overview, which share a path shape.
func (h *Handler) LeagueSubresource(w http.ResponseWriter, r *http.Request) {
	segment := strings.TrimSpace(r.PathValue("segment"))
	action := strings.TrimSpace(r.PathValue("action"))

	switch {
	case segment == "country":
		h.listLeaguesByCountry(w, r, action)
	case action == "overview":
		h.getLeagueOverview(w, r, segment)
	default:
		h.NotFound(w, r)
	}
}

func (h *Handler) listLeaguesByCountry(w http.ResponseWriter, r *http.Request, country string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesByCountry")
	defer span.End()

	items, err := h.football.ListLeaguesByCountry(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues by country failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguesToDTO(items))
}

func (h *Handler) getLeagueOverview(w http.ResponseWriter, r *http.Request, rawID string) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	leagueID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || leagueID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: league id must be a positive integer, got %q", usecase.ErrInvalidInput, rawID))
		return
	}
	season, err := h.parseSeason(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.football.GetLeagueOverview(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "league overview failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueOverviewToDTO(overview))
}
