package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	items, err := h.football.ListLiveMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListTodayMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTodayMatches")
	defer span.End()

	items, err := h.football.ListTodayMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list today matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListMatchesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByDate")
	defer span.End()

	date := strings.TrimSpace(r.PathValue("date"))
	items, err := h.football.ListMatchesByDate(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by date failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListMatchesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByLeague")
	defer span.End()

	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := h.parseSeason(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.ListMatchesByLeague(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list league matches failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	q, err := h.parseMatchListQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.ListUpcomingMatches(ctx, q.LeagueID, q.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list upcoming matches failed", "league_id", q.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListFinishedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFinishedMatches")
	defer span.End()

	q, err := h.parseMatchListQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.football.ListFinishedMatches(ctx, q.LeagueID, q.Limit)
	if err != nil {
		h.logger.WarnContext(ctx, "list finished matches failed", "league_id", q.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListFeaturedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFeaturedMatches")
	defer span.End()

	items, err := h.football.ListFeaturedMatches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list featured matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.football.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}
