package httpapi

import "net/http"

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
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

	rows, err := h.football.GetStandings(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) GetTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTopScorers")
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

	rows, err := h.football.GetTopScorers(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get top scorers failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, topScorersToDTO(rows))
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	team1, err := pathID(r, "team1ID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	team2, err := pathID(r, "team2ID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.football.GetHeadToHead(ctx, team1, team2)
	if err != nil {
		h.logger.WarnContext(ctx, "head-to-head failed", "team1_id", team1, "team2_id", team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, headToHeadToDTO(result))
}
