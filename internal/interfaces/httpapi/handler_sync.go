package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/football-data/internal/usecase"
)

const recentRunsLimit = 10

func (h *Handler) StartSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartSync")
	defer span.End()

	if err := h.requireScheduler(); err != nil {
		writeError(ctx, w, err)
		return
	}

	started, err := h.scheduler.Start()
	if err != nil {
		h.logger.ErrorContext(ctx, "start sync schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	message := "sync schedule started"
	if !started {
		message = "sync schedule already running"
	}
	writeSyncResult(ctx, w, message, h.scheduler.Status())
}

func (h *Handler) StopSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StopSync")
	defer span.End()

	if err := h.requireScheduler(); err != nil {
		writeError(ctx, w, err)
		return
	}

	message := "sync schedule stopped"
	if !h.scheduler.Stop() {
		message = "sync schedule was not running"
	}
	writeSyncResult(ctx, w, message, h.scheduler.Status())
}

func (h *Handler) GetSyncStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncStatus")
	defer span.End()

	if err := h.requireScheduler(); err != nil {
		writeError(ctx, w, err)
		return
	}

	runs, err := h.sync.RecentRuns(ctx, recentRunsLimit)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent sync runs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncStatusDTO{
		Scheduler:  h.scheduler.Status(),
		LeagueIDs:  h.sync.LeagueIDs(),
		RecentRuns: syncRunsToDTO(runs),
	})
}

func (h *Handler) GetSyncRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSyncRun")
	defer span.End()

	runID := strings.TrimSpace(r.PathValue("runID"))
	run, err := h.sync.GetRun(ctx, runID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sync run failed", "run_id", runID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, syncRunToDTO(run))
}

func (h *Handler) SyncAll(w http.ResponseWriter, r *http.Request) {
	h.runSync(w, r, "httpapi.Handler.SyncAll", "full sync completed", func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncAll(ctx)
	})
}

func (h *Handler) SyncLeagues(w http.ResponseWriter, r *http.Request) {
	h.runSync(w, r, "httpapi.Handler.SyncLeagues", "leagues synced", h.sync.SyncLeagues)
}

func (h *Handler) SyncStandings(w http.ResponseWriter, r *http.Request) {
	leagueID, err := queryID(r, "leagueId")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncStandings", "standings synced", func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncStandings(ctx, leagueID)
	})
}

func (h *Handler) SyncMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncMatch", fmt.Sprintf("match %d synced", matchID), func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncMatch(ctx, matchID)
	})
}

func (h *Handler) SyncLeagueMatches(w http.ResponseWriter, r *http.Request) {
	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	season, err := h.parseSeason(r.Context(), r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncLeagueMatches", fmt.Sprintf("matches of league %d synced", leagueID), func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncLeagueMatches(ctx, leagueID, season)
	})
}

func (h *Handler) SyncFinishedMatches(w http.ResponseWriter, r *http.Request) {
	leagueID, err := queryID(r, "leagueId")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncFinishedMatches", "finished matches synced", func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncFinishedMatches(ctx, leagueID)
	})
}

func (h *Handler) SyncUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	leagueID, err := queryID(r, "leagueId")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncUpcomingMatches", "upcoming matches synced", func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncUpcomingMatches(ctx, leagueID)
	})
}

func (h *Handler) SyncMatchDetails(w http.ResponseWriter, r *http.Request) {
	var req matchDetailsRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if err := h.validateRequest(r.Context(), req); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncMatchDetails", "match details synced", func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncMatchDetails(ctx, req.MatchIDs)
	})
}

func (h *Handler) SyncTopScorers(w http.ResponseWriter, r *http.Request) {
	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	season, err := h.parseSeason(r.Context(), r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	h.runSync(w, r, "httpapi.Handler.SyncTopScorers", fmt.Sprintf("top scorers of league %d synced", leagueID), func(ctx context.Context) (usecase.SyncResult, error) {
		return h.sync.SyncTopScorers(ctx, leagueID, season)
	})
}

// runSync executes one manual sync on a context detached from the request.
// Per-item failures are reported in the result, not as an HTTP error.
func (h *Handler) runSync(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	message string,
	run func(ctx context.Context) (usecase.SyncResult, error),
) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	result, err := run(syncContext(r.WithContext(ctx)))
	if err != nil {
		h.logger.WarnContext(ctx, "manual sync failed", "operation", spanName, "error", err)
		writeError(ctx, w, err)
		return
	}
	if result.Failed > 0 {
		message = fmt.Sprintf("%s with %d failed item(s)", message, result.Failed)
	}

	writeSyncResult(ctx, w, message, result)
}

func (h *Handler) requireScheduler() error {
	if h.scheduler == nil {
		return fmt.Errorf("%w: sync scheduler is not configured", usecase.ErrDependencyUnavailable)
	}
	return nil
}
