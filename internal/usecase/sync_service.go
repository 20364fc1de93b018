package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	"github.com/riskibarqy/football-data/internal/domain/team"
	idgen "github.com/riskibarqy/football-data/internal/platform/id"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/platform/ratelimit"
	"go.opentelemetry.io/otel/attribute"
)

const (
	SyncOperationAll             = "all"
	SyncOperationLeagues         = "leagues"
	SyncOperationStandings       = "standings"
	SyncOperationTeams           = "teams"
	SyncOperationLeagueMatches   = "league_matches"
	SyncOperationMatch           = "match"
	SyncOperationUpcomingMatches = "upcoming_matches"
	SyncOperationFinishedMatches = "finished_matches"
	SyncOperationLiveMatches     = "live_matches"
	SyncOperationMatchDetails    = "match_details"
	SyncOperationTopScorers      = "top_scorers"

	syncItemSuccess = "success"
	syncItemFailed  = "failed"

	defaultSyncWindowLimit = 20
	maxMatchDetailIDs      = 20
)

// SyncItemResult is the outcome of one upstream call plus its writes.
type SyncItemResult struct {
	Key        string `json:"key"`
	Status     string `json:"status"`
	Records    int    `json:"records"`
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

// SyncResult summarizes a sync operation. Failed counts items whose error
// was caught and skipped.
type SyncResult struct {
	RunID      string           `json:"run_id,omitempty"`
	Operation  string           `json:"operation"`
	Success    int              `json:"success"`
	Failed     int              `json:"failed"`
	Records    int              `json:"records"`
	Items      []SyncItemResult `json:"items"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
}

func (r *SyncResult) add(item SyncItemResult) {
	r.Items = append(r.Items, item)
	r.Records += item.Records
	if item.Status == syncItemSuccess {
		r.Success++
		return
	}
	r.Failed++
}

func (r *SyncResult) merge(other SyncResult) {
	for _, item := range other.Items {
		r.add(item)
	}
}

// SyncConfig lists the competitions the orchestrator keeps in sync.
type SyncConfig struct {
	LeagueIDs     []int64
	Season        int
	UpcomingLimit int
	FinishedLimit int
}

type syncTriggerKey struct{}

// WithSyncTrigger tags ctx with what started a sync, for the run log.
func WithSyncTrigger(ctx context.Context, trigger syncrun.Trigger) context.Context {
	return context.WithValue(ctx, syncTriggerKey{}, trigger)
}

func syncTriggerFrom(ctx context.Context) syncrun.Trigger {
	if trigger, ok := ctx.Value(syncTriggerKey{}).(syncrun.Trigger); ok {
		return trigger
	}
	return syncrun.TriggerManual
}

// SyncService copies provider data into the store. Every upstream call first
// takes a token from the limiter, so loops over leagues or matches never
// call the provider faster than the configured rate and never concurrently.
// A failing item is logged and recorded; the loop carries on.
type SyncService struct {
	store   FootballSyncStore
	limiter ratelimit.Limiter
	runs    syncrun.Repository
	ids     idgen.Generator
	cfg     SyncConfig
	logger  *logging.Logger
	now     func() time.Time
}

func NewSyncService(
	store FootballSyncStore,
	limiter ratelimit.Limiter,
	runs syncrun.Repository,
	ids idgen.Generator,
	cfg SyncConfig,
	logger *logging.Logger,
) *SyncService {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	if ids == nil {
		ids = idgen.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.UpcomingLimit <= 0 {
		cfg.UpcomingLimit = defaultSyncWindowLimit
	}
	if cfg.FinishedLimit <= 0 {
		cfg.FinishedLimit = defaultSyncWindowLimit
	}

	return &SyncService{
		store:   store,
		limiter: limiter,
		runs:    runs,
		ids:     ids,
		cfg:     cfg,
		logger:  logger.Named("sync"),
		now:     time.Now,
	}
}

// LeagueIDs returns the configured competitions.
func (s *SyncService) LeagueIDs() []int64 {
	return append([]int64(nil), s.cfg.LeagueIDs...)
}

func (s *SyncService) season() int {
	if s.cfg.Season > 0 {
		return s.cfg.Season
	}
	return CurrentSeason(s.now())
}

// SyncLeagues refreshes every configured league and its matchday counters.
func (s *SyncService) SyncLeagues(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLeagues")
	defer span.End()

	result := s.begin(SyncOperationLeagues)
	season := s.season()
	for _, leagueID := range s.cfg.LeagueIDs {
		result.add(s.runItem(ctx, "league:"+formatID(leagueID), func(ctx context.Context) (int, error) {
			return s.syncLeague(ctx, leagueID, season)
		}))
	}
	return s.finish(ctx, result), nil
}

func (s *SyncService) syncLeague(ctx context.Context, leagueID int64, season int) (int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	item, found, err := s.store.FetchLeague(ctx, leagueID, season)
	if err != nil {
		return 0, fmt.Errorf("fetch league: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: league %d season %d not found upstream", ErrNotFound, leagueID, season)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	rounds, err := s.store.FetchLeagueRounds(ctx, leagueID, season)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch league rounds failed, keeping matchday counters unset",
			"league_id", leagueID,
			"season", season,
			"error", err,
		)
	} else {
		item.TotalMatchdays = rounds.Total
		item.CurrentMatchday = rounds.Current
	}

	if err := item.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.store.UpsertLeague(ctx, item); err != nil {
		return 0, fmt.Errorf("upsert league: %w", err)
	}
	return 1, nil
}

// SyncStandings refreshes the table of one league, or of every configured
// league when leagueID is zero.
func (s *SyncService) SyncStandings(ctx context.Context, leagueID int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncStandings", attribute.Int64("league.id", leagueID))
	defer span.End()

	leagueIDs, err := s.targetLeagues(leagueID)
	if err != nil {
		return SyncResult{}, err
	}

	result := s.begin(SyncOperationStandings)
	season := s.season()
	for _, id := range leagueIDs {
		result.add(s.runItem(ctx, "standings:"+formatID(id), func(ctx context.Context) (int, error) {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, err
			}
			rows, err := s.store.FetchStandings(ctx, id, season)
			if err != nil {
				return 0, fmt.Errorf("fetch standings: %w", err)
			}
			valid := rows[:0]
			for _, row := range rows {
				if err := row.Validate(); err != nil {
					s.logger.WarnContext(ctx, "skip invalid standing row", "league_id", id, "error", err)
					continue
				}
				valid = append(valid, row)
			}
			if err := s.store.UpsertStandings(ctx, valid); err != nil {
				return 0, fmt.Errorf("upsert standings: %w", err)
			}
			return len(valid), nil
		}))
	}
	return s.finish(ctx, result), nil
}

// SyncTeams refreshes club profiles of one league, or of every configured
// league when leagueID is zero.
func (s *SyncService) SyncTeams(ctx context.Context, leagueID int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTeams")
	defer span.End()

	leagueIDs, err := s.targetLeagues(leagueID)
	if err != nil {
		return SyncResult{}, err
	}

	result := s.begin(SyncOperationTeams)
	season := s.season()
	for _, id := range leagueIDs {
		result.add(s.runItem(ctx, "teams:"+formatID(id), func(ctx context.Context) (int, error) {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, err
			}
			items, err := s.store.FetchTeamsByLeague(ctx, id, season)
			if err != nil {
				return 0, fmt.Errorf("fetch teams: %w", err)
			}
			if err := s.store.UpsertTeams(ctx, items); err != nil {
				return 0, fmt.Errorf("upsert teams: %w", err)
			}
			return len(items), nil
		}))
	}
	return s.finish(ctx, result), nil
}

// SyncLeagueMatches stores every fixture of a league season.
func (s *SyncService) SyncLeagueMatches(ctx context.Context, leagueID int64, season int) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLeagueMatches", attribute.Int64("league.id", leagueID))
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return SyncResult{}, err
	}
	if season < 0 {
		return SyncResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if season == 0 {
		season = s.season()
	}

	result := s.begin(SyncOperationLeagueMatches)
	result.add(s.runItem(ctx, "league_matches:"+formatID(leagueID), func(ctx context.Context) (int, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return 0, err
		}
		items, err := s.store.FetchMatchesByLeague(ctx, leagueID, season)
		if err != nil {
			return 0, fmt.Errorf("fetch league matches: %w", err)
		}
		return s.storeMatches(ctx, items)
	}))
	return s.finish(ctx, result), nil
}

// SyncMatch refreshes a single match.
func (s *SyncService) SyncMatch(ctx context.Context, matchID int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncMatch")
	defer span.End()

	if err := requirePositiveID("match", matchID); err != nil {
		return SyncResult{}, err
	}

	result := s.begin(SyncOperationMatch)
	result.add(s.runItem(ctx, "match:"+formatID(matchID), func(ctx context.Context) (int, error) {
		return s.syncOneMatch(ctx, matchID)
	}))
	return s.finish(ctx, result), nil
}

// SyncUpcomingMatches stores the next fixtures of one league, or of every
// configured league when leagueID is zero.
func (s *SyncService) SyncUpcomingMatches(ctx context.Context, leagueID int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncUpcomingMatches")
	defer span.End()

	return s.syncMatchWindow(ctx, SyncOperationUpcomingMatches, leagueID, s.store.FetchUpcomingMatches, s.cfg.UpcomingLimit)
}

// SyncFinishedMatches stores the latest results of one league, or of every
// configured league when leagueID is zero.
func (s *SyncService) SyncFinishedMatches(ctx context.Context, leagueID int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncFinishedMatches")
	defer span.End()

	return s.syncMatchWindow(ctx, SyncOperationFinishedMatches, leagueID, s.store.FetchFinishedMatches, s.cfg.FinishedLimit)
}

type matchWindowFetcher func(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error)

func (s *SyncService) syncMatchWindow(ctx context.Context, operation string, leagueID int64, fetch matchWindowFetcher, limit int) (SyncResult, error) {
	leagueIDs, err := s.targetLeagues(leagueID)
	if err != nil {
		return SyncResult{}, err
	}

	result := s.begin(operation)
	season := s.season()
	for _, id := range leagueIDs {
		result.add(s.runItem(ctx, operation+":"+formatID(id), func(ctx context.Context) (int, error) {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, err
			}
			items, err := fetch(ctx, id, season, limit)
			if err != nil {
				return 0, fmt.Errorf("fetch matches: %w", err)
			}
			return s.storeMatches(ctx, items)
		}))
	}
	return s.finish(ctx, result), nil
}

// SyncLiveMatches stores every live match the provider reports for the
// configured leagues.
func (s *SyncService) SyncLiveMatches(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLiveMatches")
	defer span.End()

	tracked := make(map[int64]struct{}, len(s.cfg.LeagueIDs))
	for _, id := range s.cfg.LeagueIDs {
		tracked[id] = struct{}{}
	}

	result := s.begin(SyncOperationLiveMatches)
	result.add(s.runItem(ctx, "live", func(ctx context.Context) (int, error) {
		if err := s.limiter.Wait(ctx); err != nil {
			return 0, err
		}
		items, err := s.store.FetchLiveMatches(ctx)
		if err != nil {
			return 0, fmt.Errorf("fetch live matches: %w", err)
		}
		if len(tracked) > 0 {
			filtered := items[:0]
			for _, item := range items {
				if _, ok := tracked[item.LeagueID]; ok {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
		return s.storeMatches(ctx, items)
	}))
	return s.finish(ctx, result), nil
}

// SyncMatchDetails refreshes the given matches one by one. Without ids it
// picks stored matches that are live or kick off today.
func (s *SyncService) SyncMatchDetails(ctx context.Context, matchIDs []int64) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncMatchDetails")
	defer span.End()

	for _, id := range matchIDs {
		if err := requirePositiveID("match", id); err != nil {
			return SyncResult{}, err
		}
	}
	if len(matchIDs) > maxMatchDetailIDs {
		return SyncResult{}, fmt.Errorf("%w: at most %d match ids per request", ErrInvalidInput, maxMatchDetailIDs)
	}

	if len(matchIDs) == 0 {
		selected, err := s.selectDetailCandidates(ctx)
		if err != nil {
			return SyncResult{}, err
		}
		matchIDs = selected
	}

	result := s.begin(SyncOperationMatchDetails)
	for _, id := range uniqueIDs(matchIDs) {
		result.add(s.runItem(ctx, "match:"+formatID(id), func(ctx context.Context) (int, error) {
			return s.syncOneMatch(ctx, id)
		}))
	}
	return s.finish(ctx, result), nil
}

func (s *SyncService) selectDetailCandidates(ctx context.Context) ([]int64, error) {
	now := s.now()
	day := startOfDay(now)

	live, err := s.store.FindMatches(ctx, match.Query{Statuses: []match.Status{match.StatusLive}})
	if err != nil {
		return nil, fmt.Errorf("find live matches: %w", err)
	}
	today, err := s.store.FindMatches(ctx, match.Query{From: day, To: day.Add(24 * time.Hour)})
	if err != nil {
		return nil, fmt.Errorf("find today matches: %w", err)
	}

	ids := make([]int64, 0, len(live)+len(today))
	for _, item := range live {
		ids = append(ids, item.ID)
	}
	for _, item := range today {
		if item.Status == match.StatusFinished {
			continue
		}
		ids = append(ids, item.ID)
	}
	ids = uniqueIDs(ids)
	if len(ids) > maxMatchDetailIDs {
		ids = ids[:maxMatchDetailIDs]
	}
	return ids, nil
}

// SyncTopScorers replaces the scorer chart of a league season.
func (s *SyncService) SyncTopScorers(ctx context.Context, leagueID int64, season int) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncTopScorers")
	defer span.End()

	leagueIDs, err := s.targetLeagues(leagueID)
	if err != nil {
		return SyncResult{}, err
	}
	if season < 0 {
		return SyncResult{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if season == 0 {
		season = s.season()
	}

	result := s.begin(SyncOperationTopScorers)
	for _, id := range leagueIDs {
		result.add(s.runItem(ctx, "top_scorers:"+formatID(id), func(ctx context.Context) (int, error) {
			if err := s.limiter.Wait(ctx); err != nil {
				return 0, err
			}
			items, err := s.store.FetchTopScorers(ctx, id, season)
			if err != nil {
				return 0, fmt.Errorf("fetch top scorers: %w", err)
			}
			valid := items[:0]
			for _, item := range items {
				if err := item.Validate(); err != nil {
					s.logger.WarnContext(ctx, "skip invalid top scorer", "league_id", id, "error", err)
					continue
				}
				valid = append(valid, item)
			}
			if err := s.store.ReplaceTopScorers(ctx, id, season, valid); err != nil {
				return 0, fmt.Errorf("replace top scorers: %w", err)
			}
			return len(valid), nil
		}))
	}
	return s.finish(ctx, result), nil
}

// SyncAll runs leagues, teams, standings, league fixtures and top scorers
// for every configured league, in that order.
func (s *SyncService) SyncAll(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncAll")
	defer span.End()

	result := s.begin(SyncOperationAll)
	quiet := withoutRunLog(ctx)

	steps := []func(context.Context) (SyncResult, error){
		s.SyncLeagues,
		func(ctx context.Context) (SyncResult, error) { return s.SyncTeams(ctx, 0) },
		func(ctx context.Context) (SyncResult, error) { return s.SyncStandings(ctx, 0) },
		func(ctx context.Context) (SyncResult, error) {
			combined := SyncResult{}
			for _, id := range s.cfg.LeagueIDs {
				part, err := s.SyncLeagueMatches(ctx, id, 0)
				if err != nil {
					return SyncResult{}, err
				}
				combined.merge(part)
			}
			return combined, nil
		},
		func(ctx context.Context) (SyncResult, error) { return s.SyncTopScorers(ctx, 0, 0) },
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			break
		}
		part, err := step(quiet)
		if err != nil {
			s.logger.WarnContext(ctx, "sync step failed", "error", err)
			result.add(SyncItemResult{Key: "step", Status: syncItemFailed, Error: err.Error()})
			continue
		}
		result.merge(part)
	}

	return s.finish(ctx, result), nil
}

func (s *SyncService) syncOneMatch(ctx context.Context, matchID int64) (int, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return 0, err
	}
	item, found, err := s.store.FetchMatch(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("fetch match: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: match %d not found upstream", ErrNotFound, matchID)
	}
	return s.storeMatches(ctx, []match.Match{item})
}

// storeMatches writes the teams referenced by items, then the valid matches.
func (s *SyncService) storeMatches(ctx context.Context, items []match.Match) (int, error) {
	valid := make([]match.Match, 0, len(items))
	teams := make([]team.Team, 0, len(items)*2)
	seenTeams := make(map[int64]struct{}, len(items)*2)
	for _, item := range items {
		if err := item.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skip invalid match", "match_id", item.ID, "error", err)
			continue
		}
		valid = append(valid, item)
		for _, ref := range []match.TeamRef{item.Home, item.Away} {
			if _, ok := seenTeams[ref.ID]; ok {
				continue
			}
			seenTeams[ref.ID] = struct{}{}
			teams = append(teams, team.Team{
				ID:       ref.ID,
				Name:     ref.Name,
				Logo:     ref.Logo,
				LeagueID: item.LeagueID,
				Season:   item.Season,
			})
		}
	}
	if len(items) > 0 && len(valid) == 0 {
		return 0, fmt.Errorf("%w: none of %d matches passed validation", ErrInvalidInput, len(items))
	}

	if err := s.store.UpsertTeams(ctx, teams); err != nil {
		return 0, fmt.Errorf("upsert match teams: %w", err)
	}
	if err := s.store.UpsertMatches(ctx, valid); err != nil {
		return 0, fmt.Errorf("upsert matches: %w", err)
	}
	return len(valid), nil
}

func (s *SyncService) targetLeagues(leagueID int64) ([]int64, error) {
	if leagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	if leagueID > 0 {
		return []int64{leagueID}, nil
	}
	if len(s.cfg.LeagueIDs) == 0 {
		return nil, fmt.Errorf("%w: no leagues configured for sync", ErrInvalidInput)
	}
	return s.LeagueIDs(), nil
}

// runItem executes one unit of work and converts its error into a failed
// item instead of propagating it.
func (s *SyncService) runItem(ctx context.Context, key string, fn func(context.Context) (int, error)) SyncItemResult {
	started := time.Now()
	records, err := fn(ctx)
	item := SyncItemResult{
		Key:        key,
		Status:     syncItemSuccess,
		Records:    records,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if err != nil {
		item.Status = syncItemFailed
		item.Records = 0
		item.Error = err.Error()
		s.logger.WarnContext(ctx, "sync item failed", "key", key, "error", err)
	}
	return item
}

func (s *SyncService) begin(operation string) SyncResult {
	return SyncResult{
		Operation: operation,
		Items:     make([]SyncItemResult, 0, len(s.cfg.LeagueIDs)),
		StartedAt: s.now().UTC(),
	}
}

type runLogKey struct{}

func withoutRunLog(ctx context.Context) context.Context {
	return context.WithValue(ctx, runLogKey{}, false)
}

func (s *SyncService) finish(ctx context.Context, result SyncResult) SyncResult {
	result.FinishedAt = s.now().UTC()
	s.logger.InfoContext(ctx, "sync finished",
		"operation", result.Operation,
		"success", result.Success,
		"failed", result.Failed,
		"records", result.Records,
	)
	annotateSyncSpan(ctx, result)

	if enabled, ok := ctx.Value(runLogKey{}).(bool); ok && !enabled {
		return result
	}
	if s.runs == nil {
		return result
	}

	runID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate sync run id failed", "error", err)
		return result
	}
	run := syncrun.Run{
		ID:         runID,
		Operation:  result.Operation,
		Trigger:    syncTriggerFrom(ctx),
		Status:     syncrun.ResolveStatus(result.Success, result.Failed),
		Success:    result.Success,
		Failed:     result.Failed,
		Records:    result.Records,
		Error:      firstItemError(result.Items),
		StartedAt:  result.StartedAt,
		FinishedAt: result.FinishedAt,
	}
	// The run log must survive a cancelled request context.
	if err := s.runs.Create(context.WithoutCancel(ctx), run); err != nil {
		s.logger.WarnContext(ctx, "record sync run failed", "operation", result.Operation, "error", err)
		return result
	}
	result.RunID = runID
	return result
}

// GetRun returns a recorded sync run.
func (s *SyncService) GetRun(ctx context.Context, runID string) (syncrun.Run, error) {
	if s.runs == nil {
		return syncrun.Run{}, fmt.Errorf("%w: sync run log is disabled", ErrDependencyUnavailable)
	}
	run, found, err := s.runs.GetByID(ctx, runID)
	if err != nil {
		return syncrun.Run{}, fmt.Errorf("get sync run: %w", err)
	}
	if !found {
		return syncrun.Run{}, fmt.Errorf("%w: sync run %s", ErrNotFound, runID)
	}
	return run, nil
}

// RecentRuns lists the latest recorded runs, newest first.
func (s *SyncService) RecentRuns(ctx context.Context, limit int) ([]syncrun.Run, error) {
	if s.runs == nil {
		return nil, nil
	}
	runs, err := s.runs.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list sync runs: %w", err)
	}
	return runs, nil
}

func firstItemError(items []SyncItemResult) string {
	for _, item := range items {
		if item.Error != "" {
			return item.Error
		}
	}
	return ""
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
