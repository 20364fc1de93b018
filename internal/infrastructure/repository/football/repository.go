package football

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/platform/ratelimit"
	"github.com/riskibarqy/football-data/internal/usecase"
)

const (
	defaultSearchLimit     = 20
	defaultHeadToHeadLimit = 20
)

// Stores groups the persistence repositories behind the gateway.
type Stores struct {
	Leagues    league.Repository
	Teams      team.Repository
	Matches    match.Repository
	Standings  standing.Repository
	TopScorers topscorer.Repository
}

type Options struct {
	// ProviderFallback lets reads that miss the store ask the provider.
	// Fallback results are returned as-is and never written back.
	ProviderFallback bool
	SearchLimit      int
	HeadToHeadLimit  int
}

// Repository is the single gateway to the store and the upstream provider.
// Reads come from the store; sync fetches go to the provider and are rate
// limited by the caller.
type Repository struct {
	stores   Stores
	provider usecase.FootballDataProvider
	limiter  ratelimit.Limiter
	opts     Options
	logger   *logging.Logger
}

var _ usecase.FootballRepository = (*Repository)(nil)

func NewRepository(
	stores Stores,
	provider usecase.FootballDataProvider,
	limiter ratelimit.Limiter,
	opts Options,
	logger *logging.Logger,
) *Repository {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = defaultSearchLimit
	}
	if opts.HeadToHeadLimit <= 0 {
		opts.HeadToHeadLimit = defaultHeadToHeadLimit
	}

	return &Repository{
		stores:   stores,
		provider: provider,
		limiter:  limiter,
		opts:     opts,
		logger:   logger.Named("football_repository"),
	}
}

func (r *Repository) ListLeagues(ctx context.Context) ([]league.League, error) {
	items, err := r.stores.Leagues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stored leagues: %w", err)
	}
	return items, nil
}

func (r *Repository) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	item, found, err := r.stores.Leagues.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get stored league: %w", err)
	}
	if found {
		return item, nil
	}
	if !r.canFallback() {
		return league.League{}, fmt.Errorf("%w: league %d", usecase.ErrNotFound, leagueID)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return league.League{}, err
	}
	item, found, err = r.provider.FetchLeague(ctx, leagueID, 0)
	if err != nil {
		return league.League{}, err
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league %d", usecase.ErrNotFound, leagueID)
	}
	return item, nil
}

func (r *Repository) ListLeaguesByCountry(ctx context.Context, country string) ([]league.League, error) {
	items, err := r.stores.Leagues.ListByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("list stored leagues by country: %w", err)
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]league.League, error) {
		return r.provider.FetchLeaguesByCountry(ctx, country)
	})
}

func (r *Repository) ListLiveMatches(ctx context.Context) ([]match.Match, error) {
	return r.findMatches(ctx, match.Query{Statuses: []match.Status{match.StatusLive}})
}

func (r *Repository) ListMatchesByDate(ctx context.Context, date time.Time) ([]match.Match, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	items, err := r.findMatches(ctx, match.Query{From: from, To: from.Add(24 * time.Hour)})
	if err != nil {
		return nil, err
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]match.Match, error) {
		return r.provider.FetchMatchesByDate(ctx, from)
	})
}

func (r *Repository) ListMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error) {
	items, err := r.findMatches(ctx, match.Query{LeagueID: leagueID, Season: season})
	if err != nil {
		return nil, err
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]match.Match, error) {
		return r.provider.FetchMatchesByLeague(ctx, leagueID, season)
	})
}

func (r *Repository) ListUpcomingMatches(ctx context.Context, leagueID int64, from time.Time, limit int) ([]match.Match, error) {
	return r.findMatches(ctx, match.Query{
		LeagueID: leagueID,
		Statuses: []match.Status{match.StatusScheduled},
		From:     from,
		Limit:    limit,
	})
}

func (r *Repository) ListFinishedMatches(ctx context.Context, leagueID int64, limit int) ([]match.Match, error) {
	return r.findMatches(ctx, match.Query{
		LeagueID:   leagueID,
		Statuses:   []match.Status{match.StatusFinished},
		Limit:      limit,
		Descending: true,
	})
}

func (r *Repository) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	item, found, err := r.stores.Matches.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get stored match: %w", err)
	}
	if found {
		return item, nil
	}
	if !r.canFallback() {
		return match.Match{}, fmt.Errorf("%w: match %d", usecase.ErrNotFound, matchID)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return match.Match{}, err
	}
	item, found, err = r.provider.FetchMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match %d", usecase.ErrNotFound, matchID)
	}
	return item, nil
}

func (r *Repository) ListTeamMatches(ctx context.Context, teamID int64, direction usecase.TeamMatchDirection, now time.Time, limit int) ([]match.Match, error) {
	query := match.Query{TeamID: teamID, Limit: limit}
	switch direction {
	case usecase.TeamMatchesRecent:
		query.Statuses = []match.Status{match.StatusFinished}
		query.To = now
		query.Descending = true
	default:
		query.Statuses = []match.Status{match.StatusScheduled}
		query.From = now
	}

	items, err := r.findMatches(ctx, query)
	if err != nil {
		return nil, err
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]match.Match, error) {
		return r.provider.FetchTeamMatches(ctx, teamID, direction, limit)
	})
}

func (r *Repository) ListHeadToHead(ctx context.Context, teamA, teamB int64) ([]match.Match, error) {
	items, err := r.stores.Matches.ListBetweenTeams(ctx, teamA, teamB, r.opts.HeadToHeadLimit)
	if err != nil {
		return nil, fmt.Errorf("list stored head-to-head: %w", err)
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]match.Match, error) {
		return r.provider.FetchHeadToHead(ctx, teamA, teamB, r.opts.HeadToHeadLimit)
	})
}

func (r *Repository) ListStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	rows, err := r.stores.Standings.ListByLeague(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list stored standings: %w", err)
	}
	return fallbackList(ctx, r, rows, func(ctx context.Context) ([]standing.Standing, error) {
		return r.provider.FetchStandings(ctx, leagueID, season)
	})
}

func (r *Repository) ListTeamsByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	items, err := r.stores.Teams.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list stored teams: %w", err)
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]team.Team, error) {
		return r.provider.FetchTeamsByLeague(ctx, leagueID, 0)
	})
}

func (r *Repository) SearchTeams(ctx context.Context, query string) ([]team.Team, error) {
	items, err := r.stores.Teams.Search(ctx, query, r.opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search stored teams: %w", err)
	}
	return fallbackList(ctx, r, items, func(ctx context.Context) ([]team.Team, error) {
		return r.provider.SearchTeams(ctx, query)
	})
}

func (r *Repository) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	item, found, err := r.stores.Teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get stored team: %w", err)
	}
	if found {
		return item, nil
	}
	if !r.canFallback() {
		return team.Team{}, fmt.Errorf("%w: team %d", usecase.ErrNotFound, teamID)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return team.Team{}, err
	}
	item, found, err = r.provider.FetchTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w: team %d", usecase.ErrNotFound, teamID)
	}
	return item, nil
}

func (r *Repository) ListTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	rows, err := r.stores.TopScorers.ListByLeague(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list stored top scorers: %w", err)
	}
	return fallbackList(ctx, r, rows, func(ctx context.Context) ([]topscorer.TopScorer, error) {
		return r.provider.FetchTopScorers(ctx, leagueID, season)
	})
}

func (r *Repository) FetchLeague(ctx context.Context, leagueID int64, season int) (league.League, bool, error) {
	if err := r.requireProvider(); err != nil {
		return league.League{}, false, err
	}
	return r.provider.FetchLeague(ctx, leagueID, season)
}

func (r *Repository) FetchLeagueRounds(ctx context.Context, leagueID int64, season int) (usecase.LeagueRounds, error) {
	if err := r.requireProvider(); err != nil {
		return usecase.LeagueRounds{}, err
	}
	return r.provider.FetchLeagueRounds(ctx, leagueID, season)
}

func (r *Repository) FetchStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchStandings(ctx, leagueID, season)
}

func (r *Repository) FetchTeamsByLeague(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchTeamsByLeague(ctx, leagueID, season)
}

func (r *Repository) FetchMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchMatchesByLeague(ctx, leagueID, season)
}

func (r *Repository) FetchUpcomingMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchUpcomingMatches(ctx, leagueID, season, limit)
}

func (r *Repository) FetchFinishedMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchFinishedMatches(ctx, leagueID, season, limit)
}

func (r *Repository) FetchLiveMatches(ctx context.Context) ([]match.Match, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchLiveMatches(ctx)
}

func (r *Repository) FetchMatch(ctx context.Context, matchID int64) (match.Match, bool, error) {
	if err := r.requireProvider(); err != nil {
		return match.Match{}, false, err
	}
	return r.provider.FetchMatch(ctx, matchID)
}

func (r *Repository) FetchTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	if err := r.requireProvider(); err != nil {
		return nil, err
	}
	return r.provider.FetchTopScorers(ctx, leagueID, season)
}

func (r *Repository) FindMatches(ctx context.Context, query match.Query) ([]match.Match, error) {
	return r.findMatches(ctx, query)
}

func (r *Repository) UpsertLeague(ctx context.Context, item league.League) error {
	return r.stores.Leagues.Upsert(ctx, item)
}

func (r *Repository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}
	return r.stores.Teams.Upsert(ctx, items)
}

func (r *Repository) UpsertMatches(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}
	return r.stores.Matches.Upsert(ctx, items)
}

func (r *Repository) UpsertStandings(ctx context.Context, items []standing.Standing) error {
	if len(items) == 0 {
		return nil
	}
	return r.stores.Standings.Upsert(ctx, items)
}

func (r *Repository) ReplaceTopScorers(ctx context.Context, leagueID int64, season int, items []topscorer.TopScorer) error {
	return r.stores.TopScorers.Replace(ctx, leagueID, season, items)
}

func (r *Repository) findMatches(ctx context.Context, query match.Query) ([]match.Match, error) {
	items, err := r.stores.Matches.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stored matches: %w", err)
	}
	return items, nil
}

func (r *Repository) canFallback() bool {
	return r.opts.ProviderFallback && r.provider != nil
}

func (r *Repository) requireProvider() error {
	if r.provider == nil {
		return fmt.Errorf("%w: football data provider is not configured", usecase.ErrDependencyUnavailable)
	}
	return nil
}

// fallbackList returns stored when it has rows; otherwise it asks the
// provider, if fallback is enabled.
func fallbackList[T any](ctx context.Context, r *Repository, stored []T, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if len(stored) > 0 || !r.canFallback() {
		return stored, nil
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	r.logger.DebugContext(ctx, "served read from provider", "rows", len(items))
	return items, nil
}
