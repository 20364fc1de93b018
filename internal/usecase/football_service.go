package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/headtohead"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	"github.com/sourcegraph/conc/pool"
)

const (
	minTeamSearchLength     = 2
	defaultTeamMatchesLimit = 5
	defaultMatchListLimit   = 10
	maxMatchListLimit       = 50
	featuredUpcomingLimit   = 10
	seasonStartMonth        = time.July
	matchDateLayout         = "2006-01-02"
)

// LeagueOverview is a league with its table, fixtures and scorer chart for
// one season.
type LeagueOverview struct {
	League     league.League
	Season     int
	Standings  []standing.Standing
	Matches    []match.Match
	TopScorers []topscorer.TopScorer
}

// FootballService serves the read-side use cases.
type FootballService struct {
	repo FootballReader
	now  func() time.Time
}

func NewFootballService(repo FootballReader) *FootballService {
	return &FootballService{
		repo: repo,
		now:  time.Now,
	}
}

// CurrentSeason returns the season year in progress at now. Seasons start
// in July, so February 2026 belongs to season 2025.
func CurrentSeason(now time.Time) int {
	now = now.UTC()
	if now.Month() >= seasonStartMonth {
		return now.Year()
	}
	return now.Year() - 1
}

func (s *FootballService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListLeagues")
	defer span.End()

	items, err := s.repo.ListLeagues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return items, nil
}

func (s *FootballService) GetLeague(ctx context.Context, leagueID int64) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetLeague")
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return league.League{}, err
	}

	item, err := s.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league %d: %w", leagueID, err)
	}
	return item, nil
}

func (s *FootballService) ListLeaguesByCountry(ctx context.Context, country string) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListLeaguesByCountry")
	defer span.End()

	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}

	items, err := s.repo.ListLeaguesByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("list leagues by country %q: %w", country, err)
	}
	return items, nil
}

// GetLeagueOverview loads the league, then its standings, fixtures and
// scorers concurrently. A zero season means the league's current season.
func (s *FootballService) GetLeagueOverview(ctx context.Context, leagueID int64, season int) (LeagueOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetLeagueOverview")
	defer span.End()

	item, err := s.GetLeague(ctx, leagueID)
	if err != nil {
		return LeagueOverview{}, err
	}
	if season < 0 {
		return LeagueOverview{}, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if season == 0 {
		season = item.Season
	}
	if season == 0 {
		season = CurrentSeason(s.now())
	}

	out := LeagueOverview{League: item, Season: season}
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.ListStandings(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("list standings: %w", err)
		}
		out.Standings = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.ListMatchesByLeague(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("list matches: %w", err)
		}
		out.Matches = rows
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := s.repo.ListTopScorers(ctx, leagueID, season)
		if err != nil {
			return fmt.Errorf("list top scorers: %w", err)
		}
		out.TopScorers = rows
		return nil
	})
	if err := p.Wait(); err != nil {
		return LeagueOverview{}, fmt.Errorf("league %d overview: %w", leagueID, err)
	}

	return out, nil
}

func (s *FootballService) ListLiveMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListLiveMatches")
	defer span.End()

	items, err := s.repo.ListLiveMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	return items, nil
}

func (s *FootballService) ListTodayMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListTodayMatches")
	defer span.End()

	items, err := s.repo.ListMatchesByDate(ctx, startOfDay(s.now()))
	if err != nil {
		return nil, fmt.Errorf("list today matches: %w", err)
	}
	return items, nil
}

// ListMatchesByDate accepts an ISO calendar date (YYYY-MM-DD, UTC).
func (s *FootballService) ListMatchesByDate(ctx context.Context, rawDate string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListMatchesByDate")
	defer span.End()

	date, err := time.Parse(matchDateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, rawDate)
	}

	items, err := s.repo.ListMatchesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list matches on %s: %w", date.Format(matchDateLayout), err)
	}
	return items, nil
}

func (s *FootballService) ListMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListMatchesByLeague")
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return nil, err
	}
	season, err := s.resolveSeason(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListMatchesByLeague(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list matches for league %d: %w", leagueID, err)
	}
	return items, nil
}

// ListUpcomingMatches lists scheduled matches from now on; leagueID 0 means
// every league.
func (s *FootballService) ListUpcomingMatches(ctx context.Context, leagueID int64, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListUpcomingMatches")
	defer span.End()

	if leagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit, defaultMatchListLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListUpcomingMatches(ctx, leagueID, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return items, nil
}

// ListFinishedMatches lists finished matches newest first; leagueID 0 means
// every league.
func (s *FootballService) ListFinishedMatches(ctx context.Context, leagueID int64, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListFinishedMatches")
	defer span.End()

	if leagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be positive", ErrInvalidInput)
	}
	limit, err := normalizeLimit(limit, defaultMatchListLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListFinishedMatches(ctx, leagueID, limit)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}
	return items, nil
}

// ListFeaturedMatches combines live matches, today's scheduled matches and
// the next upcoming ones. The three reads run concurrently; a match appears
// once, in the first group that contains it.
func (s *FootballService) ListFeaturedMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListFeaturedMatches")
	defer span.End()

	now := s.now()
	var live, today, upcoming []match.Match

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		live, err = s.repo.ListLiveMatches(ctx)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		today, err = s.repo.ListMatchesByDate(ctx, startOfDay(now))
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		upcoming, err = s.repo.ListUpcomingMatches(ctx, 0, now, featuredUpcomingLimit)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("list featured matches: %w", err)
	}

	out := make([]match.Match, 0, len(live)+len(today)+len(upcoming))
	seen := make(map[int64]struct{}, cap(out))
	add := func(items []match.Match, keep func(match.Match) bool) {
		for _, item := range items {
			if _, dup := seen[item.ID]; dup || !keep(item) {
				continue
			}
			seen[item.ID] = struct{}{}
			out = append(out, item)
		}
	}
	add(live, func(match.Match) bool { return true })
	add(today, func(m match.Match) bool { return m.Status == match.StatusScheduled })
	add(upcoming, func(match.Match) bool { return true })

	return out, nil
}

func (s *FootballService) GetMatch(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetMatch")
	defer span.End()

	if err := requirePositiveID("match", matchID); err != nil {
		return match.Match{}, err
	}

	item, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match %d: %w", matchID, err)
	}
	return item, nil
}

func (s *FootballService) GetStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetStandings")
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return nil, err
	}
	season, err := s.resolveSeason(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListStandings(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list standings for league %d season %d: %w", leagueID, season, err)
	}
	return rows, nil
}

func (s *FootballService) ListTeamsByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListTeamsByLeague")
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams for league %d: %w", leagueID, err)
	}
	return items, nil
}

// SearchTeams matches team names. Queries shorter than two characters are
// rejected before any lookup.
func (s *FootballService) SearchTeams(ctx context.Context, query string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.SearchTeams")
	defer span.End()

	query = strings.TrimSpace(query)
	if len([]rune(query)) < minTeamSearchLength {
		return nil, fmt.Errorf("%w: search query must be at least %d characters", ErrInvalidInput, minTeamSearchLength)
	}

	items, err := s.repo.SearchTeams(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search teams %q: %w", query, err)
	}
	return items, nil
}

func (s *FootballService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetTeam")
	defer span.End()

	if err := requirePositiveID("team", teamID); err != nil {
		return team.Team{}, err
	}

	item, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %d: %w", teamID, err)
	}
	return item, nil
}

func (s *FootballService) ListTeamMatches(ctx context.Context, teamID int64, direction TeamMatchDirection, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.ListTeamMatches")
	defer span.End()

	if err := requirePositiveID("team", teamID); err != nil {
		return nil, err
	}
	if direction != TeamMatchesRecent && direction != TeamMatchesUpcoming {
		return nil, fmt.Errorf("%w: unknown direction %q", ErrInvalidInput, direction)
	}
	limit, err := normalizeLimit(limit, defaultTeamMatchesLimit)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListTeamMatches(ctx, teamID, direction, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list %s matches for team %d: %w", direction, teamID, err)
	}
	return items, nil
}

func (s *FootballService) GetTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetTopScorers")
	defer span.End()

	if err := requirePositiveID("league", leagueID); err != nil {
		return nil, err
	}
	season, err := s.resolveSeason(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListTopScorers(ctx, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("list top scorers for league %d season %d: %w", leagueID, season, err)
	}
	return rows, nil
}

// GetHeadToHead aggregates meetings between two teams; the result does not
// depend on argument order.
func (s *FootballService) GetHeadToHead(ctx context.Context, teamA, teamB int64) (headtohead.HeadToHead, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FootballService.GetHeadToHead")
	defer span.End()

	if err := requirePositiveID("team", teamA); err != nil {
		return headtohead.HeadToHead{}, err
	}
	if err := requirePositiveID("team", teamB); err != nil {
		return headtohead.HeadToHead{}, err
	}
	if teamA == teamB {
		return headtohead.HeadToHead{}, fmt.Errorf("%w: head-to-head needs two different teams", ErrInvalidInput)
	}

	first, second := headtohead.NormalizePair(teamA, teamB)
	matches, err := s.repo.ListHeadToHead(ctx, first, second)
	if err != nil {
		return headtohead.HeadToHead{}, fmt.Errorf("head-to-head %d vs %d: %w", first, second, err)
	}

	return headtohead.Aggregate(first, second, matches), nil
}

// resolveSeason fills a missing season from the stored league, then from
// the calendar.
func (s *FootballService) resolveSeason(ctx context.Context, leagueID int64, season int) (int, error) {
	if season < 0 {
		return 0, fmt.Errorf("%w: season must be positive", ErrInvalidInput)
	}
	if season > 0 {
		return season, nil
	}

	item, err := s.repo.GetLeague(ctx, leagueID)
	switch {
	case err == nil && item.Season > 0:
		return item.Season, nil
	case err != nil && !errors.Is(err, ErrNotFound):
		return 0, fmt.Errorf("resolve season for league %d: %w", leagueID, err)
	}
	return CurrentSeason(s.now()), nil
}

func requirePositiveID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s id must be a positive integer", ErrInvalidInput, kind)
	}
	return nil
}

func normalizeLimit(limit, fallback int) (int, error) {
	switch {
	case limit == 0:
		return fallback, nil
	case limit < 0 || limit > maxMatchListLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, maxMatchListLimit)
	default:
		return limit, nil
	}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
