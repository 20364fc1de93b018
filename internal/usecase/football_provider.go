package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
)

// LeagueRounds carries the matchday counters derived from a league's
// round list.
type LeagueRounds struct {
	Total   int
	Current int
}

// TeamMatchDirection selects past or future fixtures of a team.
type TeamMatchDirection string

const (
	TeamMatchesRecent   TeamMatchDirection = "recent"
	TeamMatchesUpcoming TeamMatchDirection = "upcoming"
)

// FootballDataProvider is the upstream football-data API. Implementations
// mark their failures so errors.Is(err, ErrUpstream) holds; a missing
// entity is reported through the bool result, not an error.
type FootballDataProvider interface {
	FetchLeague(ctx context.Context, leagueID int64, season int) (league.League, bool, error)
	FetchLeaguesByCountry(ctx context.Context, country string) ([]league.League, error)
	FetchLeagueRounds(ctx context.Context, leagueID int64, season int) (LeagueRounds, error)
	FetchStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error)
	FetchMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error)
	FetchUpcomingMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error)
	FetchFinishedMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error)
	FetchLiveMatches(ctx context.Context) ([]match.Match, error)
	FetchMatchesByDate(ctx context.Context, date time.Time) ([]match.Match, error)
	FetchMatch(ctx context.Context, matchID int64) (match.Match, bool, error)
	FetchTeamMatches(ctx context.Context, teamID int64, direction TeamMatchDirection, limit int) ([]match.Match, error)
	FetchTeam(ctx context.Context, teamID int64) (team.Team, bool, error)
	FetchTeamsByLeague(ctx context.Context, leagueID int64, season int) ([]team.Team, error)
	SearchTeams(ctx context.Context, query string) ([]team.Team, error)
	FetchTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error)
	FetchHeadToHead(ctx context.Context, teamA, teamB int64, limit int) ([]match.Match, error)
}
