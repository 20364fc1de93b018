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

// FootballReader is the read side of the football repository. By-id reads
// return ErrNotFound when the id resolves nowhere and ErrUpstream when the
// provider failed.
type FootballReader interface {
	ListLeagues(ctx context.Context) ([]league.League, error)
	GetLeague(ctx context.Context, leagueID int64) (league.League, error)
	ListLeaguesByCountry(ctx context.Context, country string) ([]league.League, error)

	ListLiveMatches(ctx context.Context) ([]match.Match, error)
	ListMatchesByDate(ctx context.Context, date time.Time) ([]match.Match, error)
	ListMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error)
	ListUpcomingMatches(ctx context.Context, leagueID int64, from time.Time, limit int) ([]match.Match, error)
	ListFinishedMatches(ctx context.Context, leagueID int64, limit int) ([]match.Match, error)
	GetMatch(ctx context.Context, matchID int64) (match.Match, error)
	ListTeamMatches(ctx context.Context, teamID int64, direction TeamMatchDirection, now time.Time, limit int) ([]match.Match, error)
	ListHeadToHead(ctx context.Context, teamA, teamB int64) ([]match.Match, error)

	ListStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error)

	ListTeamsByLeague(ctx context.Context, leagueID int64) ([]team.Team, error)
	SearchTeams(ctx context.Context, query string) ([]team.Team, error)
	GetTeam(ctx context.Context, teamID int64) (team.Team, error)

	ListTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error)
}

// FootballSyncStore is what the sync orchestrator needs: upstream fetches
// and idempotent writes keyed by provider ids.
type FootballSyncStore interface {
	FetchLeague(ctx context.Context, leagueID int64, season int) (league.League, bool, error)
	FetchLeagueRounds(ctx context.Context, leagueID int64, season int) (LeagueRounds, error)
	FetchStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error)
	FetchTeamsByLeague(ctx context.Context, leagueID int64, season int) ([]team.Team, error)
	FetchMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error)
	FetchUpcomingMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error)
	FetchFinishedMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error)
	FetchLiveMatches(ctx context.Context) ([]match.Match, error)
	FetchMatch(ctx context.Context, matchID int64) (match.Match, bool, error)
	FetchTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error)

	FindMatches(ctx context.Context, query match.Query) ([]match.Match, error)

	UpsertLeague(ctx context.Context, item league.League) error
	UpsertTeams(ctx context.Context, items []team.Team) error
	UpsertMatches(ctx context.Context, items []match.Match) error
	UpsertStandings(ctx context.Context, items []standing.Standing) error
	ReplaceTopScorers(ctx context.Context, leagueID int64, season int, items []topscorer.TopScorer) error
}

// FootballRepository is the single gateway to the store and the provider.
type FootballRepository interface {
	FootballReader
	FootballSyncStore
}
