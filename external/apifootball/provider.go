package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	"github.com/riskibarqy/football-data/internal/usecase"
)

// minSearchLength is the provider's own lower bound for team search.
const minSearchLength = 3

func (c *Client) FetchLeague(ctx context.Context, leagueID int64, season int) (league.League, bool, error) {
	query := url.Values{"id": {formatID(leagueID)}}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}

	items, err := get[leagueItem](ctx, c, "/leagues", query)
	if err != nil {
		return league.League{}, false, fmt.Errorf("fetch league %d: %w", leagueID, err)
	}
	if len(items) == 0 {
		return league.League{}, false, nil
	}
	return mapLeague(items[0], season), true, nil
}

func (c *Client) FetchLeaguesByCountry(ctx context.Context, country string) ([]league.League, error) {
	items, err := get[leagueItem](ctx, c, "/leagues", url.Values{"country": {strings.TrimSpace(country)}})
	if err != nil {
		return nil, fmt.Errorf("fetch leagues of %q: %w", country, err)
	}

	out := make([]league.League, 0, len(items))
	for _, item := range items {
		out = append(out, mapLeague(item, 0))
	}
	return out, nil
}

func (c *Client) FetchLeagueRounds(ctx context.Context, leagueID int64, season int) (usecase.LeagueRounds, error) {
	query := url.Values{
		"league": {formatID(leagueID)},
		"season": {strconv.Itoa(season)},
		"dates":  {"true"},
	}
	items, err := get[roundItem](ctx, c, "/fixtures/rounds", query)
	if err != nil {
		return usecase.LeagueRounds{}, fmt.Errorf("fetch rounds of league %d: %w", leagueID, err)
	}
	return mapRounds(items, c.now()), nil
}

func (c *Client) FetchStandings(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	query := url.Values{"league": {formatID(leagueID)}, "season": {strconv.Itoa(season)}}
	items, err := get[standingsItem](ctx, c, "/standings", query)
	if err != nil {
		return nil, fmt.Errorf("fetch standings of league %d: %w", leagueID, err)
	}
	return mapStandings(items, leagueID, season), nil
}

func (c *Client) FetchMatchesByLeague(ctx context.Context, leagueID int64, season int) ([]match.Match, error) {
	query := url.Values{"league": {formatID(leagueID)}, "season": {strconv.Itoa(season)}}
	return c.fixtures(ctx, query, fmt.Sprintf("league %d season %d", leagueID, season))
}

func (c *Client) FetchUpcomingMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error) {
	query := leagueWindowQuery(leagueID, season)
	query.Set("next", strconv.Itoa(limit))
	return c.fixtures(ctx, query, fmt.Sprintf("next %d of league %d", limit, leagueID))
}

func (c *Client) FetchFinishedMatches(ctx context.Context, leagueID int64, season int, limit int) ([]match.Match, error) {
	query := leagueWindowQuery(leagueID, season)
	query.Set("last", strconv.Itoa(limit))
	return c.fixtures(ctx, query, fmt.Sprintf("last %d of league %d", limit, leagueID))
}

func (c *Client) FetchLiveMatches(ctx context.Context) ([]match.Match, error) {
	return c.fixtures(ctx, url.Values{"live": {"all"}}, "live")
}

func (c *Client) FetchMatchesByDate(ctx context.Context, date time.Time) ([]match.Match, error) {
	day := date.UTC().Format(time.DateOnly)
	return c.fixtures(ctx, url.Values{"date": {day}, "timezone": {"UTC"}}, "date "+day)
}

func (c *Client) FetchMatch(ctx context.Context, matchID int64) (match.Match, bool, error) {
	items, err := c.fixtures(ctx, url.Values{"id": {formatID(matchID)}}, "id "+formatID(matchID))
	if err != nil {
		return match.Match{}, false, err
	}
	if len(items) == 0 {
		return match.Match{}, false, nil
	}
	return items[0], true, nil
}

func (c *Client) FetchTeamMatches(ctx context.Context, teamID int64, direction usecase.TeamMatchDirection, limit int) ([]match.Match, error) {
	query := url.Values{"team": {formatID(teamID)}}
	if direction == usecase.TeamMatchesRecent {
		query.Set("last", strconv.Itoa(limit))
	} else {
		query.Set("next", strconv.Itoa(limit))
	}
	return c.fixtures(ctx, query, fmt.Sprintf("%s of team %d", direction, teamID))
}

func (c *Client) FetchHeadToHead(ctx context.Context, teamA, teamB int64, limit int) ([]match.Match, error) {
	query := url.Values{"h2h": {formatID(teamA) + "-" + formatID(teamB)}}
	if limit > 0 {
		query.Set("last", strconv.Itoa(limit))
	}
	items, err := get[fixtureItem](ctx, c, "/fixtures/headtohead", query)
	if err != nil {
		return nil, fmt.Errorf("fetch head-to-head %d-%d: %w", teamA, teamB, err)
	}
	return mapFixtures(items), nil
}

func (c *Client) FetchTeam(ctx context.Context, teamID int64) (team.Team, bool, error) {
	items, err := get[teamItem](ctx, c, "/teams", url.Values{"id": {formatID(teamID)}})
	if err != nil {
		return team.Team{}, false, fmt.Errorf("fetch team %d: %w", teamID, err)
	}
	if len(items) == 0 {
		return team.Team{}, false, nil
	}
	return mapTeam(items[0], 0, 0), true, nil
}

func (c *Client) FetchTeamsByLeague(ctx context.Context, leagueID int64, season int) ([]team.Team, error) {
	query := url.Values{"league": {formatID(leagueID)}}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}
	items, err := get[teamItem](ctx, c, "/teams", query)
	if err != nil {
		return nil, fmt.Errorf("fetch teams of league %d: %w", leagueID, err)
	}
	return mapTeams(items, leagueID, season), nil
}

func (c *Client) SearchTeams(ctx context.Context, query string) ([]team.Team, error) {
	needle := strings.TrimSpace(query)
	if len([]rune(needle)) < minSearchLength {
		return []team.Team{}, nil
	}
	items, err := get[teamItem](ctx, c, "/teams", url.Values{"search": {needle}})
	if err != nil {
		return nil, fmt.Errorf("search teams %q: %w", needle, err)
	}
	return mapTeams(items, 0, 0), nil
}

func (c *Client) FetchTopScorers(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	query := url.Values{"league": {formatID(leagueID)}, "season": {strconv.Itoa(season)}}
	items, err := get[scorerItem](ctx, c, "/players/topscorers", query)
	if err != nil {
		return nil, fmt.Errorf("fetch top scorers of league %d: %w", leagueID, err)
	}
	return mapTopScorers(items, leagueID, season), nil
}

func (c *Client) fixtures(ctx context.Context, query url.Values, label string) ([]match.Match, error) {
	items, err := get[fixtureItem](ctx, c, "/fixtures", query)
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures %s: %w", label, err)
	}
	return mapFixtures(items), nil
}

func leagueWindowQuery(leagueID int64, season int) url.Values {
	query := url.Values{"league": {formatID(leagueID)}}
	if season > 0 {
		query.Set("season", strconv.Itoa(season))
	}
	return query
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
