package apifootball

import (
	"regexp"
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

var digitsRegex = regexp.MustCompile(`\d+`)

// mapStatus folds the provider's short status codes into the three states
// the store knows about.
func mapStatus(short string) match.Status {
	switch strings.ToUpper(strings.TrimSpace(short)) {
	case "1H", "HT", "2H", "ET", "BT", "P", "SUSP", "INT", "LIVE":
		return match.StatusLive
	case "FT", "AET", "PEN", "AWD", "WO":
		return match.StatusFinished
	default:
		return match.StatusScheduled
	}
}

func mapLeague(item leagueItem, season int) league.League {
	out := league.League{
		ID:          item.League.ID,
		Name:        strings.TrimSpace(item.League.Name),
		Type:        strings.TrimSpace(item.League.Type),
		Country:     strings.TrimSpace(item.Country.Name),
		CountryCode: deref(item.Country.Code),
		Logo:        item.League.Logo,
		Flag:        deref(item.Country.Flag),
		Season:      pickSeason(item.Seasons, season),
	}
	return out
}

// pickSeason prefers the requested year, then the season flagged current,
// then the latest one listed.
func pickSeason(seasons []leagueSeason, requested int) int {
	if requested > 0 {
		return requested
	}
	latest := 0
	for _, s := range seasons {
		if s.Current {
			return s.Year
		}
		if s.Year > latest {
			latest = s.Year
		}
	}
	return latest
}

// mapRounds derives matchday counters from the round list. The current
// round is the first whose last fixture date is today or later.
func mapRounds(items []roundItem, now time.Time) usecase.LeagueRounds {
	out := usecase.LeagueRounds{Total: len(items)}
	if len(items) == 0 {
		return out
	}

	today := now.UTC().Format(time.DateOnly)
	for i, item := range items {
		last := ""
		for _, d := range item.Dates {
			if d > last {
				last = d
			}
		}
		if last != "" && last >= today {
			out.Current = i + 1
			return out
		}
	}
	out.Current = len(items)
	return out
}

func mapStandings(items []standingsItem, leagueID int64, season int) []standing.Standing {
	out := make([]standing.Standing, 0, 20)
	for _, item := range items {
		lid := item.League.ID
		if lid <= 0 {
			lid = leagueID
		}
		s := item.League.Season
		if s <= 0 {
			s = season
		}
		for _, group := range item.League.Standings {
			for _, row := range group {
				out = append(out, standing.Standing{
					LeagueID:       lid,
					Season:         s,
					Group:          strings.TrimSpace(row.Group),
					Rank:           row.Rank,
					TeamID:         row.Team.ID,
					TeamName:       strings.TrimSpace(row.Team.Name),
					TeamLogo:       row.Team.Logo,
					Played:         row.All.Played,
					Won:            row.All.Win,
					Drawn:          row.All.Draw,
					Lost:           row.All.Lose,
					GoalsFor:       row.All.Goals.For,
					GoalsAgainst:   row.All.Goals.Against,
					GoalDifference: row.GoalsDiff,
					Points:         row.Points,
					Form:           deref(row.Form),
					Description:    deref(row.Description),
				})
			}
		}
	}
	return out
}

func mapFixture(item fixtureItem) match.Match {
	short := strings.ToUpper(strings.TrimSpace(item.Fixture.Status.Short))
	out := match.Match{
		ID:         item.Fixture.ID,
		LeagueID:   item.League.ID,
		Season:     item.League.Season,
		Round:      strings.TrimSpace(item.League.Round),
		Matchday:   parseMatchday(item.League.Round),
		Home:       mapTeamRef(item.Teams.Home),
		Away:       mapTeamRef(item.Teams.Away),
		KickoffAt:  parseKickoff(item.Fixture.Date, item.Fixture.Timestamp),
		Status:     mapStatus(short),
		StatusCode: short,
		HomeScore:  item.Goals.Home,
		AwayScore:  item.Goals.Away,
		Venue:      deref(item.Fixture.Venue.Name),
		VenueCity:  deref(item.Fixture.Venue.City),
		Referee:    deref(item.Fixture.Referee),
	}
	if item.Fixture.Status.Elapsed != nil {
		out.Elapsed = *item.Fixture.Status.Elapsed
	}
	return out
}

func mapFixtures(items []fixtureItem) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if item.Fixture.ID <= 0 {
			continue
		}
		out = append(out, mapFixture(item))
	}
	return out
}

func mapTeamRef(t teamBrief) match.TeamRef {
	return match.TeamRef{ID: t.ID, Name: strings.TrimSpace(t.Name), Logo: t.Logo}
}

func mapTeam(item teamItem, leagueID int64, season int) team.Team {
	out := team.Team{
		ID:        item.Team.ID,
		Name:      strings.TrimSpace(item.Team.Name),
		Code:      deref(item.Team.Code),
		Country:   deref(item.Team.Country),
		Logo:      item.Team.Logo,
		LeagueID:  leagueID,
		Season:    season,
		VenueName: deref(item.Venue.Name),
		VenueCity: deref(item.Venue.City),
	}
	if item.Team.Founded != nil {
		out.Founded = *item.Team.Founded
	}
	if item.Venue.Capacity != nil {
		out.VenueCapacity = *item.Venue.Capacity
	}
	return out
}

func mapTeams(items []teamItem, leagueID int64, season int) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			continue
		}
		out = append(out, mapTeam(item, leagueID, season))
	}
	return out
}

// mapTopScorers keeps the provider order as the rank. Statistics of the
// requested league win over any other competition the player appears in.
func mapTopScorers(items []scorerItem, leagueID int64, season int) []topscorer.TopScorer {
	out := make([]topscorer.TopScorer, 0, len(items))
	for i, item := range items {
		if item.Player.ID <= 0 {
			continue
		}
		row := topscorer.TopScorer{
			LeagueID:    leagueID,
			Season:      season,
			Rank:        i + 1,
			PlayerID:    item.Player.ID,
			PlayerName:  strings.TrimSpace(item.Player.Name),
			PlayerPhoto: item.Player.Photo,
			Nationality: deref(item.Player.Nationality),
		}
		if stats, ok := pickScorerStatistics(item.Statistics, leagueID); ok {
			row.TeamID = stats.Team.ID
			row.TeamName = strings.TrimSpace(stats.Team.Name)
			row.TeamLogo = stats.Team.Logo
			row.Goals = derefInt(stats.Goals.Total)
			row.Assists = derefInt(stats.Goals.Assists)
			row.Appearances = derefInt(stats.Games.Appearances)
		}
		out = append(out, row)
	}
	return out
}

func pickScorerStatistics(items []scorerStatistics, leagueID int64) (scorerStatistics, bool) {
	for _, item := range items {
		if item.League.ID == leagueID {
			return item, true
		}
	}
	if len(items) > 0 {
		return items[0], true
	}
	return scorerStatistics{}, false
}

func parseKickoff(raw string, unix int64) time.Time {
	if value := strings.TrimSpace(raw); value != "" {
		if parsed, err := time.Parse(time.RFC3339, value); err == nil {
			return parsed.UTC()
		}
	}
	if unix > 0 {
		return time.Unix(unix, 0).UTC()
	}
	return time.Time{}
}

func parseMatchday(round string) int {
	candidate := digitsRegex.FindString(strings.TrimSpace(round))
	if candidate == "" {
		return 0
	}
	value, err := strconv.Atoi(candidate)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func derefInt(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}
