package memory

import (
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/team"
)

const (
	LeagueIDPremierLeague int64 = 39
	LeagueIDLaLiga        int64 = 140

	seedSeason = 2025
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:             LeagueIDPremierLeague,
			Name:           "Premier League",
			Type:           "League",
			Country:        "England",
			CountryCode:    "GB",
			Season:         seedSeason,
			TotalMatchdays: 38,
		},
		{
			ID:             LeagueIDLaLiga,
			Name:           "La Liga",
			Type:           "League",
			Country:        "Spain",
			CountryCode:    "ES",
			Season:         seedSeason,
			TotalMatchdays: 38,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 33, Name: "Manchester United", Code: "MUN", Country: "England", LeagueID: LeagueIDPremierLeague, Season: seedSeason, VenueName: "Old Trafford", VenueCity: "Manchester"},
		{ID: 40, Name: "Liverpool", Code: "LIV", Country: "England", LeagueID: LeagueIDPremierLeague, Season: seedSeason, VenueName: "Anfield", VenueCity: "Liverpool"},
		{ID: 42, Name: "Arsenal", Code: "ARS", Country: "England", LeagueID: LeagueIDPremierLeague, Season: seedSeason, VenueName: "Emirates Stadium", VenueCity: "London"},
		{ID: 50, Name: "Manchester City", Code: "MAC", Country: "England", LeagueID: LeagueIDPremierLeague, Season: seedSeason, VenueName: "Etihad Stadium", VenueCity: "Manchester"},
		{ID: 529, Name: "Barcelona", Code: "BAR", Country: "Spain", LeagueID: LeagueIDLaLiga, Season: seedSeason, VenueName: "Estadi Olimpic Lluis Companys", VenueCity: "Barcelona"},
		{ID: 541, Name: "Real Madrid", Code: "REA", Country: "Spain", LeagueID: LeagueIDLaLiga, Season: seedSeason, VenueName: "Estadio Santiago Bernabeu", VenueCity: "Madrid"},
	}
}

// SeedMatches returns a few fixtures around now so the featured, live and
// head-to-head views have data without a provider.
func SeedMatches(now time.Time) []match.Match {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	score := func(n int) *int { return &n }

	return []match.Match{
		{
			ID: 900001, LeagueID: LeagueIDPremierLeague, Season: seedSeason, Round: "Regular Season - 27", Matchday: 27,
			Home: match.TeamRef{ID: 40}, Away: match.TeamRef{ID: 33},
			KickoffAt: day.AddDate(0, 0, -14).Add(16 * time.Hour), Status: match.StatusFinished, StatusCode: "FT",
			HomeScore: score(2), AwayScore: score(1),
		},
		{
			ID: 900002, LeagueID: LeagueIDPremierLeague, Season: seedSeason, Round: "Regular Season - 29", Matchday: 29,
			Home: match.TeamRef{ID: 42}, Away: match.TeamRef{ID: 50},
			KickoffAt: now.Add(-40 * time.Minute), Status: match.StatusLive, StatusCode: "1H", Elapsed: 38,
			HomeScore: score(0), AwayScore: score(0),
		},
		{
			ID: 900003, LeagueID: LeagueIDPremierLeague, Season: seedSeason, Round: "Regular Season - 30", Matchday: 30,
			Home: match.TeamRef{ID: 33}, Away: match.TeamRef{ID: 40},
			KickoffAt: day.AddDate(0, 0, 7).Add(15 * time.Hour), Status: match.StatusScheduled, StatusCode: "NS",
		},
		{
			ID: 900004, LeagueID: LeagueIDLaLiga, Season: seedSeason, Round: "Regular Season - 28", Matchday: 28,
			Home: match.TeamRef{ID: 541}, Away: match.TeamRef{ID: 529},
			KickoffAt: day.AddDate(0, 0, 3).Add(20 * time.Hour), Status: match.StatusScheduled, StatusCode: "NS",
		},
	}
}
