package httpapi

import (
	"time"

	"github.com/riskibarqy/football-data/internal/domain/headtohead"
	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/syncrun"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	"github.com/riskibarqy/football-data/internal/usecase"
)

type leagueDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Type            string `json:"type"`
	Country         string `json:"country"`
	CountryCode     string `json:"countryCode,omitempty"`
	Logo            string `json:"logo,omitempty"`
	Flag            string `json:"flag,omitempty"`
	Season          int    `json:"season"`
	CurrentMatchday int    `json:"currentMatchday,omitempty"`
	TotalMatchdays  int    `json:"totalMatchdays,omitempty"`
}

type teamRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type matchDTO struct {
	ID         int64      `json:"id"`
	LeagueID   int64      `json:"leagueId"`
	Season     int        `json:"season"`
	Round      string     `json:"round,omitempty"`
	Matchday   int        `json:"matchday,omitempty"`
	HomeTeam   teamRefDTO `json:"homeTeam"`
	AwayTeam   teamRefDTO `json:"awayTeam"`
	KickoffAt  string     `json:"kickoffAt"`
	Status     string     `json:"status"`
	StatusCode string     `json:"statusCode,omitempty"`
	Elapsed    int        `json:"elapsed,omitempty"`
	HomeScore  *int       `json:"homeScore"`
	AwayScore  *int       `json:"awayScore"`
	Venue      string     `json:"venue,omitempty"`
	VenueCity  string     `json:"venueCity,omitempty"`
	Referee    string     `json:"referee,omitempty"`
}

type standingDTO struct {
	Group          string     `json:"group,omitempty"`
	Rank           int        `json:"rank"`
	Team           teamRefDTO `json:"team"`
	Played         int        `json:"played"`
	Won            int        `json:"won"`
	Drawn          int        `json:"drawn"`
	Lost           int        `json:"lost"`
	GoalsFor       int        `json:"goalsFor"`
	GoalsAgainst   int        `json:"goalsAgainst"`
	GoalDifference int        `json:"goalDifference"`
	Points         int        `json:"points"`
	Form           string     `json:"form,omitempty"`
	Description    string     `json:"description,omitempty"`
}

type teamDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code,omitempty"`
	Country       string `json:"country,omitempty"`
	Founded       int    `json:"founded,omitempty"`
	Logo          string `json:"logo,omitempty"`
	LeagueID      int64  `json:"leagueId,omitempty"`
	Season        int    `json:"season,omitempty"`
	VenueName     string `json:"venueName,omitempty"`
	VenueCity     string `json:"venueCity,omitempty"`
	VenueCapacity int    `json:"venueCapacity,omitempty"`
}

type topScorerDTO struct {
	Rank        int        `json:"rank"`
	PlayerID    int64      `json:"playerId"`
	PlayerName  string     `json:"playerName"`
	PlayerPhoto string     `json:"playerPhoto,omitempty"`
	Nationality string     `json:"nationality,omitempty"`
	Team        teamRefDTO `json:"team"`
	Goals       int        `json:"goals"`
	Assists     int        `json:"assists"`
	Appearances int        `json:"appearances"`
}

type headToHeadDTO struct {
	Team1ID    int64      `json:"team1Id"`
	Team2ID    int64      `json:"team2Id"`
	Played     int        `json:"played"`
	Team1Wins  int        `json:"team1Wins"`
	Team2Wins  int        `json:"team2Wins"`
	Draws      int        `json:"draws"`
	Team1Goals int        `json:"team1Goals"`
	Team2Goals int        `json:"team2Goals"`
	Matches    []matchDTO `json:"matches"`
}

type leagueOverviewDTO struct {
	League     leagueDTO      `json:"league"`
	Season     int            `json:"season"`
	Standings  []standingDTO  `json:"standings"`
	Matches    []matchDTO     `json:"matches"`
	TopScorers []topScorerDTO `json:"topScorers"`
}

type syncRunDTO struct {
	ID         string `json:"id"`
	Operation  string `json:"operation"`
	Trigger    string `json:"trigger"`
	Status     string `json:"status"`
	Success    int    `json:"success"`
	Failed     int    `json:"failed"`
	Records    int    `json:"records"`
	Error      string `json:"error,omitempty"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
}

type syncStatusDTO struct {
	Scheduler  usecase.SyncSchedulerStatus `json:"scheduler"`
	LeagueIDs  []int64                     `json:"league_ids"`
	RecentRuns []syncRunDTO                `json:"recent_runs"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:              v.ID,
		Name:            v.Name,
		Type:            v.Type,
		Country:         v.Country,
		CountryCode:     v.CountryCode,
		Logo:            v.Logo,
		Flag:            v.Flag,
		Season:          v.Season,
		CurrentMatchday: v.CurrentMatchday,
		TotalMatchdays:  v.TotalMatchdays,
	}
}

func leaguesToDTO(items []league.League) []leagueDTO {
	out := make([]leagueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leagueToDTO(item))
	}
	return out
}

func matchToDTO(v match.Match) matchDTO {
	return matchDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		Season:     v.Season,
		Round:      v.Round,
		Matchday:   v.Matchday,
		HomeTeam:   teamRefDTO{ID: v.Home.ID, Name: v.Home.Name, Logo: v.Home.Logo},
		AwayTeam:   teamRefDTO{ID: v.Away.ID, Name: v.Away.Name, Logo: v.Away.Logo},
		KickoffAt:  formatTime(v.KickoffAt),
		Status:     string(v.Status),
		StatusCode: v.StatusCode,
		Elapsed:    v.Elapsed,
		HomeScore:  v.HomeScore,
		AwayScore:  v.AwayScore,
		Venue:      v.Venue,
		VenueCity:  v.VenueCity,
		Referee:    v.Referee,
	}
}

func matchesToDTO(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func standingsToDTO(items []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, v := range items {
		out = append(out, standingDTO{
			Group:          v.Group,
			Rank:           v.Rank,
			Team:           teamRefDTO{ID: v.TeamID, Name: v.TeamName, Logo: v.TeamLogo},
			Played:         v.Played,
			Won:            v.Won,
			Drawn:          v.Drawn,
			Lost:           v.Lost,
			GoalsFor:       v.GoalsFor,
			GoalsAgainst:   v.GoalsAgainst,
			GoalDifference: v.GoalDifference,
			Points:         v.Points,
			Form:           v.Form,
			Description:    v.Description,
		})
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		Name:          v.Name,
		Code:          v.Code,
		Country:       v.Country,
		Founded:       v.Founded,
		Logo:          v.Logo,
		LeagueID:      v.LeagueID,
		Season:        v.Season,
		VenueName:     v.VenueName,
		VenueCity:     v.VenueCity,
		VenueCapacity: v.VenueCapacity,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func topScorersToDTO(items []topscorer.TopScorer) []topScorerDTO {
	out := make([]topScorerDTO, 0, len(items))
	for _, v := range items {
		out = append(out, topScorerDTO{
			Rank:        v.Rank,
			PlayerID:    v.PlayerID,
			PlayerName:  v.PlayerName,
			PlayerPhoto: v.PlayerPhoto,
			Nationality: v.Nationality,
			Team:        teamRefDTO{ID: v.TeamID, Name: v.TeamName, Logo: v.TeamLogo},
			Goals:       v.Goals,
			Assists:     v.Assists,
			Appearances: v.Appearances,
		})
	}
	return out
}

func headToHeadToDTO(v headtohead.HeadToHead) headToHeadDTO {
	return headToHeadDTO{
		Team1ID:    v.TeamAID,
		Team2ID:    v.TeamBID,
		Played:     v.Played,
		Team1Wins:  v.TeamAWins,
		Team2Wins:  v.TeamBWins,
		Draws:      v.Draws,
		Team1Goals: v.TeamAGoals,
		Team2Goals: v.TeamBGoals,
		Matches:    matchesToDTO(v.Matches),
	}
}

func leagueOverviewToDTO(v usecase.LeagueOverview) leagueOverviewDTO {
	return leagueOverviewDTO{
		League:     leagueToDTO(v.League),
		Season:     v.Season,
		Standings:  standingsToDTO(v.Standings),
		Matches:    matchesToDTO(v.Matches),
		TopScorers: topScorersToDTO(v.TopScorers),
	}
}

func syncRunToDTO(v syncrun.Run) syncRunDTO {
	return syncRunDTO{
		ID:         v.ID,
		Operation:  v.Operation,
		Trigger:    string(v.Trigger),
		Status:     string(v.Status),
		Success:    v.Success,
		Failed:     v.Failed,
		Records:    v.Records,
		Error:      v.Error,
		StartedAt:  formatTime(v.StartedAt),
		FinishedAt: formatTime(v.FinishedAt),
	}
}

func syncRunsToDTO(items []syncrun.Run) []syncRunDTO {
	out := make([]syncRunDTO, 0, len(items))
	for _, item := range items {
		out = append(out, syncRunToDTO(item))
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
