package standing

import "fmt"

// Standing is one team's row in a league table for a season.
type Standing struct {
	LeagueID       int64
	Season         int
	Group          string
	Rank           int
	TeamID         int64
	TeamName       string
	TeamLogo       string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
	Description    string
}

func (s Standing) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("standing league id must be greater than zero")
	}
	if s.Season <= 0 {
		return fmt.Errorf("standing season is required")
	}
	if s.TeamID <= 0 {
		return fmt.Errorf("standing team id must be greater than zero")
	}
	if s.Rank < 0 || s.Played < 0 || s.Won < 0 || s.Drawn < 0 || s.Lost < 0 {
		return fmt.Errorf("team %d has negative table counters", s.TeamID)
	}

	return nil
}
