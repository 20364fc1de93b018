package topscorer

import "fmt"

type TopScorer struct {
	LeagueID    int64
	Season      int
	Rank        int
	PlayerID    int64
	PlayerName  string
	PlayerPhoto string
	Nationality string
	TeamID      int64
	TeamName    string
	TeamLogo    string
	Goals       int
	Assists     int
	Appearances int
}

func (s TopScorer) Validate() error {
	if s.LeagueID <= 0 || s.Season <= 0 {
		return fmt.Errorf("top scorer requires league and season")
	}
	if s.PlayerID <= 0 {
		return fmt.Errorf("top scorer player id must be greater than zero")
	}
	if s.Goals < 0 || s.Assists < 0 {
		return fmt.Errorf("player %d has negative totals", s.PlayerID)
	}

	return nil
}
