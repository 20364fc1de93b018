package league

import (
	"fmt"
	"strings"
)

// League is a competition as published by the football-data provider.
type League struct {
	ID              int64
	Name            string
	Type            string
	Country         string
	CountryCode     string
	Logo            string
	Flag            string
	Season          int
	CurrentMatchday int
	TotalMatchdays  int
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season <= 0 {
		return fmt.Errorf("league season is required")
	}
	if l.CurrentMatchday < 0 || l.TotalMatchdays < 0 {
		return fmt.Errorf("league matchday counters cannot be negative")
	}
	if l.TotalMatchdays > 0 && l.CurrentMatchday > l.TotalMatchdays {
		return fmt.Errorf("current matchday %d exceeds total %d", l.CurrentMatchday, l.TotalMatchdays)
	}

	return nil
}
