package team

import (
	"fmt"
	"strings"
)

// Team is a club with its home venue.
type Team struct {
	ID            int64
	Name          string
	Code          string
	Country       string
	Founded       int
	Logo          string
	LeagueID      int64
	Season        int
	VenueName     string
	VenueCity     string
	VenueCapacity int
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
