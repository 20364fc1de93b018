package match

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusLive      Status = "live"
	StatusFinished  Status = "finished"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinished:
		return true
	default:
		return false
	}
}

// Rank orders statuses along the only permitted direction of travel.
func (s Status) Rank() int {
	switch s {
	case StatusLive:
		return 1
	case StatusFinished:
		return 2
	default:
		return 0
	}
}

// MergeStatus returns the status a stored match moves to when incoming is
// observed. A match never moves backwards.
func MergeStatus(current, incoming Status) Status {
	if !incoming.Valid() {
		return current
	}
	if current.Valid() && current.Rank() > incoming.Rank() {
		return current
	}
	return incoming
}

// TeamRef is the denormalized team reference carried on a match.
type TeamRef struct {
	ID   int64
	Name string
	Logo string
}

type Match struct {
	ID         int64
	LeagueID   int64
	Season     int
	Round      string
	Matchday   int
	Home       TeamRef
	Away       TeamRef
	KickoffAt  time.Time
	Status     Status
	StatusCode string
	Elapsed    int
	HomeScore  *int
	AwayScore  *int
	Venue      string
	VenueCity  string
	Referee    string
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if m.LeagueID <= 0 {
		return fmt.Errorf("match %d has no league", m.ID)
	}
	if m.Home.ID <= 0 || m.Away.ID <= 0 {
		return fmt.Errorf("match %d must reference two teams", m.ID)
	}
	if m.Home.ID == m.Away.ID {
		return fmt.Errorf("match %d references team %d on both sides", m.ID, m.Home.ID)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("match %d has invalid status %q", m.ID, m.Status)
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("match %d has no kickoff time", m.ID)
	}

	return nil
}

func (m Match) Involves(teamID int64) bool {
	return m.Home.ID == teamID || m.Away.ID == teamID
}

// Merge applies incoming on top of existing. When incoming would move the
// status backwards the stored live state (status, clock, score) is kept.
func Merge(existing, incoming Match) Match {
	merged := incoming
	if MergeStatus(existing.Status, incoming.Status) != existing.Status || existing.Status == incoming.Status {
		return merged
	}

	merged.Status = existing.Status
	merged.StatusCode = existing.StatusCode
	merged.Elapsed = existing.Elapsed
	merged.HomeScore = existing.HomeScore
	merged.AwayScore = existing.AwayScore
	return merged
}
