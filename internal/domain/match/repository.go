package match

import (
	"context"
	"time"
)

// Query filters match listings. Zero values mean "no filter".
type Query struct {
	LeagueID   int64
	Season     int
	TeamID     int64
	Statuses   []Status
	From       time.Time
	To         time.Time
	Limit      int
	Descending bool
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	List(ctx context.Context, query Query) ([]Match, error)
	// ListBetweenTeams returns the latest finished meetings of two teams,
	// newest first.
	ListBetweenTeams(ctx context.Context, teamA, teamB int64, limit int) ([]Match, error)
	Upsert(ctx context.Context, items []Match) error
}
