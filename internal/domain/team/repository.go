package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	ListByLeague(ctx context.Context, leagueID int64) ([]Team, error)
	Search(ctx context.Context, query string, limit int) ([]Team, error)
	Upsert(ctx context.Context, items []Team) error
}
