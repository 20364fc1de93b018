package standing

import "context"

// Repository describes league table persistence. Rows are keyed by
// league, season and team.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64, season int) ([]Standing, error)
	Upsert(ctx context.Context, items []Standing) error
}
