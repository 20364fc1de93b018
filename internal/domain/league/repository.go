package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID int64) (League, bool, error)
	ListByCountry(ctx context.Context, country string) ([]League, error)
	Upsert(ctx context.Context, item League) error
}
