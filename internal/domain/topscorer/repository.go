package topscorer

import "context"

// Repository persists the scorer chart of a league season. Replace swaps the
// whole chart so players that dropped out of it do not linger.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64, season int) ([]TopScorer, error)
	Replace(ctx context.Context, leagueID int64, season int, items []TopScorer) error
}
