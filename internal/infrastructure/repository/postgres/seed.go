package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the built-in leagues and teams into an empty store so a
// fresh database serves reads before the first sync.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	leagues := NewLeagueRepository(db)
	for _, item := range memory.SeedLeagues() {
		if err := leagues.Upsert(ctx, item); err != nil {
			return fmt.Errorf("seed league id=%d: %w", item.ID, err)
		}
	}
	if err := NewTeamRepository(db).Upsert(ctx, memory.SeedTeams()); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}

	return nil
}
