package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/football-data/internal/platform/cache"
)

type countingLeagueRepo struct {
	*memory.LeagueRepository
	gets int
}

func (r *countingLeagueRepo) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	r.gets++
	return r.LeagueRepository.GetByID(ctx, leagueID)
}

func TestLeagueRepository_CachesAndInvalidatesOnUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingLeagueRepo{LeagueRepository: memory.NewLeagueRepository(memory.SeedLeagues())}
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		if _, ok, err := repo.GetByID(ctx, 39); err != nil || !ok {
			t.Fatalf("GetByID = %v, %v", ok, err)
		}
	}
	if next.gets != 1 {
		t.Fatalf("expected one underlying read, got %d", next.gets)
	}

	if err := repo.Upsert(ctx, league.League{ID: 39, Name: "Premier League", Season: 2026}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	item, _, err := repo.GetByID(ctx, 39)
	if err != nil {
		t.Fatalf("GetByID after upsert: %v", err)
	}
	if item.Season != 2026 || next.gets != 2 {
		t.Fatalf("expected fresh read after upsert, season=%d gets=%d", item.Season, next.gets)
	}
}

func TestLeagueRepository_CachesMissingLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingLeagueRepo{LeagueRepository: memory.NewLeagueRepository(nil)}
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 2; i++ {
		if _, ok, err := repo.GetByID(ctx, 1); err != nil || ok {
			t.Fatalf("GetByID = %v, %v; want miss", ok, err)
		}
	}
	if next.gets != 1 {
		t.Fatalf("expected cached miss, got %d reads", next.gets)
	}
}

func TestStandingRepository_UpsertDropsOnlyAffectedTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	repo := NewStandingRepository(memory.NewStandingRepository(), store)

	_ = repo.Upsert(ctx, []standing.Standing{{LeagueID: 39, Season: 2025, TeamID: 40, Rank: 1}})
	_ = repo.Upsert(ctx, []standing.Standing{{LeagueID: 140, Season: 2025, TeamID: 529, Rank: 1}})
	if _, err := repo.ListByLeague(ctx, 39, 2025); err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}
	if _, err := repo.ListByLeague(ctx, 140, 2025); err != nil {
		t.Fatalf("ListByLeague error: %v", err)
	}

	_ = repo.Upsert(ctx, []standing.Standing{{LeagueID: 39, Season: 2025, TeamID: 42, Rank: 2}})

	if _, ok := store.Get(ctx, standingKey(39, 2025)); ok {
		t.Fatalf("expected premier league table evicted")
	}
	if _, ok := store.Get(ctx, standingKey(140, 2025)); !ok {
		t.Fatalf("expected la liga table kept")
	}

	rows, _ := repo.ListByLeague(ctx, 39, 2025)
	if len(rows) != 2 {
		t.Fatalf("expected refreshed table with two rows, got %d", len(rows))
	}
}
