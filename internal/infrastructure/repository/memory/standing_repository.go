package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/standing"
)

type standingKey struct {
	leagueID int64
	season   int
	teamID   int64
}

type StandingRepository struct {
	mu    sync.RWMutex
	items map[standingKey]standing.Standing
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{items: make(map[standingKey]standing.Standing)}
}

func (r *StandingRepository) ListByLeague(_ context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]standing.Standing, 0)
	for key, item := range r.items {
		if key.leagueID == leagueID && key.season == season {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Group != out[j].Group {
			return out[i].Group < out[j].Group
		}
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out, nil
}

func (r *StandingRepository) Upsert(_ context.Context, items []standing.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.items[standingKey{leagueID: item.LeagueID, season: item.Season, teamID: item.TeamID}] = item
	}
	return nil
}
