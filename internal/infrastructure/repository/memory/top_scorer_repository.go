package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/topscorer"
)

type chartKey struct {
	leagueID int64
	season   int
}

type TopScorerRepository struct {
	mu     sync.RWMutex
	charts map[chartKey][]topscorer.TopScorer
}

func NewTopScorerRepository() *TopScorerRepository {
	return &TopScorerRepository{charts: make(map[chartKey][]topscorer.TopScorer)}
}

func (r *TopScorerRepository) ListByLeague(_ context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]topscorer.TopScorer(nil), r.charts[chartKey{leagueID: leagueID, season: season}]...), nil
}

func (r *TopScorerRepository) Replace(_ context.Context, leagueID int64, season int, items []topscorer.TopScorer) error {
	chart := make([]topscorer.TopScorer, 0, len(items))
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.PlayerID]; dup {
			continue
		}
		seen[item.PlayerID] = struct{}{}
		item.LeagueID, item.Season = leagueID, season
		chart = append(chart, item)
	}

	r.mu.Lock()
	r.charts[chartKey{leagueID: leagueID, season: season}] = chart
	r.mu.Unlock()
	return nil
}
