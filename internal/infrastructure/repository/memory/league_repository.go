package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items map[int64]league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	items := make(map[int64]league.League, len(leagues))
	for _, l := range leagues {
		items[l.ID] = l
	}

	return &LeagueRepository{items: items}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sortLeagues(out)

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) ListByCountry(_ context.Context, country string) ([]league.League, error) {
	country = strings.TrimSpace(country)

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0)
	for _, item := range r.items {
		if strings.EqualFold(item.Country, country) || strings.EqualFold(item.CountryCode, country) {
			out = append(out, item)
		}
	}
	sortLeagues(out)

	return out, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.items[item.ID]; ok {
		if item.CurrentMatchday == 0 {
			item.CurrentMatchday = existing.CurrentMatchday
		}
		if item.TotalMatchdays == 0 {
			item.TotalMatchdays = existing.TotalMatchdays
		}
	}
	r.items[item.ID] = item
	return nil
}

func sortLeagues(items []league.League) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
