package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/match"
)

type MatchRepository struct {
	mu    sync.RWMutex
	items map[int64]match.Match
	teams *TeamRepository
}

// NewMatchRepository keeps matches keyed by id. When teams is set, team
// names and logos are resolved from it on read.
func NewMatchRepository(matches []match.Match, teams *TeamRepository) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	for _, m := range matches {
		items[m.ID] = m
	}

	return &MatchRepository{items: items, teams: teams}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	m, ok := r.items[matchID]
	r.mu.RUnlock()
	if !ok {
		return match.Match{}, false, nil
	}

	return r.withTeams(ctx, m), true, nil
}

func (r *MatchRepository) List(ctx context.Context, q match.Query) ([]match.Match, error) {
	statuses := make(map[match.Status]struct{}, len(q.Statuses))
	for _, s := range q.Statuses {
		statuses[s] = struct{}{}
	}

	r.mu.RLock()
	out := make([]match.Match, 0)
	for _, m := range r.items {
		if q.LeagueID > 0 && m.LeagueID != q.LeagueID {
			continue
		}
		if q.Season > 0 && m.Season != q.Season {
			continue
		}
		if q.TeamID > 0 && !m.Involves(q.TeamID) {
			continue
		}
		if len(statuses) > 0 {
			if _, ok := statuses[m.Status]; !ok {
				continue
			}
		}
		if !q.From.IsZero() && m.KickoffAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !m.KickoffAt.Before(q.To) {
			continue
		}
		out = append(out, m)
	}
	r.mu.RUnlock()

	sortMatches(out, q.Descending)
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	for i := range out {
		out[i] = r.withTeams(ctx, out[i])
	}

	return out, nil
}

func (r *MatchRepository) ListBetweenTeams(ctx context.Context, teamA, teamB int64, limit int) ([]match.Match, error) {
	r.mu.RLock()
	out := make([]match.Match, 0)
	for _, m := range r.items {
		if m.Status == match.StatusFinished && m.Involves(teamA) && m.Involves(teamB) {
			out = append(out, m)
		}
	}
	r.mu.RUnlock()

	sortMatches(out, true)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i] = r.withTeams(ctx, out[i])
	}

	return out, nil
}

// Upsert stores matches by id. A stored match never moves back to an
// earlier status.
func (r *MatchRepository) Upsert(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		if existing, ok := r.items[item.ID]; ok {
			item = match.Merge(existing, item)
		}
		r.items[item.ID] = item
	}
	return nil
}

func (r *MatchRepository) withTeams(ctx context.Context, m match.Match) match.Match {
	if r.teams == nil {
		return m
	}
	m.Home = r.resolveRef(ctx, m.Home)
	m.Away = r.resolveRef(ctx, m.Away)
	return m
}

func (r *MatchRepository) resolveRef(ctx context.Context, ref match.TeamRef) match.TeamRef {
	t, ok, _ := r.teams.GetByID(ctx, ref.ID)
	if !ok {
		return ref
	}
	if t.Name != "" {
		ref.Name = t.Name
	}
	if t.Logo != "" {
		ref.Logo = t.Logo
	}
	return ref
}

func sortMatches(items []match.Match, descending bool) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.KickoffAt.Equal(b.KickoffAt) {
			if descending {
				return a.KickoffAt.After(b.KickoffAt)
			}
			return a.KickoffAt.Before(b.KickoffAt)
		}
		if descending {
			return a.ID > b.ID
		}
		return a.ID < b.ID
	})
}
