package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/football-data/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	items map[int64]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make(map[int64]team.Team, len(teams))
	for _, t := range teams {
		items[t.ID] = t
	}

	return &TeamRepository{items: items}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[teamID]
	return t, ok, nil
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, item)
		}
	}
	sortTeams(out)

	return out, nil
}

func (r *TeamRepository) Search(_ context.Context, query string, limit int) ([]team.Team, error) {
	needle := strings.ToLower(strings.TrimSpace(query))

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0)
	for _, item := range r.items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	sortTeams(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// Upsert merges incoming teams into stored ones: empty fields never erase
// known values and the first league a team was seen in is kept.
func (r *TeamRepository) Upsert(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		existing, ok := r.items[item.ID]
		if !ok {
			r.items[item.ID] = item
			continue
		}
		r.items[item.ID] = mergeTeam(existing, item)
	}
	return nil
}

func mergeTeam(existing, incoming team.Team) team.Team {
	out := existing
	if incoming.Name != "" {
		out.Name = incoming.Name
	}
	if incoming.Code != "" {
		out.Code = incoming.Code
	}
	if incoming.Country != "" {
		out.Country = incoming.Country
	}
	if incoming.Founded > 0 {
		out.Founded = incoming.Founded
	}
	if incoming.Logo != "" {
		out.Logo = incoming.Logo
	}
	if out.LeagueID == 0 {
		out.LeagueID = incoming.LeagueID
	}
	if incoming.Season > out.Season {
		out.Season = incoming.Season
	}
	if incoming.VenueName != "" {
		out.VenueName = incoming.VenueName
	}
	if incoming.VenueCity != "" {
		out.VenueCity = incoming.VenueCity
	}
	if incoming.VenueCapacity > 0 {
		out.VenueCapacity = incoming.VenueCapacity
	}
	return out
}

func sortTeams(items []team.Team) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
