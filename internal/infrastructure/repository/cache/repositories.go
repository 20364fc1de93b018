package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	basecache "github.com/riskibarqy/football-data/internal/platform/cache"
)

const (
	leaguePrefix    = "league:"
	teamPrefix      = "team:"
	standingPrefix  = "standing:"
	topScorerPrefix = "topscorer:"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, leaguePrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, bool, error) {
	key := leaguePrefix + "id:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) ListByCountry(ctx context.Context, country string) ([]league.League, error) {
	key := leaguePrefix + "country:" + strings.ToLower(strings.TrimSpace(country))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCountry(ctx, country)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, leaguePrefix)
	return nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	key := teamPrefix + "id:" + strconv.FormatInt(teamID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID int64) ([]team.Team, error) {
	key := teamPrefix + "league:" + strconv.FormatInt(leagueID, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

// Search is not cached; queries are too varied to hit.
func (r *TeamRepository) Search(ctx context.Context, query string, limit int) ([]team.Team, error) {
	return r.next.Search(ctx, query, limit)
}

func (r *TeamRepository) Upsert(ctx context.Context, items []team.Team) error {
	if err := r.next.Upsert(ctx, items); err != nil {
		return err
	}
	if len(items) > 0 {
		r.cache.DeletePrefix(ctx, teamPrefix)
	}
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type StandingRepository struct {
	next  standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{next: next, cache: cache}
}

func (r *StandingRepository) ListByLeague(ctx context.Context, leagueID int64, season int) ([]standing.Standing, error) {
	key := standingKey(leagueID, season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID, season)
		if err != nil {
			return nil, err
		}
		return append([]standing.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standing.Standing)
	return append([]standing.Standing(nil), items...), nil
}

func (r *StandingRepository) Upsert(ctx context.Context, items []standing.Standing) error {
	if err := r.next.Upsert(ctx, items); err != nil {
		return err
	}

	keys := make([]string, 0, 1)
	seen := make(map[string]struct{})
	for _, item := range items {
		key := standingKey(item.LeagueID, item.Season)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	r.cache.Delete(ctx, keys...)
	return nil
}

func standingKey(leagueID int64, season int) string {
	return standingPrefix + strconv.FormatInt(leagueID, 10) + ":" + strconv.Itoa(season)
}

type TopScorerRepository struct {
	next  topscorer.Repository
	cache *basecache.Store
}

func NewTopScorerRepository(next topscorer.Repository, cache *basecache.Store) *TopScorerRepository {
	return &TopScorerRepository{next: next, cache: cache}
}

func (r *TopScorerRepository) ListByLeague(ctx context.Context, leagueID int64, season int) ([]topscorer.TopScorer, error) {
	key := topScorerKey(leagueID, season)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID, season)
		if err != nil {
			return nil, err
		}
		return append([]topscorer.TopScorer(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]topscorer.TopScorer)
	return append([]topscorer.TopScorer(nil), items...), nil
}

func (r *TopScorerRepository) Replace(ctx context.Context, leagueID int64, season int, items []topscorer.TopScorer) error {
	if err := r.next.Replace(ctx, leagueID, season, items); err != nil {
		return err
	}
	r.cache.Delete(ctx, topScorerKey(leagueID, season))
	return nil
}

func topScorerKey(leagueID int64, season int) string {
	return topScorerPrefix + strconv.FormatInt(leagueID, 10) + ":" + strconv.Itoa(season)
}
