package football

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/infrastructure/repository/memory"
	usecasemock "github.com/riskibarqy/football-data/internal/mocks/usecase"
	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

type countingLimiter struct {
	waits int
	err   error
}

func (l *countingLimiter) Wait(context.Context) error {
	l.waits++
	return l.err
}

func newSeededStores() Stores {
	teams := memory.NewTeamRepository(memory.SeedTeams())
	return Stores{
		Leagues:    memory.NewLeagueRepository(memory.SeedLeagues()),
		Teams:      teams,
		Matches:    memory.NewMatchRepository(memory.SeedMatches(testNow), teams),
		Standings:  memory.NewStandingRepository(),
		TopScorers: memory.NewTopScorerRepository(),
	}
}

func TestRepository_GetLeague_ServesStoreWithoutProvider(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	limiter := &countingLimiter{}
	repo := NewRepository(newSeededStores(), provider, limiter, Options{ProviderFallback: true}, logging.NewNop())

	item, err := repo.GetLeague(context.Background(), memory.LeagueIDPremierLeague)
	if err != nil {
		t.Fatalf("GetLeague error: %v", err)
	}
	if item.Name != "Premier League" {
		t.Fatalf("unexpected league: %+v", item)
	}
	if limiter.waits != 0 {
		t.Fatalf("store hit must not consume the limiter, waits=%d", limiter.waits)
	}
}

func TestRepository_GetLeague_FallsBackToProvider(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("FetchLeague", mock.Anything, int64(78), 0).
		Return(league.League{ID: 78, Name: "Bundesliga"}, true, nil).Once()
	limiter := &countingLimiter{}
	repo := NewRepository(newSeededStores(), provider, limiter, Options{ProviderFallback: true}, logging.NewNop())

	item, err := repo.GetLeague(context.Background(), 78)
	if err != nil {
		t.Fatalf("GetLeague error: %v", err)
	}
	if item.Name != "Bundesliga" || limiter.waits != 1 {
		t.Fatalf("unexpected league=%+v waits=%d", item, limiter.waits)
	}
}

func TestRepository_GetMatch_NotFound(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("FetchMatch", mock.Anything, int64(1)).Return(match.Match{}, false, nil).Once()
	repo := NewRepository(newSeededStores(), provider, nil, Options{ProviderFallback: true}, logging.NewNop())

	_, err := repo.GetMatch(context.Background(), 1)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_GetTeam_NotFoundWithoutFallback(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	repo := NewRepository(newSeededStores(), provider, nil, Options{}, logging.NewNop())

	_, err := repo.GetTeam(context.Background(), 999)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_GetTeam_PropagatesUpstreamError(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("FetchTeam", mock.Anything, int64(999)).
		Return(team.Team{}, false, fmt.Errorf("%w: status 500", usecase.ErrUpstream)).Once()
	repo := NewRepository(newSeededStores(), provider, nil, Options{ProviderFallback: true}, logging.NewNop())

	_, err := repo.GetTeam(context.Background(), 999)
	if !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestRepository_SearchTeams_FallsBackOnlyWhenStoreIsEmpty(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	provider.On("SearchTeams", mock.Anything, "juventus").
		Return([]team.Team{{ID: 496, Name: "Juventus"}}, nil).Once()
	repo := NewRepository(newSeededStores(), provider, nil, Options{ProviderFallback: true}, logging.NewNop())

	stored, err := repo.SearchTeams(context.Background(), "manchester")
	if err != nil {
		t.Fatalf("SearchTeams error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 stored teams, got %d", len(stored))
	}

	remote, err := repo.SearchTeams(context.Background(), "juventus")
	if err != nil {
		t.Fatalf("SearchTeams error: %v", err)
	}
	if len(remote) != 1 || remote[0].ID != 496 {
		t.Fatalf("unexpected provider teams: %+v", remote)
	}
}

func TestRepository_ListLiveMatches_NeverCallsProvider(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	repo := NewRepository(Stores{
		Leagues:    memory.NewLeagueRepository(nil),
		Teams:      memory.NewTeamRepository(nil),
		Matches:    memory.NewMatchRepository(nil, nil),
		Standings:  memory.NewStandingRepository(),
		TopScorers: memory.NewTopScorerRepository(),
	}, provider, nil, Options{ProviderFallback: true}, logging.NewNop())

	items, err := repo.ListLiveMatches(context.Background())
	if err != nil {
		t.Fatalf("ListLiveMatches error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no live matches, got %d", len(items))
	}
}

func TestRepository_ListMatchesByDate_UsesUTCDay(t *testing.T) {
	t.Parallel()

	repo := NewRepository(newSeededStores(), nil, nil, Options{}, logging.NewNop())

	items, err := repo.ListMatchesByDate(context.Background(), testNow)
	if err != nil {
		t.Fatalf("ListMatchesByDate error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 900002 {
		t.Fatalf("expected only the live seed match, got %+v", items)
	}
}

func TestRepository_ListTeamMatches_Direction(t *testing.T) {
	t.Parallel()

	repo := NewRepository(newSeededStores(), nil, nil, Options{}, logging.NewNop())

	recent, err := repo.ListTeamMatches(context.Background(), 33, usecase.TeamMatchesRecent, testNow, 5)
	if err != nil {
		t.Fatalf("recent error: %v", err)
	}
	if len(recent) != 1 || recent[0].ID != 900001 {
		t.Fatalf("unexpected recent matches: %+v", recent)
	}

	upcoming, err := repo.ListTeamMatches(context.Background(), 33, usecase.TeamMatchesUpcoming, testNow, 5)
	if err != nil {
		t.Fatalf("upcoming error: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].ID != 900003 {
		t.Fatalf("unexpected upcoming matches: %+v", upcoming)
	}
}

func TestRepository_FetchWithoutProvider(t *testing.T) {
	t.Parallel()

	repo := NewRepository(newSeededStores(), nil, nil, Options{ProviderFallback: true}, logging.NewNop())

	_, err := repo.FetchLiveMatches(context.Background())
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestRepository_FallbackHonoursLimiterError(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewFootballDataProvider(t)
	limiter := &countingLimiter{err: context.DeadlineExceeded}
	repo := NewRepository(newSeededStores(), provider, limiter, Options{ProviderFallback: true}, logging.NewNop())

	_, err := repo.GetMatch(context.Background(), 42)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected limiter error, got %v", err)
	}
}

func TestRepository_UpsertMatchesThenRead(t *testing.T) {
	t.Parallel()

	repo := NewRepository(newSeededStores(), nil, nil, Options{}, logging.NewNop())
	ctx := context.Background()

	err := repo.UpsertMatches(ctx, []match.Match{{
		ID: 77, LeagueID: memory.LeagueIDPremierLeague, Season: 2025,
		Home: match.TeamRef{ID: 42}, Away: match.TeamRef{ID: 40},
		KickoffAt: testNow.Add(48 * time.Hour), Status: match.StatusScheduled, StatusCode: "NS",
	}})
	if err != nil {
		t.Fatalf("UpsertMatches error: %v", err)
	}

	got, err := repo.GetMatch(ctx, 77)
	if err != nil {
		t.Fatalf("GetMatch error: %v", err)
	}
	if got.Home.Name != "Arsenal" || got.Away.Name != "Liverpool" {
		t.Fatalf("expected resolved team names, got %+v / %+v", got.Home, got.Away)
	}
}
