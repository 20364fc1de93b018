package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/football-data/internal/domain/league"
	"github.com/riskibarqy/football-data/internal/domain/match"
	"github.com/riskibarqy/football-data/internal/domain/standing"
	"github.com/riskibarqy/football-data/internal/domain/team"
	"github.com/riskibarqy/football-data/internal/domain/topscorer"
	usecasemock "github.com/riskibarqy/football-data/internal/mocks/usecase"
	"github.com/riskibarqy/football-data/internal/usecase"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 14, 15, 30, 0, 0, time.UTC)

func newFootballService(t *testing.T) (*usecase.FootballService, *usecasemock.FootballReader) {
	t.Helper()

	repo := usecasemock.NewFootballReader(t)
	svc := usecase.NewFootballService(repo)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc, repo
}

func scored(id, home, away int64, homeGoals, awayGoals int, kickoff time.Time) match.Match {
	return match.Match{
		ID:        id,
		LeagueID:  39,
		Season:    2025,
		Home:      match.TeamRef{ID: home},
		Away:      match.TeamRef{ID: away},
		KickoffAt: kickoff,
		Status:    match.StatusFinished,
		HomeScore: &homeGoals,
		AwayScore: &awayGoals,
	}
}

func TestFootballService_SearchTeams_RejectsShortQueryWithoutRepositoryCall(t *testing.T) {
	t.Parallel()

	svc, _ := newFootballService(t)

	for _, query := range []string{"", "a", "  b  ", "é"} {
		_, err := svc.SearchTeams(context.Background(), query)
		if !errors.Is(err, usecase.ErrInvalidInput) {
			t.Fatalf("query %q: expected ErrInvalidInput, got %v", query, err)
		}
	}
}

func TestFootballService_SearchTeams_TrimsQuery(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	expected := []team.Team{{ID: 33, Name: "Manchester United"}}
	repo.On("SearchTeams", mock.Anything, "man").Return(expected, nil).Once()

	got, err := svc.SearchTeams(context.Background(), "  man ")
	if err != nil {
		t.Fatalf("SearchTeams error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 33 {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestFootballService_GetLeague_PropagatesNotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	repo.On("GetLeague", mock.Anything, int64(999)).Return(league.League{}, usecase.ErrNotFound).Once()

	_, err := svc.GetLeague(context.Background(), 999)
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFootballService_GetLeague_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	svc, _ := newFootballService(t)
	if _, err := svc.GetLeague(context.Background(), 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFootballService_ListFeaturedMatches_OrdersAndDeduplicates(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	live := []match.Match{{ID: 1, Status: match.StatusLive}}
	today := []match.Match{
		{ID: 1, Status: match.StatusLive},
		{ID: 2, Status: match.StatusScheduled},
		{ID: 3, Status: match.StatusFinished},
	}
	upcoming := []match.Match{
		{ID: 2, Status: match.StatusScheduled},
		{ID: 4, Status: match.StatusScheduled},
	}

	repo.On("ListLiveMatches", mock.Anything).Return(live, nil).Once()
	repo.On("ListMatchesByDate", mock.Anything, day).Return(today, nil).Once()
	repo.On("ListUpcomingMatches", mock.Anything, int64(0), fixedNow, 10).Return(upcoming, nil).Once()

	got, err := svc.ListFeaturedMatches(context.Background())
	if err != nil {
		t.Fatalf("ListFeaturedMatches error: %v", err)
	}

	want := []int64{1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d matches, got %d (%+v)", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected match %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestFootballService_ListFeaturedMatches_FailsWhenAnySourceFails(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	repo.On("ListLiveMatches", mock.Anything).Return(nil, usecase.ErrUpstream).Once()
	repo.On("ListMatchesByDate", mock.Anything, mock.Anything).Return([]match.Match{}, nil).Maybe()
	repo.On("ListUpcomingMatches", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return([]match.Match{}, nil).Maybe()

	if _, err := svc.ListFeaturedMatches(context.Background()); !errors.Is(err, usecase.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestFootballService_GetHeadToHead_IsSymmetric(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	meetings := []match.Match{
		scored(10, 33, 40, 2, 1, fixedNow.Add(-72*time.Hour)),
		scored(11, 40, 33, 3, 3, fixedNow.Add(-48*time.Hour)),
		scored(12, 40, 33, 1, 0, fixedNow.Add(-24*time.Hour)),
	}
	repo.On("ListHeadToHead", mock.Anything, int64(33), int64(40)).Return(meetings, nil).Twice()

	ab, err := svc.GetHeadToHead(context.Background(), 33, 40)
	if err != nil {
		t.Fatalf("GetHeadToHead(33, 40) error: %v", err)
	}
	ba, err := svc.GetHeadToHead(context.Background(), 40, 33)
	if err != nil {
		t.Fatalf("GetHeadToHead(40, 33) error: %v", err)
	}

	if ab.TeamAID != ba.TeamAID || ab.TeamAWins != ba.TeamAWins || ab.TeamBWins != ba.TeamBWins || ab.Draws != ba.Draws {
		t.Fatalf("aggregates differ: %+v vs %+v", ab, ba)
	}
	if ab.Played != 3 || ab.TeamAWins != 1 || ab.TeamBWins != 1 || ab.Draws != 1 {
		t.Fatalf("unexpected aggregate: %+v", ab)
	}
	if ab.TeamAGoals != 5 || ab.TeamBGoals != 5 {
		t.Fatalf("unexpected goals: %d-%d", ab.TeamAGoals, ab.TeamBGoals)
	}
	if ab.Matches[0].ID != 12 {
		t.Fatalf("expected newest meeting first, got %d", ab.Matches[0].ID)
	}
}

func TestFootballService_GetHeadToHead_RejectsSameTeam(t *testing.T) {
	t.Parallel()

	svc, _ := newFootballService(t)
	if _, err := svc.GetHeadToHead(context.Background(), 33, 33); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFootballService_ListMatchesByDate_ValidatesFormat(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	if _, err := svc.ListMatchesByDate(context.Background(), "14/03/2026"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	repo.On("ListMatchesByDate", mock.Anything, day).Return([]match.Match{{ID: 7}}, nil).Once()
	got, err := svc.ListMatchesByDate(context.Background(), "2026-03-14")
	if err != nil {
		t.Fatalf("ListMatchesByDate error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one match, got %d", len(got))
	}
}

func TestFootballService_ListUpcomingMatches_Limits(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	if _, err := svc.ListUpcomingMatches(context.Background(), 39, 51); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for limit 51, got %v", err)
	}

	repo.On("ListUpcomingMatches", mock.Anything, int64(39), fixedNow, 10).Return([]match.Match{}, nil).Once()
	if _, err := svc.ListUpcomingMatches(context.Background(), 39, 0); err != nil {
		t.Fatalf("ListUpcomingMatches error: %v", err)
	}
}

func TestFootballService_GetStandings_DefaultsSeasonFromLeague(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	repo.On("GetLeague", mock.Anything, int64(39)).Return(league.League{ID: 39, Season: 2024}, nil).Once()
	repo.On("ListStandings", mock.Anything, int64(39), 2024).Return([]standing.Standing{{TeamID: 40, Rank: 1}}, nil).Once()

	rows, err := svc.GetStandings(context.Background(), 39, 0)
	if err != nil {
		t.Fatalf("GetStandings error: %v", err)
	}
	if len(rows) != 1 || rows[0].TeamID != 40 {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestFootballService_GetTopScorers_FallsBackToCalendarSeason(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	repo.On("GetLeague", mock.Anything, int64(140)).Return(league.League{}, usecase.ErrNotFound).Once()
	repo.On("ListTopScorers", mock.Anything, int64(140), 2025).Return([]topscorer.TopScorer{}, nil).Once()

	if _, err := svc.GetTopScorers(context.Background(), 140, 0); err != nil {
		t.Fatalf("GetTopScorers error: %v", err)
	}
}

func TestFootballService_GetLeagueOverview_LoadsAllSections(t *testing.T) {
	t.Parallel()

	svc, repo := newFootballService(t)
	repo.On("GetLeague", mock.Anything, int64(39)).Return(league.League{ID: 39, Name: "Premier League", Season: 2025}, nil).Once()
	repo.On("ListStandings", mock.Anything, int64(39), 2025).Return([]standing.Standing{{TeamID: 40}}, nil).Once()
	repo.On("ListMatchesByLeague", mock.Anything, int64(39), 2025).Return([]match.Match{{ID: 1}, {ID: 2}}, nil).Once()
	repo.On("ListTopScorers", mock.Anything, int64(39), 2025).Return([]topscorer.TopScorer{{PlayerID: 9}}, nil).Once()

	overview, err := svc.GetLeagueOverview(context.Background(), 39, 0)
	if err != nil {
		t.Fatalf("GetLeagueOverview error: %v", err)
	}
	if overview.Season != 2025 || len(overview.Standings) != 1 || len(overview.Matches) != 2 || len(overview.TopScorers) != 1 {
		t.Fatalf("unexpected overview: %+v", overview)
	}
}

func TestFootballService_ListTeamMatches_RejectsUnknownDirection(t *testing.T) {
	t.Parallel()

	svc, _ := newFootballService(t)
	if _, err := svc.ListTeamMatches(context.Background(), 33, "sideways", 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCurrentSeason(t *testing.T) {
	t.Parallel()

	cases := map[time.Time]int{
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC):   2025,
		time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC):   2026,
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC): 2026,
	}
	for at, want := range cases {
		if got := usecase.CurrentSeason(at); got != want {
			t.Fatalf("CurrentSeason(%s) = %d, want %d", at.Format(time.DateOnly), got, want)
		}
	}
}
